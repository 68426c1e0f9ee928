// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"finny-backend/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	AI         AIConfig
}

// AIConfig holds configuration for the hosted text-generation model.
type AIConfig struct {
	APIKey string
	Model  string
}

// LoadConfig loads configuration from environment variables.
// Database settings fall back to local-development defaults; the AI key has no
// default and the advisory endpoint fails without it.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432"
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "finnydb"
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	aiModel := os.Getenv("GEMINI_MODEL")
	if aiModel == "" {
		aiModel = "gemini-2.5-flash"
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		AI: AIConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  aiModel,
		},
	}, nil
}
