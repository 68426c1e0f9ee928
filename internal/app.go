// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	router "finny-backend/internal/api"
	"finny-backend/internal/api/handler"
	"finny-backend/internal/config"
	"finny-backend/internal/llm"
	"finny-backend/internal/repository"
	"finny-backend/internal/repository/postgres"
	"finny-backend/internal/service"
	"finny-backend/internal/util"
	"finny-backend/pkg/db"
)

// Application holds all the initialized components of the application. The
// store handle and model client are constructed once at startup and injected
// into the services; nothing is ambient global state.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository     repository.UserRepository
	MovementRepository repository.MovementRepository
	GoalRepository     repository.GoalRepository

	// Model client
	LLMClient llm.Client

	// Services
	AuthService    service.AuthService
	LedgerService  service.LedgerService
	GoalService    service.GoalService
	AdvisorService service.AdvisorService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.MovementRepository = postgres.NewMovementRepository(app.DB)
	app.GoalRepository = postgres.NewGoalRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize the model client
	client, err := llm.NewClient(llm.Config{
		Provider: "gemini",
		APIKey:   app.Config.AI.APIKey,
		Model:    app.Config.AI.Model,
	})
	if err != nil {
		// The advisory endpoint is optional at startup; everything else works
		// without a model key. Log loudly and continue with no client.
		app.Logger.Warn("AI client not configured; advisory endpoint will fail", "error", err)
	}
	app.LLMClient = client

	// 6. Initialize Services
	app.AuthService = service.NewAuthService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.UserRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.LedgerService = service.NewLedgerService(app.DB, app.MovementRepository)
	app.GoalService = service.NewGoalService(app.DB, app.GoalRepository)
	app.AdvisorService = service.NewAdvisorService(
		app.DB,
		app.UserRepository,
		app.MovementRepository,
		app.LLMClient,
		time.Now,
	)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	movementHandler := handler.NewMovementHandler(app.LedgerService, app.Logger)
	goalHandler := handler.NewGoalHandler(app.GoalService, app.Logger)
	advisorHandler := handler.NewAdvisorHandler(app.AdvisorService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, movementHandler, goalHandler, advisorHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
