// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finny-backend/internal/api/handler"
	"finny-backend/internal/domain"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	movementHandler *handler.MovementHandler,
	goalHandler *handler.GoalHandler,
	advisorHandler *handler.AdvisorHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/movements", func(r chi.Router) {
		r.Post("/", movementHandler.Create)
		r.Get("/summary/{idUser}", movementHandler.Summary)
		r.Get("/{idUser}", movementHandler.List)
		r.Put("/{idMovement}", movementHandler.Update)
		r.Delete("/{idMovement}", movementHandler.Delete)
	})

	r.Get("/balance/{idUser}", movementHandler.Balance)

	goalRoutes := func(kind domain.GoalKind) func(chi.Router) {
		return func(r chi.Router) {
			r.Post("/", goalHandler.Create(kind))
			r.Get("/{idUser}", goalHandler.List(kind))
			r.Put("/{idMeta}", goalHandler.Update(kind))
			r.Delete("/{idMeta}", goalHandler.Delete(kind))
		}
	}
	r.Route("/goals/ahorro", goalRoutes(domain.GoalKindSavings))
	r.Route("/goals/inversion", goalRoutes(domain.GoalKindInvestment))

	r.Post("/ia/ask_mascot", advisorHandler.Ask)

	return r
}
