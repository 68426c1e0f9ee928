// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"finny-backend/internal/llm"
	"finny-backend/internal/util"
)

// DefaultTimeout is the per-request timeout applied by the router middleware.
// The advisory endpoint blocks on a model round-trip, so it is generous.
const DefaultTimeout = 60 * time.Second

// respondWithJSON sends a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to HTTP statuses in one place so every
// handler shares a single error schema.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	var apiErr *llm.APIError
	switch {
	case util.IsError(err, util.ErrMissingFields),
		util.IsError(err, util.ErrNoUpdateFields),
		util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = unwrapMessage(err)
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = util.ErrInvalidCredentials.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = util.ErrNotFound.Error()
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusConflict
		message = util.ErrDuplicateEntry.Error()
	case errors.As(err, &apiErr):
		// Provider-side failure: distinct category, message passed through.
		logger.Error("AI service error", "error", err)
		message = "AI service error: " + apiErr.Message
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, map[string]string{"error": message})
}

// unwrapMessage returns the sentinel's own text for the 400 family, dropping
// any wrapping context that might leak internals.
func unwrapMessage(err error) string {
	for _, sentinel := range []error{util.ErrMissingFields, util.ErrNoUpdateFields, util.ErrInvalidInput} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
