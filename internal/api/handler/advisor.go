// internal/api/handler/advisor.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"finny-backend/internal/service"
	"finny-backend/internal/util"
)

// AdvisorHandler handles the mascot advisory chat endpoint.
type AdvisorHandler struct {
	service service.AdvisorService
	logger  *slog.Logger
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(svc service.AdvisorService, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		service: svc,
		logger:  logger,
	}
}

// AskRequest represents the request body for the advisory chat.
type AskRequest struct {
	UserID   int64  `json:"id_user"`
	Username string `json:"username"`
	Prompt   string `json:"prompt"`
}

// Ask aggregates the user's financial context, composes the persona prompt,
// and returns the model's advice.
// POST /ia/ask_mascot
func (h *AdvisorHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}
	if req.UserID == 0 || req.Username == "" || req.Prompt == "" {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}

	advice, err := h.service.Ask(r.Context(), req.UserID, req.Username, req.Prompt)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{
		"status":      "success",
		"mascot_name": service.MascotName,
		"advice":      advice,
	})
}
