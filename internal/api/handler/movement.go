// internal/api/handler/movement.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"finny-backend/internal/service"
	"finny-backend/internal/util"
)

// MovementHandler handles ledger movement requests.
type MovementHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(svc service.LedgerService, logger *slog.Logger) *MovementHandler {
	return &MovementHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateMovementRequest represents the request body for adding a movement.
// Field names follow the wire contract consumed by the mobile client.
type CreateMovementRequest struct {
	UserID   int64           `json:"id_user"`
	Category string          `json:"categoria"`
	Note     *string         `json:"nota"`
	Amount   decimal.Decimal `json:"monto"`
	Kind     string          `json:"tipo"`
}

// Create handles the add movement request. An absent tipo defaults to Egreso.
// POST /movements
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}
	if req.UserID == 0 || req.Category == "" || req.Amount.IsZero() {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}

	if _, err := h.service.AddMovement(r.Context(), req.UserID, req.Category, req.Note, req.Amount, req.Kind); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]string{
		"message": "movement added successfully",
	})
}

// List handles the movement history request, newest first.
// GET /movements/{idUser}
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "idUser"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	movements, err := h.service.ListMovements(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, movements)
}

// UpdateMovementRequest represents the request body for updating a movement.
type UpdateMovementRequest struct {
	Category string          `json:"categoria"`
	Note     *string         `json:"nota"`
	Amount   decimal.Decimal `json:"monto"`
	Kind     string          `json:"tipo"`
}

// Update rewrites a movement's mutable fields. A missing id affects zero rows
// and still reports success.
// PUT /movements/{idMovement}
func (h *MovementHandler) Update(w http.ResponseWriter, r *http.Request) {
	movementID, err := strconv.ParseInt(chi.URLParam(r, "idMovement"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req UpdateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}
	if req.Category == "" || req.Amount.IsZero() {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}

	if err := h.service.UpdateMovement(r.Context(), movementID, req.Category, req.Note, req.Amount, req.Kind); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{
		"message": "movement updated successfully",
	})
}

// Delete removes a movement.
// DELETE /movements/{idMovement}
func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movementID, err := strconv.ParseInt(chi.URLParam(r, "idMovement"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.DeleteMovement(r.Context(), movementID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{
		"message": "movement deleted successfully",
	})
}

// Summary handles the per-category totals request.
// GET /movements/summary/{idUser}
func (h *MovementHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "idUser"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	totals, err := h.service.CategorySummary(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, totals)
}

// Balance handles the income/expense/balance request.
// GET /balance/{idUser}
func (h *MovementHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "idUser"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	balance, err := h.service.Balance(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, balance)
}
