// internal/api/handler/goal.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"finny-backend/internal/domain"
	"finny-backend/internal/service"
	"finny-backend/internal/util"
)

// GoalHandler handles savings and investment goal requests. One handler
// serves both kinds; each route binds a method to its kind.
type GoalHandler struct {
	service service.GoalService
	logger  *slog.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(svc service.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		service: svc,
		logger:  logger,
	}
}

// goalNoun returns the English noun used in response messages.
func goalNoun(kind domain.GoalKind) string {
	if kind == domain.GoalKindInvestment {
		return "investment"
	}
	return "savings"
}

// goalIDKey returns the per-kind id field of the list projection, kept from
// the original wire contract.
func goalIDKey(kind domain.GoalKind) string {
	if kind == domain.GoalKindInvestment {
		return "id_inversion"
	}
	return "id_ahorro"
}

// CreateGoalRequest represents the request body for creating a goal.
type CreateGoalRequest struct {
	UserID       int64           `json:"id_user"`
	Description  string          `json:"nombre_meta"`
	TargetAmount decimal.Decimal `json:"monto_objetivo"`
}

// Create handles the create goal request. The current amount starts at zero.
// POST /goals/{ahorro|inversion}
func (h *GoalHandler) Create(kind domain.GoalKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(h.logger, w, util.ErrMissingFields)
			return
		}
		if req.UserID == 0 || req.Description == "" || req.TargetAmount.IsZero() {
			respondWithError(h.logger, w, util.ErrMissingFields)
			return
		}

		if _, err := h.service.CreateGoal(r.Context(), kind, req.UserID, req.Description, req.TargetAmount); err != nil {
			respondWithError(h.logger, w, err)
			return
		}

		respondWithJSON(h.logger, w, http.StatusCreated, map[string]string{
			"message": goalNoun(kind) + " goal created successfully",
		})
	}
}

// List handles the list goals request.
// GET /goals/{ahorro|inversion}/{idUser}
func (h *GoalHandler) List(kind domain.GoalKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "idUser"), 10, 64)
		if err != nil {
			respondWithError(h.logger, w, util.ErrInvalidInput)
			return
		}

		goals, err := h.service.ListGoals(r.Context(), kind, userID)
		if err != nil {
			respondWithError(h.logger, w, err)
			return
		}

		idKey := goalIDKey(kind)
		payload := make([]map[string]interface{}, 0, len(goals))
		for _, g := range goals {
			payload = append(payload, map[string]interface{}{
				idKey:            g.ID,
				"nombre_meta":    g.Description,
				"monto_objetivo": g.TargetAmount,
				"monto_actual":   g.CurrentAmount,
			})
		}

		respondWithJSON(h.logger, w, http.StatusOK, payload)
	}
}

// UpdateGoalRequest represents the request body for updating a goal. Both
// fields are optional but at least one must be present.
type UpdateGoalRequest struct {
	CurrentAmount *decimal.Decimal `json:"monto_actual"`
	TargetAmount  *decimal.Decimal `json:"monto_objetivo"`
}

// Update applies the three-way amount update.
// PUT /goals/{ahorro|inversion}/{idMeta}
func (h *GoalHandler) Update(kind domain.GoalKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goalID, err := strconv.ParseInt(chi.URLParam(r, "idMeta"), 10, 64)
		if err != nil {
			respondWithError(h.logger, w, util.ErrInvalidInput)
			return
		}

		var req UpdateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(h.logger, w, util.ErrMissingFields)
			return
		}

		update := domain.GoalUpdate{
			CurrentAmount: req.CurrentAmount,
			TargetAmount:  req.TargetAmount,
		}
		if err := h.service.UpdateGoal(r.Context(), kind, goalID, update); err != nil {
			respondWithError(h.logger, w, err)
			return
		}

		respondWithJSON(h.logger, w, http.StatusOK, map[string]string{
			"message": goalNoun(kind) + " goal updated successfully",
		})
	}
}

// Delete removes a goal.
// DELETE /goals/{ahorro|inversion}/{idMeta}
func (h *GoalHandler) Delete(kind domain.GoalKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goalID, err := strconv.ParseInt(chi.URLParam(r, "idMeta"), 10, 64)
		if err != nil {
			respondWithError(h.logger, w, util.ErrInvalidInput)
			return
		}

		if err := h.service.DeleteGoal(r.Context(), kind, goalID); err != nil {
			respondWithError(h.logger, w, err)
			return
		}

		respondWithJSON(h.logger, w, http.StatusOK, map[string]string{
			"message": goalNoun(kind) + " goal deleted successfully",
		})
	}
}
