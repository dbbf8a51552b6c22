package handler

import (
	"encoding/json"
	"net/http"

	"matchpoint/internal/advice"
	apperrors "matchpoint/pkg/errors"
	httputil "matchpoint/pkg/http"
	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AdviceHandler struct {
	coach *advice.Coach
	log   *logger.Logger
}

func NewAdviceHandler(coach *advice.Coach, log *logger.Logger) *AdviceHandler {
	return &AdviceHandler{
		coach: coach,
		log:   log,
	}
}

type adviceRequest struct {
	PlayerSkill   model.SkillLevel `json:"player_skill"`
	OpponentSkill model.SkillLevel `json:"opponent_skill,omitempty"`
	Context       string           `json:"context,omitempty"`
}

type adviceResponse struct {
	Tip string `json:"tip"`
}

// Tip always answers 200: the coach degrades to a fixed tip on any upstream
// failure, so advice can never break the booking flow.
func (h *AdviceHandler) Tip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Tip", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if req.PlayerSkill == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("player_skill is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Tip", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	tip := h.coach.Tip(r.Context(), req.PlayerSkill, req.OpponentSkill, req.Context)

	if err := httputil.WriteSuccess(w, adviceResponse{Tip: tip}); err != nil {
		h.log.Error("failed to write success response", "handler", "Tip", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AdviceHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/advice", h.Tip)
}
