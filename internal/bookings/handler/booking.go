package handler

import (
	"encoding/json"
	"net/http"

	"matchpoint/internal/bookings/service"
	apperrors "matchpoint/pkg/errors"
	httputil "matchpoint/pkg/http"
	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// stageActionRequest carries the acting player for join and cancel staging.
type stageActionRequest struct {
	PlayerID string `json:"player_id"`
}

func (h *BookingHandler) StageCreate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "StageCreate", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	confirmation, err := h.service.StageCreate(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "StageCreate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteAccepted(w, confirmation); err != nil {
		h.log.Error("failed to write accepted response", "handler", "StageCreate", "operation", "WriteAccepted", "error", err)
	}
}

func (h *BookingHandler) StageJoin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req, ok := h.decodeStageAction(w, r, "StageJoin")
	if !ok {
		return
	}

	confirmation, err := h.service.StageJoin(r.Context(), ps.ByName("id"), req.PlayerID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "StageJoin", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteAccepted(w, confirmation); err != nil {
		h.log.Error("failed to write accepted response", "handler", "StageJoin", "operation", "WriteAccepted", "error", err)
	}
}

func (h *BookingHandler) StageCancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req, ok := h.decodeStageAction(w, r, "StageCancel")
	if !ok {
		return
	}

	confirmation, err := h.service.StageCancel(r.Context(), ps.ByName("id"), req.PlayerID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "StageCancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteAccepted(w, confirmation); err != nil {
		h.log.Error("failed to write accepted response", "handler", "StageCancel", "operation", "WriteAccepted", "error", err)
	}
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Confirm(r.Context(), ps.ByName("token"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Confirm", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if result.Outcome == service.OutcomeCreated {
		if err := httputil.WriteCreated(w, result); err != nil {
			h.log.Error("failed to write created response", "handler", "Confirm", "operation", "WriteCreated", "error", err)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Confirm", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("player_id query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "MyBookings", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookings, err := h.service.MyBookings(r.Context(), playerID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "MyBookings", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "MyBookings", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) OpenMatches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	playerID := query.Get("player_id")
	if playerID == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("player_id query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "OpenMatches", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	matches, err := h.service.OpenMatches(r.Context(), playerID, query.Get("skill"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "OpenMatches", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, matches); err != nil {
		h.log.Error("failed to write success response", "handler", "OpenMatches", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) decodeStageAction(w http.ResponseWriter, r *http.Request, handlerName string) (*stageActionRequest, bool) {
	var req stageActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", handlerName, "operation", "WriteJSON", "error", writeErr)
		}
		return nil, false
	}
	return &req, true
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.StageCreate)
	router.POST("/api/v1/bookings/id/:id/join", h.StageJoin)
	router.POST("/api/v1/bookings/id/:id/cancel", h.StageCancel)
	router.POST("/api/v1/confirmations/:token", h.Confirm)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings/mine", h.MyBookings)
	router.GET("/api/v1/matches/open", h.OpenMatches)
}
