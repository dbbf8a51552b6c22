package handler

import (
	"net/http"

	"matchpoint/internal/bookings/repository"
	httputil "matchpoint/pkg/http"
	"matchpoint/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Bookings int    `json:"bookings,omitempty"`
}

type HealthHandler struct {
	repo repository.BookingRepository
	log  *logger.Logger
}

func NewHealthHandler(repo repository.BookingRepository, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		repo: repo,
		log:  log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

// Ready reports the booking count so operators can eyeball state volume.
// The store is in-process, so readiness follows liveness.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Bookings: h.repo.Count(r.Context()),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
