package handler

import (
	"net/http"

	"matchpoint/internal/directory"
	httputil "matchpoint/pkg/http"
	"matchpoint/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// DirectoryHandler serves the static court and player reference data used by
// booking clients to render pickers.
type DirectoryHandler struct {
	dir *directory.Directory
	log *logger.Logger
}

func NewDirectoryHandler(dir *directory.Directory, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		dir: dir,
		log: log,
	}
}

func (h *DirectoryHandler) Courts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.dir.Courts()); err != nil {
		h.log.Error("failed to write success response", "handler", "Courts", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DirectoryHandler) Players(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.dir.Players()); err != nil {
		h.log.Error("failed to write success response", "handler", "Players", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DirectoryHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/courts", h.Courts)
	router.GET("/api/v1/players", h.Players)
}
