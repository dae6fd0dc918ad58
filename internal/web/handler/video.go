package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"vidportal/internal/model"
	"vidportal/internal/services/media"
	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// VideoHandler handles the player page, byte streaming and deletion
type VideoHandler struct {
	mediaService *media.Service
	templates    *templates.Templates
	logger       *slog.Logger
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(mediaService *media.Service, t *templates.Templates, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{
		mediaService: mediaService,
		templates:    t,
		logger:       logger,
	}
}

// View renders the player page bound to the named video
func (h *VideoHandler) View(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	data := templates.VideoData{
		PageData: pageData(r, name),
		Name:     media.SanitizeFilename(name),
	}
	render(w, h.templates, templates.PageVideo, http.StatusOK, data)
}

// Stream serves the video bytes, honoring Range requests so players
// can seek within large files
func (h *VideoHandler) Stream(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]

	f, info, err := h.mediaService.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("opening video", slog.String("name", name), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Cache-Control", "no-cache")
	// ServeContent handles Range requests and Accept-Ranges
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// Delete removes the named video (admin only, enforced by route
// middleware). Deleting a missing video is still a success.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.mediaService.Delete(r.Context(), name); err != nil {
		h.logger.Error("deleting video", slog.String("name", name), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "info", "Deleted "+media.SanitizeFilename(name))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
