package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"vidportal/internal/model"
	"vidportal/internal/services/media"
	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// multipartMemoryLimit is how much of an upload is held in memory
// before spilling to a temp file
const multipartMemoryLimit = 32 << 20

// DashboardHandler handles the video list and uploads
type DashboardHandler struct {
	mediaService *media.Service
	templates    *templates.Templates
	logger       *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(mediaService *media.Service, t *templates.Templates, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		mediaService: mediaService,
		templates:    t,
		logger:       logger,
	}
}

// View renders the dashboard with the current video list
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	videos, err := h.mediaService.List(r.Context())
	if err != nil {
		h.logger.Error("listing videos", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.DashboardData{
		PageData: pageData(r, "Dashboard"),
		Videos:   videos,
	}
	render(w, h.templates, templates.PageDashboard, http.StatusOK, data)
}

// Upload accepts one multipart video upload (admin only, enforced by
// route middleware). Files with a disallowed extension are silently
// ignored: no file is saved and the dashboard re-renders.
func (h *DashboardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Cap the request body before any of it is buffered
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "No file selected", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		http.Error(w, "No file selected", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		http.Error(w, "No filename", http.StatusBadRequest)
		return
	}

	name, err := h.mediaService.Store(r.Context(), header.Filename, file)
	switch {
	case errors.Is(err, model.ErrExtensionNotAllowed), errors.Is(err, model.ErrEmptyFilename):
		// Silently ignored
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	case err != nil:
		h.logger.Error("storing upload", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "success", "Uploaded "+name)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
