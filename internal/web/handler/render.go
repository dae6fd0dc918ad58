package handler

import (
	"net/http"

	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// pageData builds the shared page fields from the request context
func pageData(r *http.Request, title string) templates.PageData {
	data := templates.PageData{
		Title: title,
		Flash: middleware.GetFlash(r.Context()),
	}

	if session := middleware.GetSession(r.Context()); session != nil {
		data.LoggedIn = true
		data.Username = session.Username
		data.Role = session.Role
		data.IsAdmin = session.Role.IsAdmin()
	}

	return data
}

// render writes an HTML page, with an optional non-200 status
func render(w http.ResponseWriter, t *templates.Templates, page string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := t.Render(w, page, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
