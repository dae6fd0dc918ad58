package handler

import (
	"errors"
	"net/http"

	"vidportal/internal/services/auth"
	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// PasswordHandler handles self-service password changes
type PasswordHandler struct {
	authService *auth.Service
	templates   *templates.Templates
}

// NewPasswordHandler creates a new PasswordHandler
func NewPasswordHandler(authService *auth.Service, t *templates.Templates) *PasswordHandler {
	return &PasswordHandler{
		authService: authService,
		templates:   t,
	}
}

// Page renders the change-password form
func (h *PasswordHandler) Page(w http.ResponseWriter, r *http.Request) {
	data := templates.ChangePasswordData{
		PageData: pageData(r, "Change password"),
	}
	render(w, h.templates, templates.PageChangePassword, http.StatusOK, data)
}

// Submit verifies the old password and stores the new one. A wrong
// old password leaves the account untouched and reports inline.
func (h *PasswordHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	session := middleware.GetSession(r.Context())
	oldPassword := r.FormValue("old_password")
	newPassword := r.FormValue("new_password")

	message := "Password updated successfully."
	failed := false

	err := h.authService.ChangePassword(r.Context(), session.Username, oldPassword, newPassword)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		message = "Old password is incorrect."
		failed = true
	case err != nil:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.ChangePasswordData{
		PageData: pageData(r, "Change password"),
		Message:  message,
		Failed:   failed,
	}
	render(w, h.templates, templates.PageChangePassword, http.StatusOK, data)
}
