package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"vidportal/internal/model"
	"vidportal/internal/services/account"
	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// UsersHandler handles the admin account-management page
type UsersHandler struct {
	accountService *account.Service
	templates      *templates.Templates
	logger         *slog.Logger
}

// NewUsersHandler creates a new UsersHandler
func NewUsersHandler(accountService *account.Service, t *templates.Templates, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		accountService: accountService,
		templates:      t,
		logger:         logger,
	}
}

// View renders the account table and the add-user form
func (h *UsersHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// Submit dispatches on which button was pressed: add, update or delete
func (h *UsersHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	switch {
	case r.FormValue("add_user") != "":
		h.addUser(w, r)
	case r.FormValue("update_user") != "":
		h.updateUser(w, r)
	case r.FormValue("delete_user") != "":
		h.deleteUser(w, r)
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
	}
}

func (h *UsersHandler) addUser(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("new_username"))
	password := r.FormValue("new_password")
	role := model.Role(r.FormValue("new_role"))

	if username == "" {
		h.renderPage(w, r, "Username is required")
		return
	}

	_, err := h.accountService.Create(r.Context(), username, password, role)
	switch {
	case errors.Is(err, model.ErrUsernameTaken):
		h.renderPage(w, r, "Username already exists!")
		return
	case errors.Is(err, model.ErrInvalidRole):
		h.renderPage(w, r, "Invalid role")
		return
	case err != nil:
		h.logger.Error("creating account", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "success", "Added user "+username)
	http.Redirect(w, r, "/manage_users", http.StatusSeeOther)
}

func (h *UsersHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	password := r.FormValue("update_password")
	role := model.Role(r.FormValue("update_role"))

	err = h.accountService.Update(r.Context(), id, password, role)
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		h.renderPage(w, r, "User not found")
		return
	case errors.Is(err, model.ErrInvalidRole):
		h.renderPage(w, r, "Invalid role")
		return
	case err != nil:
		h.logger.Error("updating account", slog.Int64("id", id), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "success", "Updated user")
	http.Redirect(w, r, "/manage_users", http.StatusSeeOther)
}

func (h *UsersHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		h.logger.Error("deleting account", slog.Int64("id", id), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "info", "Deleted user")
	http.Redirect(w, r, "/manage_users", http.StatusSeeOther)
}

func (h *UsersHandler) renderPage(w http.ResponseWriter, r *http.Request, errorMsg string) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		h.logger.Error("listing accounts", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.ManageUsersData{
		PageData: pageData(r, "Manage users"),
		Accounts: accounts,
		Error:    errorMsg,
	}
	render(w, h.templates, templates.PageManageUsers, http.StatusOK, data)
}
