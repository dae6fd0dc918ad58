package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"vidportal/internal/services/auth"
	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// AuthHandler handles the login page and session lifecycle
type AuthHandler struct {
	authService *auth.Service
	templates   *templates.Templates
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, t *templates.Templates) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		templates:   t,
	}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		// Already logged in
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := templates.LoginData{
		PageData: pageData(r, "Login"),
	}
	render(w, h.templates, templates.PageLogin, http.StatusOK, data)
}

// Login handles credential submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.renderLoginError(w, r, "Invalid username or password", username, http.StatusUnauthorized)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome back, "+session.Username+"!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout invalidates the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.authService.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400, // matches the server-side session TTL
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username string, status int) {
	data := templates.LoginData{
		PageData: pageData(r, "Login"),
		Username: username,
		Error:    errorMsg,
	}
	render(w, h.templates, templates.PageLogin, status, data)
}
