package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"vidportal/internal/services/account"
	"vidportal/internal/services/auth"
	"vidportal/internal/services/media"
	"vidportal/internal/web/handler"
	"vidportal/internal/web/middleware"
	"vidportal/internal/web/templates"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	AccountService *account.Service
	MediaService   *media.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	t, err := templates.New()
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.Admin()
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, t)
	dashboardHandler := handler.NewDashboardHandler(cfg.MediaService, t, cfg.Logger)
	videoHandler := handler.NewVideoHandler(cfg.MediaService, t, cfg.Logger)
	passwordHandler := handler.NewPasswordHandler(cfg.AuthService, t)
	usersHandler := handler.NewUsersHandler(cfg.AccountService, t, cfg.Logger)

	// Public routes (optional auth so a logged-in user skips the login form)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Protected routes (require a session)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/dashboard", dashboardHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/video/{name}", videoHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/videos/{filename}", videoHandler.Stream).Methods(http.MethodGet)
	protected.HandleFunc("/change_password", passwordHandler.Page).Methods(http.MethodGet)
	protected.HandleFunc("/change_password", passwordHandler.Submit).Methods(http.MethodPost)

	// Admin routes
	admin := r.NewRoute().Subrouter()
	admin.Use(flashMiddleware)
	admin.Use(authMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/dashboard", dashboardHandler.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/delete/{name}", videoHandler.Delete).Methods(http.MethodPost)
	admin.HandleFunc("/manage_users", usersHandler.View).Methods(http.MethodGet)
	admin.HandleFunc("/manage_users", usersHandler.Submit).Methods(http.MethodPost)

	return r, nil
}
