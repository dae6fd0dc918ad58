package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"vidportal/internal/model"
	"vidportal/internal/services/media"
)

//go:embed *.html
var files embed.FS

// Page names
const (
	PageLogin          = "login.html"
	PageDashboard      = "dashboard.html"
	PageVideo          = "video.html"
	PageChangePassword = "change_password.html"
	PageManageUsers    = "manage_users.html"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData holds the fields every page shares
type PageData struct {
	Title    string
	LoggedIn bool
	Username string
	Role     model.Role
	IsAdmin  bool
	Flash    *FlashMessage
}

// LoginData is the data for the login page
type LoginData struct {
	PageData
	Username string // re-filled form value, shadows the nav username
	Error    string
}

// DashboardData is the data for the dashboard page
type DashboardData struct {
	PageData
	Videos []media.Video
}

// VideoData is the data for the player page
type VideoData struct {
	PageData
	Name string
}

// ChangePasswordData is the data for the change-password page
type ChangePasswordData struct {
	PageData
	Message string
	Failed  bool
}

// ManageUsersData is the data for the manage-users page
type ManageUsersData struct {
	PageData
	Accounts []*model.Account
	Error    string
}

// Templates renders the portal's HTML pages
type Templates struct {
	pages map[string]*template.Template
}

// New parses the embedded page templates
func New() (*Templates, error) {
	names := []string{
		PageLogin,
		PageDashboard,
		PageVideo,
		PageChangePassword,
		PageManageUsers,
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.ParseFS(files, "layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Templates{pages: pages}, nil
}

// Render writes the named page with the given data
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
