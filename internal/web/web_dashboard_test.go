package web_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEmptyState(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginUser()

	rr := ts.get("/dashboard")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".video-list .empty", "No videos uploaded yet.")
}

func TestDashboardAdminSeesUploadForm(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	rr := ts.get("/dashboard")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".upload-form input[name='video']")
	assertContainsText(t, doc, "nav", "Manage users")
}

func TestDashboardUserHasNoUploadForm(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginUser()

	rr := ts.get("/dashboard")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, ".upload-form")
	assertNotContainsElement(t, doc, "nav a[href='/manage_users']")
}

func TestUploadSucceeds(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	rr := ts.upload("movie.mp4", "fake video bytes")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))

	// File is on disk and in the listing
	data, err := os.ReadFile(filepath.Join(ts.app.MediaService.Dir(), "movie.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(data))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Uploaded movie.mp4")
	assertContainsElement(t, doc, ".video-list a[href='/video/movie.mp4']")
}

func TestUploadSanitizesFilename(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	rr := ts.upload("../../evil movie.mp4", "x")
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	_, err := os.Stat(filepath.Join(ts.app.MediaService.Dir(), "evil_movie.mp4"))
	assert.NoError(t, err)
}

func TestUploadRejectsDisallowedExtensionSilently(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	rr := ts.upload("malware.exe", "x")

	// No error page: just back to the dashboard with nothing saved
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))

	_, err := os.Stat(filepath.Join(ts.app.MediaService.Dir(), "malware.exe"))
	assert.True(t, os.IsNotExist(err))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".video-list .empty", "No videos uploaded yet.")
}

func TestUploadWithoutFile(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	rr := ts.post("/dashboard", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No file selected")
}

func TestUploadForbiddenForNonAdmin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginUser()

	rr := ts.upload("movie.mp4", "x")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unauthorized action")

	_, err := os.Stat(filepath.Join(ts.app.MediaService.Dir(), "movie.mp4"))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadOverwritesExisting(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	ts.upload("movie.mp4", "first")
	ts.upload("movie.mp4", "second")

	data, err := os.ReadFile(filepath.Join(ts.app.MediaService.Dir(), "movie.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
