package web_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoPlayerPage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "content")

	rr := ts.get("/video/movie.mp4")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "video source[src='/videos/movie.mp4']")
}

func TestStreamFullVideo(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "0123456789")

	rr := ts.get("/videos/movie.mp4")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "bytes", rr.Header().Get("Accept-Ranges"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "0123456789", rr.Body.String())
}

func TestStreamAvailableToNonAdmins(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "content")
	ts.get("/logout")

	ts.loginUser()
	rr := ts.get("/videos/movie.mp4")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "content", rr.Body.String())
}

func TestStreamByteRange(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	content := strings.Repeat("a", 100) + strings.Repeat("b", 100) + strings.Repeat("c", 100)
	ts.upload("movie.mp4", content)

	rr := ts.getRange("/videos/movie.mp4", "bytes=100-199")
	assert.Equal(t, http.StatusPartialContent, rr.Code)
	assert.Equal(t, "bytes 100-199/300", rr.Header().Get("Content-Range"))
	assert.Equal(t, strings.Repeat("b", 100), rr.Body.String())
}

func TestStreamOpenEndedRange(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "0123456789")

	rr := ts.getRange("/videos/movie.mp4", "bytes=5-")
	assert.Equal(t, http.StatusPartialContent, rr.Code)
	assert.Equal(t, "56789", rr.Body.String())
}

func TestStreamUnsatisfiableRange(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "0123456789")

	rr := ts.getRange("/videos/movie.mp4", "bytes=100-")
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, rr.Code)
}

func TestStreamMissingVideo(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginUser()

	rr := ts.get("/videos/missing.mp4")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStreamTraversalAttempt(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginUser()

	// Confined to the media directory by sanitization
	rr := ts.get("/videos/..%2F..%2Fetc%2Fpasswd")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteVideo(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "content")

	rr := ts.post("/delete/movie.mp4", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))

	_, err := os.Stat(filepath.Join(ts.app.MediaService.Dir(), "movie.mp4"))
	assert.True(t, os.IsNotExist(err))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Deleted movie.mp4")
}

func TestDeleteMissingVideoStillRedirects(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()

	rr := ts.post("/delete/missing.mp4", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
}

func TestDeleteForbiddenForNonAdmin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAdmin()
	ts.upload("movie.mp4", "content")
	ts.get("/logout")

	ts.loginUser()
	rr := ts.post("/delete/movie.mp4", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unauthorized action")

	// No state change
	_, err := os.Stat(filepath.Join(ts.app.MediaService.Dir(), "movie.mp4"))
	require.NoError(t, err)
}
