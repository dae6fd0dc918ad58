package media

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"vidportal/internal/model"
)

// MaxUploadBytes is the ceiling for a single video upload (2 GiB)
const MaxUploadBytes = 2 << 30

// allowedExtensions is the video extension allow-list, checked at store time only
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

// Video describes one file in the media directory. The filename is its
// identity; size and mtime come straight from the filesystem.
type Video struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Service is the repository over the flat video directory
type Service struct {
	dir    string
	logger *slog.Logger
}

// New creates a media Service rooted at dir, creating it if needed
func New(dir string, logger *slog.Logger) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Service{dir: dir, logger: logger}, nil
}

// Dir returns the media directory path
func (s *Service) Dir() string {
	return s.dir
}

// List returns the videos currently in the media directory, in
// directory-scan order
func (s *Service) List(ctx context.Context) ([]Video, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // File removed during listing
		}
		videos = append(videos, Video{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return videos, nil
}

// Store sanitizes the filename, checks it against the extension
// allow-list and writes the content into the media directory,
// silently overwriting any existing file of the same name.
// It returns the name the file was stored under.
func (s *Service) Store(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", model.ErrEmptyFilename
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", model.ErrExtensionNotAllowed
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", err
	}

	s.logger.Info("video stored", slog.String("name", name))
	return name, nil
}

// Delete removes the named video. Deleting a video that does not
// exist is a successful no-op.
func (s *Service) Delete(ctx context.Context, filename string) error {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil {
		s.logger.Info("video deleted", slog.String("name", name))
	}
	return nil
}

// Open returns a seekable reader for the named video along with its
// file info, for byte-range serving
func (s *Service) Open(ctx context.Context, filename string) (io.ReadSeekCloser, fs.FileInfo, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil, nil, model.ErrVideoNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, model.ErrVideoNotFound
		}
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return f, info, nil
}

// SanitizeFilename collapses any client-supplied filename to a safe
// basename: path separators and traversal sequences are stripped,
// spaces become underscores and anything outside [A-Za-z0-9._-] is
// dropped. Returns "" if nothing usable remains.
func SanitizeFilename(filename string) string {
	// Browsers on Windows may send full paths with backslashes
	name := strings.ReplaceAll(filename, "\\", "/")
	name = path.Base(name)
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	// No hidden files, and "." / ".." must never survive
	out := strings.TrimLeft(b.String(), ".")
	return out
}
