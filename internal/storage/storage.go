package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned when an uploaded file has a disallowed extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// WebPrefix is the URL prefix under which stored blobs are served statically.
const WebPrefix = "/uploads"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Store persists uploaded image blobs on the local filesystem. Filenames are
// timestamp-based to avoid collisions; rows reference blobs by their web path.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the uploaded file to disk and returns its web path
// (e.g. "/uploads/1724968800123456789.jpg").
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFormat
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return WebPrefix + "/" + name, nil
}

// Remove deletes the blob referenced by a web path. A missing blob is not an
// error; only the filename component is honored so a stored path can never
// escape the upload directory.
func (s *Store) Remove(webPath string) error {
	if webPath == "" {
		return nil
	}
	name := filepath.Base(webPath)
	if name == "." || name == string(filepath.Separator) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// Dir returns the directory blobs are written to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}
