package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/metrics"
)

// FieldName is the multipart form field the client puts the file under.
const FieldName = "photo"

var (
	ErrNoFile   = errors.New("no file uploaded")
	ErrTooLarge = errors.New("file exceeds the size limit")
)

// Store writes uploaded files into a flat directory served under /uploads/.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save streams the file into the store under a fresh collision-free name and
// returns the public URL path. The extension of the original filename is
// kept; everything else about the name is discarded.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header == nil || header.Filename == "" {
		return "", ErrNoFile
	}
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	// Write to a temp file in the same directory first, so the final rename
	// never crosses devices and readers never see a partial file.
	tmp, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	written, err := io.Copy(tmp, file)
	if err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		return "", ErrTooLarge
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("flush upload: %w", err)
	}

	dst := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("place upload: %w", err)
	}

	metrics.UploadsTotal.Inc()
	return "/uploads/" + name, nil
}
