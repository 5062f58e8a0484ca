package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/tshirt-brand/backend/internal/infrastructure/config"
)

// Upload errors. The two rejection reasons are distinct so the HTTP layer
// can report them separately.
var (
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedFileType = errors.New("file type is not supported")
)

// AllowedImageExtensions maps accepted file extensions to their content types
var AllowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// LocalImageStore saves uploaded product images on the local filesystem
type LocalImageStore struct {
	dir        string
	publicPath string
	maxSize    int64
}

// NewLocalImageStore creates the store and ensures the upload directory exists
func NewLocalImageStore(cfg config.UploadConfig) (*LocalImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Dir, err)
	}
	return &LocalImageStore{
		dir:        cfg.Dir,
		publicPath: cfg.PublicPath,
		maxSize:    cfg.MaxFileSize,
	}, nil
}

// Dir returns the local directory images are stored in
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save validates and stores an uploaded image, returning its public URL path.
// Returns ErrFileTooLarge or ErrUnsupportedFileType on rejection.
func (s *LocalImageStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := AllowedImageExtensions[ext]; !ok {
		return "", ErrUnsupportedFileType
	}

	name := fmt.Sprintf("product-%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	// Size is re-enforced during the copy; the multipart header size can
	// disagree with the actual stream.
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	if err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store image file: %w", err)
	}
	if written > s.maxSize {
		_ = os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return path.Join(s.publicPath, name), nil
}

// randomSuffix generates a short random filename component
func randomSuffix() string {
	bytes := make([]byte, 5)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}
