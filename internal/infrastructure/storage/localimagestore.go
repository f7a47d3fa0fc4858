// Package storage persists uploaded issue photos and exposes their public URLs.
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"nagarsetu/internal/shared/id"
)

// ImageStore saves an uploaded image and returns its publicly reachable URL.
type ImageStore interface {
	Save(c *gin.Context, file *multipart.FileHeader) (string, error)
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// LocalImageStore writes images to a directory served under /uploads.
type LocalImageStore struct {
	dir     string
	baseURL string
	maxSize int64
}

func NewLocalImageStore(dir, baseURL string, maxSize int64) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

func (s *LocalImageStore) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}

	name, err := id.Generate(16)
	if err != nil {
		return "", err
	}
	filename := name + ext

	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, filename)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.baseURL + "/uploads/" + filename, nil
}
