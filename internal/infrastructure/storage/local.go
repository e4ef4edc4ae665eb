package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// LocalStore writes objects under a public directory served as static files.
// Used for skill icons, which the frontend references by relative URL.
type LocalStore struct {
	// Dir is the filesystem directory files are written to.
	Dir string
	// BaseURL is the URL prefix the directory is served under, e.g. "/public/icons".
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

func (s *LocalStore) Put(ctx context.Context, key string, contentType string, data []byte) (*ports.StoredObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// only the base name of the key is used on disk
	name := filepath.Base(key)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &ports.StoredObject{
		URL:         s.BaseURL + "/" + name,
		Key:         name,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}
