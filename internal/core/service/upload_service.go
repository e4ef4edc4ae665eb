package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// MaxUploadBytes caps accepted image payloads.
const MaxUploadBytes = 5 * 1024 * 1024

// allowedImageExts is the accepted image extension allow-list.
var allowedImageExts = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".svg": {},
}

// UploadService stores validated images: general/project images go to object
// storage under the portfolio/ prefix, skill icons to the local public dir.
type UploadService struct {
	images ports.ObjectStore
	icons  ports.ObjectStore
	now    func() time.Time
}

func NewUploadService(images, icons ports.ObjectStore) *UploadService {
	return &UploadService{images: images, icons: icons, now: time.Now}
}

func (s *UploadService) UploadImage(ctx context.Context, in ports.UploadInput) (*ports.StoredObject, error) {
	if err := validateImage(in); err != nil {
		return nil, err
	}
	return s.images.Put(ctx, "portfolio/"+s.objectName(in.Filename), in.ContentType, in.Data)
}

func (s *UploadService) UploadProjectImage(ctx context.Context, in ports.UploadInput) (*ports.StoredObject, error) {
	if err := validateImage(in); err != nil {
		return nil, err
	}
	return s.images.Put(ctx, "portfolio/projects/"+s.objectName(in.Filename), in.ContentType, in.Data)
}

func (s *UploadService) UploadSkillIcon(ctx context.Context, in ports.UploadInput) (*ports.StoredObject, error) {
	if err := validateImage(in); err != nil {
		return nil, err
	}
	return s.icons.Put(ctx, s.objectName(in.Filename), in.ContentType, in.Data)
}

// objectName prefixes the original filename with a timestamp and strips
// whitespace, matching the public URL shape the frontend expects.
func (s *UploadService) objectName(filename string) string {
	clean := strings.ReplaceAll(filepath.Base(filename), " ", "-")
	return fmt.Sprintf("%d-%s", s.now().UnixMilli(), clean)
}

func validateImage(in ports.UploadInput) error {
	if len(in.Data) == 0 {
		return domain.ErrNoFile
	}
	if len(in.Data) > MaxUploadBytes {
		return domain.ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return domain.ErrUnsupportedImage
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return domain.ErrUnsupportedImage
	}
	return nil
}
