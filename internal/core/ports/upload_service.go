package ports

import "context"

// UploadInput is an in-memory image received from a multipart form.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadService validates and stores uploaded images. Images go to object
// storage; skill icons are written to the local public directory so the site
// can serve them directly.
type UploadService interface {
	UploadImage(ctx context.Context, in UploadInput) (*StoredObject, error)
	// UploadProjectImage stores a project screenshot under its own folder in
	// object storage.
	UploadProjectImage(ctx context.Context, in UploadInput) (*StoredObject, error)
	UploadSkillIcon(ctx context.Context, in UploadInput) (*StoredObject, error)
}
