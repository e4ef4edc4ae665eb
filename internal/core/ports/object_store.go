package ports

import "context"

// StoredObject describes an uploaded image after it has been persisted.
type StoredObject struct {
	URL         string
	Key         string
	Size        int64
	ContentType string
}

// ObjectStore persists uploaded images. Implementations: S3-compatible
// object storage for project/general images, local disk for skill icons.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (*StoredObject, error)
}
