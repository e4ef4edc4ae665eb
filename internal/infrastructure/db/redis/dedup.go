package redis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 10 * time.Minute

// SubmissionDeduper guards the contact form against double-submits.
// Key format: contact:dedup:<sha256(email|message)>
type SubmissionDeduper struct {
	client *redis.Client
}

// NewSubmissionDeduper creates a SubmissionDeduper wrapping the given client.
func NewSubmissionDeduper(client *redis.Client) *SubmissionDeduper {
	return &SubmissionDeduper{client: client}
}

// Seen reports whether an identical submission was marked within the TTL.
func (d *SubmissionDeduper) Seen(ctx context.Context, email, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after dedupTTL).
func (d *SubmissionDeduper) Mark(ctx context.Context, email, message string) error {
	return d.client.Set(ctx, d.key(email, message), "1", dedupTTL).Err()
}

func (d *SubmissionDeduper) key(email, message string) string {
	sum := sha256.Sum256([]byte(email + "|" + message))
	return fmt.Sprintf("contact:dedup:%x", sum)
}
