package ports

import "context"

// SubmissionDeduper guards against double-submitted contact forms. Seen
// reports whether an identical submission was recorded recently; Mark records
// one. Implementations are allowed to fail open (a dedup error must not block
// a submission).
type SubmissionDeduper interface {
	Seen(ctx context.Context, email, message string) (bool, error)
	Mark(ctx context.Context, email, message string) error
}
