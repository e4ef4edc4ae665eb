package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// Mailer sends transactional email for contact-form submissions. Both sends
// are best-effort from the caller's point of view: a failure is logged and
// counted but never surfaced to the form submitter.
type Mailer interface {
	// SendContactNotification notifies the site owner of a new submission.
	SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error
	// SendContactConfirmation acknowledges receipt to the submitter.
	SendContactConfirmation(ctx context.Context, msg *domain.ContactMessage) error
}
