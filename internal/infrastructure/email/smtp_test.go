package email

import (
	"strings"
	"testing"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

func testMessage() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        "msg_1",
		Name:      "Visitor",
		Email:     "visitor@example.com",
		Subject:   "Job offer",
		Message:   "Line one.\nLine two.",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestNotificationTemplate(t *testing.T) {
	body, err := renderTemplate(notificationTmpl, testMessage())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"Visitor", "visitor@example.com", "Job offer", "Line one."} {
		if !strings.Contains(body, want) {
			t.Fatalf("notification body missing %q", want)
		}
	}
}

func TestNotificationTemplate_EscapesHTML(t *testing.T) {
	msg := testMessage()
	msg.Message = `<script>alert("x")</script>`

	body, err := renderTemplate(notificationTmpl, msg)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("submitted html must be escaped")
	}
}

func TestConfirmationTemplate(t *testing.T) {
	body, err := renderTemplate(confirmationTmpl, testMessage())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(body, "Thanks for reaching out, Visitor!") {
		t.Fatalf("confirmation greeting missing")
	}
}
