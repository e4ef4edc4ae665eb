package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOperationTimeouts(t *testing.T) {
	if defaultTimeout <= 0 {
		t.Fatalf("repository operations must be bounded, got %v", defaultTimeout)
	}
	if connectTimeout < defaultTimeout {
		t.Fatalf("connect window must cover at least one operation, got %v < %v", connectTimeout, defaultTimeout)
	}
}

func TestSkillDoc_ToDomain(t *testing.T) {
	id := primitive.NewObjectID()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	doc := skillDoc{
		ID:          id,
		Name:        "Go",
		Level:       90,
		Category:    "backend",
		Icon:        "/public/icons/go.svg",
		OrderIndex:  2,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	skill := doc.toDomain()
	if skill.ID != id.Hex() {
		t.Fatalf("expected hex id %s, got %s", id.Hex(), skill.ID)
	}
	if skill.Name != "Go" || skill.Level != 90 || skill.OrderIndex != 2 || !skill.IsPublished {
		t.Fatalf("unexpected mapping: %+v", skill)
	}
	if !skill.CreatedAt.Equal(now) {
		t.Fatalf("created_at not carried over")
	}
}

func TestContactDoc_ToDomain(t *testing.T) {
	id := primitive.NewObjectID()
	doc := contactDoc{
		ID:      id,
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	}

	msg := doc.toDomain()
	if msg.ID != id.Hex() || msg.Email != "visitor@example.com" {
		t.Fatalf("unexpected mapping: %+v", msg)
	}
	if msg.IsRead {
		t.Fatalf("unset read flag must map to false")
	}
}
