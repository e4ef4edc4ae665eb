package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 168*time.Hour || cfg.RefreshGrace != 168*time.Hour {
		t.Fatalf("unexpected token durations: %v / %v", cfg.TokenTTL, cfg.RefreshGrace)
	}
	if cfg.Mongo.Database != "portfolio" {
		t.Fatalf("unexpected mongo database: %s", cfg.Mongo.Database)
	}
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "tooshort")

	if _, err := Load(context.Background()); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected secret length error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9000" || cfg.TokenTTL != time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
