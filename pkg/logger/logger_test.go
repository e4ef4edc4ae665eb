package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_ReturnsUsableLogger(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	lg := Init("debug", "production", &buf)
	lg.Info().Str("route", "/api/health").Msg("listening")

	out := buf.String()
	if !strings.Contains(out, `"service":"portfolio-api"`) {
		t.Fatalf("service field missing: %s", out)
	}
	if !strings.Contains(out, "listening") {
		t.Fatalf("message missing: %s", out)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init("info", "production", &first)
	lg := Init("info", "production", &second)
	lg.Info().Msg("hello")

	if second.Len() != 0 {
		t.Fatalf("second Init must not rebuild the logger")
	}
	if !strings.Contains(first.String(), "hello") {
		t.Fatalf("log went nowhere: %q", first.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic before Init")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"WARNING": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
