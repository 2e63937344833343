package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"blank keeps default", "", false},
		{"debug", "debug", false},
		{"info", "INFO", false},
		{"warn", "warn", false},
		{"warning alias", "Warning", false},
		{"error", "error", false},
		{"unknown", "verbose", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLevel(%q) error = %v, wantErr %t", tt.level, err, tt.wantErr)
			}
		})
	}

	if err := SetLevel("info"); err != nil {
		t.Fatalf("failed to restore level: %v", err)
	}
}

func TestReplaceLoggerNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil logger")
		}
	}()
	ReplaceLogger(nil)
}

func TestHandlerRenamesAttributes(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	ReplaceLogger(slog.New(newHandler(&buf)))
	defer ReplaceLogger(original)

	Info(context.Background(), "hello", "oil", "Olive Oil")

	out := buf.String()
	if !strings.Contains(out, "ts=") {
		t.Fatalf("expected ts attribute, got %q", out)
	}
	if !strings.Contains(out, "level=info") {
		t.Fatalf("expected lowered level attribute, got %q", out)
	}
	if !strings.Contains(out, `msg=hello`) {
		t.Fatalf("expected msg attribute, got %q", out)
	}
}

func TestNilContextDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	ReplaceLogger(slog.New(newHandler(&buf)))
	defer ReplaceLogger(original)

	Debug(nil, "debug message") //nolint:staticcheck // exercising the nil guard
	Error(nil, "error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Fatalf("expected error message in output, got %q", buf.String())
	}
}
