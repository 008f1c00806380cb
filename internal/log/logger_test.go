package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"Warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerAddsComponentOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentApp, Output: &buf}).
		WithComponent(ComponentProration)

	logger.DebugContext(context.Background(), "Prorated start period", FieldMonth, "2025-01")

	out := buf.String()
	if strings.Count(out, "component=") != 1 {
		t.Fatalf("expected exactly one component attribute, got %q", out)
	}
	if !strings.Contains(out, "component=proration") || !strings.Contains(out, "month=2025-01") {
		t.Fatalf("unexpected log line %q", out)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Component: ComponentApp, Output: &buf})

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line should be filtered at info level, got %q", buf.String())
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("info line missing, got %q", buf.String())
	}
}

func TestLogFields(t *testing.T) {
	fields := NewFields().
		WithOperation(OpQuery).
		WithRange("2025-01-01", "2025-01-31").
		WithBudget("2025-01", 3100).
		WithError(errors.New("boom")).
		WithError(nil)

	if fields[FieldOperation] != OpQuery || fields[FieldStart] != "2025-01-01" || fields[FieldAmount] != int64(3100) {
		t.Fatalf("unexpected fields %v", fields)
	}
	if fields[FieldError] != "boom" {
		t.Fatalf("nil error must not overwrite an earlier one, got %v", fields[FieldError])
	}
	if got := len(fields.ToSlice()); got != len(fields)*2 {
		t.Fatalf("ToSlice length = %d, want %d", got, len(fields)*2)
	}
}
