package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	seed := filepath.Join(t.TempDir(), "budgets.toml")
	content := `
[[budget]]
month = "2025-01"
amount = 3100

[[budget]]
month = "2025-02"
amount = 2800

[[budget]]
month = "2025-03"
amount = 3100
`
	if err := os.WriteFile(seed, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("BUDGET_SEED_FILE", seed)
	t.Setenv("AMQP_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("TRACE_PRORATION", "false")
}

func TestQueryCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "query", "--from", "2025-01-31", "--to", "2025-03-01")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if strings.TrimSpace(out) != "3000" {
		t.Fatalf("expected 3000, got %q", out)
	}
}

func TestQueryCommandRejectsReversedRange(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "query", "--from", "2025-03-10", "--to", "2025-01-05"); err == nil {
		t.Fatal("expected error for reversed range")
	}
	if _, err := run(t, "query", "--from", "yesterday", "--to", "2025-01-05"); err == nil {
		t.Fatal("expected error for unparsable date")
	}
}

func TestListCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"2025-01", "2800", "Daily"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output %q missing %q", out, want)
		}
	}
}

func TestSetCommandValidates(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "set", "--month", "2025-13", "--amount", "10"); err == nil {
		t.Fatal("expected error for invalid month")
	}
	if _, err := run(t, "set", "--month", "2025-04", "--amount", "-10"); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if _, err := run(t, "set", "--month", "2025-04", "--amount", "3000"); err != nil {
		t.Fatalf("set: %v", err)
	}
}
