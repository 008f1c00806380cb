package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"budgetplan/internal/core"
)

func ym(year int, m time.Month) core.YearMonth {
	return core.YearMonth{Year: year, Month: m}
}

func TestMemoryStoreSaveAndFindAll(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, b := range []core.Budget{
		{Month: ym(2025, time.March), Amount: 3},
		{Month: ym(2025, time.January), Amount: 1},
		{Month: ym(2025, time.March), Amount: 30},
	} {
		if err := s.Save(ctx, b); err != nil {
			t.Fatalf("save %v: %v", b, err)
		}
	}

	got, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 budgets, got %v", got)
	}
	// Replacing a month keeps its original position.
	if got[0].Month != ym(2025, time.March) || got[0].Amount != 30 {
		t.Fatalf("unexpected first budget: %v", got[0])
	}
	if got[1].Month != ym(2025, time.January) {
		t.Fatalf("unexpected second budget: %v", got[1])
	}

	got[0].Amount = 999
	again, _ := s.FindAll(ctx)
	if again[0].Amount != 30 {
		t.Fatal("FindAll must return a copy")
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	s := New()
	err := s.Save(context.Background(), core.Budget{Month: ym(2025, time.January), Amount: -5})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := New(core.Budget{Month: ym(2025, time.January), Amount: 1})

	if err := s.Delete(ctx, ym(2025, time.January)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, ym(2025, time.January)); !errors.Is(err, core.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound, got %v", err)
	}
	got, _ := s.FindAll(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %v", got)
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()

	// No file -> empty store
	s, err := NewFromFile(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if got, _ := s.FindAll(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty store, got %v", got)
	}

	mustWrite := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	path := mustWrite("budgets.toml", `
# monthly budgets
[[budget]]
month = "2025-02"
amount = 2800

[[budget]]
month = "2025-01"
amount = 3100
`)
	s, err = NewFromFile(path)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, _ := s.FindAll(context.Background())
	if len(got) != 2 || got[0].Amount != 2800 || got[1].Month != ym(2025, time.January) {
		t.Fatalf("unexpected seeded budgets: %v", got)
	}

	bads := map[string]string{
		"syntax.toml": "[[budget]\nmonth = ",
		"month.toml":  "[[budget]]\nmonth = \"2025-13\"\namount = 1\n",
		"amount.toml": "[[budget]]\nmonth = \"2025-01\"\namount = -1\n",
	}
	for name, content := range bads {
		if _, err := NewFromFile(mustWrite(name, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
