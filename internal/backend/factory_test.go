package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"budgetplan/internal/config"
)

func TestBackendType_IsValid(t *testing.T) {
	for _, bt := range GetBackendTypes() {
		if !bt.IsValid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if BackendType("redis").IsValid() {
		t.Error("redis should not be valid")
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "bogus"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}

	cfg, err := FromAppConfig(&config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "/tmp/x.db",
		SeedFile:     "seed.toml",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "/tmp/x.db" || cfg.SeedFile != "seed.toml" {
		t.Fatalf("unexpected backend config %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"memory without seed", Config{Type: MemoryBackend}, false},
		{"sqlite without path", Config{Type: SQLiteBackend}, true},
		{"postgres without dsn", Config{Type: PostgresBackend}, true},
		{"sheets without spreadsheet", Config{Type: SheetsBackend}, true},
		{"unknown type", Config{Type: "nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateBackend_Memory(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "budgets.toml")
	if err := os.WriteFile(seed, []byte("[[budget]]\nmonth = \"2025-01\"\namount = 3100\n"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	res, err := NewFactory(nil).CreateBackend(context.Background(), Config{Type: MemoryBackend, SeedFile: seed})
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}
	defer res.Close()

	if res.Writer == nil {
		t.Fatal("memory backend should be writable")
	}
	got, err := res.Repository.FindAll(context.Background())
	if err != nil || len(got) != 1 || got[0].Amount != 3100 {
		t.Fatalf("unexpected seeded budgets %v (err=%v)", got, err)
	}
}

func TestCreateBackend_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgets.db")
	res, err := NewFactory(nil).CreateBackend(context.Background(), Config{Type: SQLiteBackend, SQLiteDBPath: path})
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}
	if res.Writer == nil || res.Cleanup == nil {
		t.Fatal("sqlite backend should be writable and closable")
	}
	if err := res.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCreateBackend_InvalidConfig(t *testing.T) {
	if _, err := NewFactory(nil).CreateBackend(context.Background(), Config{Type: SQLiteBackend}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestBackendResult_CloseWithoutCleanup(t *testing.T) {
	var nilResult *BackendResult
	if err := nilResult.Close(); err != nil {
		t.Fatalf("nil result Close: %v", err)
	}
	if err := (&BackendResult{}).Close(); err != nil {
		t.Fatalf("Close without cleanup: %v", err)
	}
}
