package sheets

import (
	"strings"
	"testing"
	"time"
)

func TestParseBudgets(t *testing.T) {
	values := [][]interface{}{
		{"Month", "Amount"},
		{"2025-01", "3100"},
		{"2025-02", float64(2800)},
		{"", ""},
		{"2025-03", " 3100 "},
	}
	got, err := parseBudgets(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 budgets, got %v", got)
	}
	if got[0].Month.Month != time.January || got[0].Amount != 3100 {
		t.Fatalf("unexpected first budget: %v", got[0])
	}
	if got[1].Amount != 2800 {
		t.Fatalf("float cell not parsed: %v", got[1])
	}
	if got[2].Month.Month != time.March {
		t.Fatalf("unexpected last budget: %v", got[2])
	}
}

func TestParseBudgets_HeaderOrderAndCase(t *testing.T) {
	values := [][]interface{}{
		{"AMOUNT", "note", "month"},
		{"900", "x", "2024-02"},
	}
	got, err := parseBudgets(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Amount != 900 || got[0].Month.Year != 2024 {
		t.Fatalf("unexpected budgets: %v", got)
	}
}

func TestParseBudgets_Empty(t *testing.T) {
	got, err := parseBudgets(nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected nothing, got %v (err=%v)", got, err)
	}
}

func TestParseBudgets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		values  [][]interface{}
		wantSub string
	}{
		{
			name:    "missing header",
			values:  [][]interface{}{{"Month", "Total"}},
			wantSub: "unexpected header",
		},
		{
			name:    "bad month",
			values:  [][]interface{}{{"Month", "Amount"}, {"January", "1"}},
			wantSub: "row 2",
		},
		{
			name:    "bad amount",
			values:  [][]interface{}{{"Month", "Amount"}, {"2025-01", "1"}, {"2025-02", "12.5"}},
			wantSub: "row 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBudgets(tt.values)
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("expected error containing %q, got %v", tt.wantSub, err)
			}
		})
	}
}
