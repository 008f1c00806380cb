package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"budgetplan/internal/budget"
	"budgetplan/internal/core"
)

// Store keeps budgets in insertion order.
type Store struct {
	mu    sync.Mutex
	items []core.Budget
}

var _ budget.Store = (*Store)(nil)

type seedFile struct {
	Budgets []seedBudget `toml:"budget"`
}

type seedBudget struct {
	Month  string `toml:"month"`
	Amount int64  `toml:"amount"`
}

func New(budgets ...core.Budget) *Store {
	s := &Store{}
	for _, b := range budgets {
		s.upsert(b)
	}
	return s
}

// NewFromFile seeds a store from a TOML file of [[budget]] tables.
// A missing file yields an empty store.
func NewFromFile(path string) (*Store, error) {
	var seed seedFile
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	s := New()
	for i, sb := range seed.Budgets {
		ym, err := core.ParseYearMonth(sb.Month)
		if err != nil {
			return nil, fmt.Errorf("seed budget %d: %w", i+1, err)
		}
		b := core.Budget{Month: ym, Amount: sb.Amount}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("seed budget %d (%s): %w", i+1, sb.Month, err)
		}
		s.upsert(b)
	}
	return s, nil
}

// FindAll returns a copy of every stored budget.
func (s *Store) FindAll(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Budget(nil), s.items...), nil
}

// Save stores the budget, replacing an existing month in place.
func (s *Store) Save(_ context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsert(b)
	return nil
}

func (s *Store) Delete(_ context.Context, month core.YearMonth) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.items {
		if b.Month.Equal(month) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", month, core.ErrBudgetNotFound)
}

func (s *Store) upsert(b core.Budget) {
	for i := range s.items {
		if s.items[i].Month.Equal(b.Month) {
			s.items[i] = b
			return
		}
	}
	s.items = append(s.items, b)
}
