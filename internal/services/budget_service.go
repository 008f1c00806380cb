package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"budgetplan/internal/budget"
	"budgetplan/internal/core"
	applog "budgetplan/internal/log"
)

// ErrReadOnly is returned for writes against a backend without a budget.Writer.
var ErrReadOnly = errors.New("budget backend is read-only")

// Publisher announces budget changes to other processes.
type Publisher interface {
	PublishBudgetSaved(ctx context.Context, b core.Budget) error
	PublishBudgetDeleted(ctx context.Context, month core.YearMonth) error
}

// BudgetService orchestrates budget edits across storage and change notification,
// and answers proration queries.
type BudgetService struct {
	repo      budget.Repository
	writer    budget.Writer
	publisher Publisher
	plan      *budget.Plan
	logger    *applog.Logger
}

// NewBudgetService wires a service. writer and publisher may be nil.
func NewBudgetService(repo budget.Repository, writer budget.Writer, publisher Publisher, logger *applog.Logger, planOpts ...budget.Option) *BudgetService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &BudgetService{
		repo:      repo,
		writer:    writer,
		publisher: publisher,
		plan:      budget.NewPlan(repo, planOpts...),
		logger:    logger.WithComponent(applog.ComponentService),
	}
}

// SetBudget saves a month's budget and publishes the change.
func (s *BudgetService) SetBudget(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid budget %s: %w", b.Month, err)
	}
	if s.writer == nil {
		return ErrReadOnly
	}
	if err := s.writer.Save(ctx, b); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBudgetSaved(ctx, b); err != nil {
			// The budget is stored; a lost notification is not worth failing the edit.
			s.logger.ErrorContext(ctx, "Failed to publish budget change",
				applog.NewFields().WithOperation(applog.OpPublish).WithBudget(b.Month.String(), b.Amount).WithError(err).ToSlice()...)
		}
	}
	return nil
}

// DeleteBudget removes a month's budget and publishes the change.
func (s *BudgetService) DeleteBudget(ctx context.Context, month core.YearMonth) error {
	if s.writer == nil {
		return ErrReadOnly
	}
	if err := s.writer.Delete(ctx, month); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBudgetDeleted(ctx, month); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish budget deletion",
				applog.FieldMonth, month.String(), applog.FieldError, err)
		}
	}
	return nil
}

// ListBudgets returns every stored budget in repository order.
func (s *BudgetService) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	budgets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// Prorate returns the budgeted amount between start and end, both included.
func (s *BudgetService) Prorate(ctx context.Context, start, end core.Date) (int64, error) {
	began := time.Now()
	total, err := s.plan.Query(ctx, start, end)
	fields := applog.NewFields().
		WithOperation(applog.OpQuery).
		WithRange(start.String(), end.String())
	fields[applog.FieldDuration] = time.Since(began).Milliseconds()
	if err != nil {
		s.logger.WarnContext(ctx, "Proration failed", fields.WithError(err).ToSlice()...)
		return 0, err
	}
	fields[applog.FieldTotal] = total
	s.logger.InfoContext(ctx, "Proration complete", fields.ToSlice()...)
	return total, nil
}

// Close releases the publisher when it holds a connection.
func (s *BudgetService) Close() error {
	if c, ok := s.publisher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close publisher: %w", err)
		}
	}
	return nil
}
