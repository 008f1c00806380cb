package budget

import (
	"context"

	"budgetplan/internal/core"
)

// Ports for budget record collaborators.
type (
	// Repository returns every known budget record, in no guaranteed order.
	Repository interface {
		FindAll(ctx context.Context) ([]core.Budget, error)
	}

	// Writer stores and removes monthly budgets.
	Writer interface {
		// Save inserts the budget or replaces the amount of an existing month.
		Save(ctx context.Context, b core.Budget) error
		// Delete removes the month's budget, or returns core.ErrBudgetNotFound.
		Delete(ctx context.Context, month core.YearMonth) error
	}

	Store interface {
		Repository
		Writer
	}

	// Tracer receives diagnostic narration of a proration. *slog.Logger and
	// *log.Logger both satisfy it.
	Tracer interface {
		DebugContext(ctx context.Context, msg string, args ...any)
	}
)
