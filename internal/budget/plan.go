// Package budget prorates monthly budget allocations across arbitrary date ranges.
//
// A month's amount is spread evenly over its days. The daily rate is computed
// with truncating integer division before it is multiplied by the number of
// days covered, so a query never yields fractions.
package budget

import (
	"context"
	"fmt"

	"budgetplan/internal/core"
)

// Plan answers proration queries against a Repository. It holds no state
// between calls; every query re-reads the full collection.
type Plan struct {
	repo   Repository
	tracer Tracer
}

// Option configures a Plan.
type Option func(*Plan)

// WithTracer sends intermediate values of each query to t.
func WithTracer(t Tracer) Option {
	return func(p *Plan) {
		p.tracer = t
	}
}

func NewPlan(repo Repository, opts ...Option) *Plan {
	p := &Plan{repo: repo}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Query returns the budgeted amount between start and end, both included.
//
// Months without a record contribute nothing. A start after end yields
// core.ErrInvariantViolation.
func (p *Plan) Query(ctx context.Context, start, end core.Date) (int64, error) {
	start, end = core.DateOf(start.Time), core.DateOf(end.Time)
	if start.After(end) {
		return 0, fmt.Errorf("start %s is after end %s: %w", start, end, core.ErrInvariantViolation)
	}

	budgets, err := p.load(ctx)
	if err != nil {
		return 0, err
	}

	startMonth, endMonth := core.MonthOf(start), core.MonthOf(end)
	switch {
	case startMonth.Equal(endMonth):
		total := prorate(budgets, startMonth, start.DaysUntil(end))
		p.trace(ctx, "Prorated single period",
			"month", startMonth.String(),
			"days", start.DaysUntil(end),
			"total", total)
		return total, nil

	case startMonth.Before(endMonth):
		head := prorate(budgets, startMonth, start.DaysUntil(startMonth.LastDay()))
		p.trace(ctx, "Prorated start period", "month", startMonth.String(), "amount", head)

		var middle int64
		for _, b := range budgetsBetween(budgets, start, end) {
			middle += b.Amount
			p.trace(ctx, "Added whole period in between",
				"month", b.Month.String(),
				"amount", b.Amount,
				"running_total", middle)
		}

		tail := prorate(budgets, endMonth, int64(end.Day()))
		p.trace(ctx, "Prorated end period", "month", endMonth.String(), "amount", tail)

		return head + middle + tail, nil
	}

	return 0, fmt.Errorf("start month %s is after end month %s: %w", startMonth, endMonth, core.ErrInvariantViolation)
}

// BudgetsBetween lists the records whose whole month lies strictly between
// start and end, in the order the repository returned them.
func (p *Plan) BudgetsBetween(ctx context.Context, start, end core.Date) ([]core.Budget, error) {
	budgets, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return budgetsBetween(budgets, core.DateOf(start.Time), core.DateOf(end.Time)), nil
}

func (p *Plan) load(ctx context.Context) ([]core.Budget, error) {
	budgets, err := p.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}
	return budgets, nil
}

func (p *Plan) trace(ctx context.Context, msg string, args ...any) {
	if p.tracer != nil {
		p.tracer.DebugContext(ctx, msg, args...)
	}
}

// prorate charges days days of the month's daily rate.
func prorate(budgets []core.Budget, month core.YearMonth, days int64) int64 {
	return amountFor(budgets, month) / daysInMonthFor(budgets, month) * days
}

// amountFor returns the first matching record's amount, or 0.
func amountFor(budgets []core.Budget, month core.YearMonth) int64 {
	if b, ok := find(budgets, month); ok {
		return b.Amount
	}
	return 0
}

// daysInMonthFor returns the month length when a record exists and 1 otherwise.
// The 1 only guards the division; the amount is 0 in that case anyway.
func daysInMonthFor(budgets []core.Budget, month core.YearMonth) int64 {
	if b, ok := find(budgets, month); ok {
		return b.Month.Days()
	}
	return 1
}

func find(budgets []core.Budget, month core.YearMonth) (core.Budget, bool) {
	for _, b := range budgets {
		if b.Month.Equal(month) {
			return b, true
		}
	}
	return core.Budget{}, false
}

func budgetsBetween(budgets []core.Budget, start, end core.Date) []core.Budget {
	var out []core.Budget
	for _, b := range budgets {
		if b.Month.FirstDay().After(start) && b.Month.LastDay().Before(end) {
			out = append(out, b)
		}
	}
	return out
}
