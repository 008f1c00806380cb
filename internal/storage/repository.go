package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"budgetplan/internal/budget"
	"budgetplan/internal/core"
)

// Dialect selects the SQL flavour and database/sql driver.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func (d Dialect) driverName() string {
	return string(d)
}

type queries struct {
	findAll string
	upsert  string
	delete  string
}

var dialectQueries = map[Dialect]queries{
	SQLite: {
		findAll: `SELECT month, amount FROM budgets ORDER BY id`,
		upsert: `INSERT INTO budgets (month, amount) VALUES (?, ?)
			ON CONFLICT (month) DO UPDATE SET amount = excluded.amount, updated_at = CURRENT_TIMESTAMP`,
		delete: `DELETE FROM budgets WHERE month = ?`,
	},
	Postgres: {
		findAll: `SELECT month, amount FROM budgets ORDER BY id`,
		upsert: `INSERT INTO budgets (month, amount) VALUES ($1, $2)
			ON CONFLICT (month) DO UPDATE SET amount = excluded.amount, updated_at = now()`,
		delete: `DELETE FROM budgets WHERE month = $1`,
	},
}

// Repository stores budgets in a SQL database. Rows come back in insertion order.
type Repository struct {
	db      *sql.DB
	dialect Dialect
	q       queries
}

var _ budget.Store = (*Repository)(nil)

// NewSQLiteRepository opens (creating if needed) the database file at dbPath.
func NewSQLiteRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	return open(SQLite, dbPath)
}

// NewPostgresRepository connects using a lib/pq connection string.
func NewPostgresRepository(dsn string) (*Repository, error) {
	return open(Postgres, dsn)
}

func open(d Dialect, dsn string) (*Repository, error) {
	db, err := sql.Open(d.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", d, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(d, dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db, dialect: d, q: dialectQueries[d]}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// FindAll implements budget.Repository
func (r *Repository) FindAll(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx, r.q.findAll)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		var (
			month  string
			amount int64
		)
		if err := rows.Scan(&month, &amount); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		ym, err := core.ParseYearMonth(month)
		if err != nil {
			return nil, fmt.Errorf("stored budget: %w", err)
		}
		out = append(out, core.Budget{Month: ym, Amount: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return out, nil
}

// Save implements budget.Writer
func (r *Repository) Save(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, r.q.upsert, b.Month.String(), b.Amount); err != nil {
		return fmt.Errorf("save budget %s: %w", b.Month, err)
	}

	slog.InfoContext(ctx, "Budget saved",
		"dialect", string(r.dialect),
		"month", b.Month.String(),
		"amount", b.Amount)
	return nil
}

// Delete implements budget.Writer
func (r *Repository) Delete(ctx context.Context, month core.YearMonth) error {
	res, err := r.db.ExecContext(ctx, r.q.delete, month.String())
	if err != nil {
		return fmt.Errorf("delete budget %s: %w", month, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete budget %s: %w", month, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", month, core.ErrBudgetNotFound)
	}

	slog.InfoContext(ctx, "Budget deleted", "dialect", string(r.dialect), "month", month.String())
	return nil
}
