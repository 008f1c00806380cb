package core

import (
	"errors"
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

type (
	// Date is a calendar date. The embedded time is always midnight UTC.
	Date struct {
		time.Time
	}

	// YearMonth is a calendar month with no day component.
	YearMonth struct {
		Year  int
		Month time.Month
	}

	// Budget is the amount allotted to one whole calendar month.
	Budget struct {
		Month  YearMonth
		Amount int64
	}

	// DateRange is an inclusive span of calendar dates.
	DateRange struct {
		Start Date
		End   Date
	}
)

var (
	ErrInvalidDay         = errors.New("invalid day")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrInvariantViolation = errors.New("invariant violation")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

// Equal reports whether d and o are the same calendar date.
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// DaysUntil counts the days from d to end, both included.
// It is zero or negative when end is before d.
func (d Date) DaysUntil(end Date) int64 {
	return int64(end.Sub(d.Time)/(24*time.Hour)) + 1
}

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) YearMonth {
	return YearMonth{Year: d.Year(), Month: d.Month()}
}

// ParseYearMonth parses a month string in YYYY-MM format.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w", s, ErrInvalidMonth)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (ym YearMonth) Validate() error {
	if ym.Month < time.January || ym.Month > time.December {
		return ErrInvalidMonth
	}
	if ym.Year < 1 || ym.Year > 9999 {
		return fmt.Errorf("year %d out of range: %w", ym.Year, ErrInvalidMonth)
	}
	return nil
}

// FirstDay returns the first calendar day of the month.
func (ym YearMonth) FirstDay() Date {
	return NewDate(ym.Year, int(ym.Month), 1)
}

// LastDay returns the last calendar day of the month.
func (ym YearMonth) LastDay() Date {
	return NewDate(ym.Year, int(ym.Month)+1, 0)
}

// Days returns the length of the month.
func (ym YearMonth) Days() int64 {
	return int64(ym.LastDay().Day())
}

func (ym YearMonth) Before(o YearMonth) bool {
	if ym.Year != o.Year {
		return ym.Year < o.Year
	}
	return ym.Month < o.Month
}

func (ym YearMonth) After(o YearMonth) bool {
	return o.Before(ym)
}

func (ym YearMonth) Equal(o YearMonth) bool {
	return ym.Year == o.Year && ym.Month == o.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

func (b Budget) Validate() error {
	if err := b.Month.Validate(); err != nil {
		return err
	}
	if b.Amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks that both ends are set and Start is not after End.
func (r DateRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("start %s is after end %s: %w", r.Start, r.End, ErrInvariantViolation)
	}
	return nil
}
