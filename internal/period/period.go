// Package period computes the date windows that budgets and account
// statements are evaluated in.
//
// All windows are half open: Start is part of the window, End is not.
package period

import (
	"time"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

// Window is the date range [Start, End).
type Window struct {
	Start types.Date `json:"start" swaggertype:"string" example:"2026-10-01"`
	End   types.Date `json:"end" swaggertype:"string" example:"2026-11-01"` // Exclusive
}

// Contains reports if the date is within the window.
func (w Window) Contains(date types.Date) bool {
	return !date.Before(w.Start) && date.Before(w.End)
}

// Last returns the last day of the window.
func (w Window) Last() types.Date {
	return w.End.AddDate(0, 0, -1)
}

// Closed reports if the window has ended at the time.
func (w Window) Closed(now time.Time) bool {
	return !types.DateOf(now.In(time.UTC)).Before(w.End)
}

// clampDay returns the date for the day in the month. Days after the end
// of the month are moved to the last day of the month.
func clampDay(year int, month time.Month, day int) types.Date {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}

	return types.NewDate(year, month, day)
}

func monthly(day int, date types.Date) Window {
	t := date.Time()
	candidate := clampDay(t.Year(), t.Month(), day)

	if !date.Before(candidate) {
		return Window{Start: candidate, End: clampDay(t.Year(), t.Month()+1, day)}
	}

	return Window{Start: clampDay(t.Year(), t.Month()-1, day), End: candidate}
}

func yearly(anchor, date types.Date) Window {
	year := date.Time().Year()
	month, day := anchor.Time().Month(), anchor.Time().Day()
	candidate := clampDay(year, month, day)

	if !date.Before(candidate) {
		return Window{Start: candidate, End: clampDay(year+1, month, day)}
	}

	return Window{Start: clampDay(year-1, month, day), End: candidate}
}

// Containing returns the aligned window of the cycle that contains the date.
//
// startDay is the weekday (0 = Sunday) for weekly cycles and the day of the
// month for monthly cycles. Yearly cycles start on the anniversary of the
// anchor.
func Containing(cycle models.CycleType, startDay int, anchor, date types.Date) Window {
	switch cycle {
	case models.CycleDay:
		return Window{Start: date, End: date.AddDate(0, 0, 1)}
	case models.CycleWeek:
		offset := (int(date.Weekday()) - startDay + 7) % 7
		start := date.AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}
	case models.CycleMonth:
		return monthly(startDay, date)
	default:
		return yearly(anchor, date)
	}
}

// Lifetime returns the dates a budget covers. For recurring budgets
// without an end date, End is the zero date.
func Lifetime(budget models.Budget) Window {
	lifetime := Window{Start: budget.StartDate}

	switch {
	case budget.EndDate != nil:
		lifetime.End = budget.EndDate.AddDate(0, 0, 1)
	case !budget.IsRecurring:
		lifetime.End = Containing(budget.CycleType, budget.CycleStartDay, budget.StartDate, budget.StartDate).End
	}

	return lifetime
}

// ForBudget returns the period of the budget that contains the date. ok is
// false when the date is outside of the lifetime of the budget.
func ForBudget(budget models.Budget, date types.Date) (window Window, ok bool) {
	lifetime := Lifetime(budget)

	if date.Before(lifetime.Start) || (!lifetime.End.IsZero() && !date.Before(lifetime.End)) {
		return Window{}, false
	}

	if !budget.IsRecurring {
		return lifetime, true
	}

	window = Containing(budget.CycleType, budget.CycleStartDay, budget.StartDate, date)
	window.Start = types.Max(window.Start, lifetime.Start)
	if !lifetime.End.IsZero() {
		window.End = types.Min(window.End, lifetime.End)
	}

	return window, true
}

// Between returns all periods of the budget that start before until,
// beginning with the period containing from.
func Between(budget models.Budget, from, until types.Date) []Window {
	windows := make([]Window, 0)

	from = types.Max(from, budget.StartDate)
	window, ok := ForBudget(budget, from)
	for ok && window.Start.Before(until) {
		windows = append(windows, window)
		window, ok = ForBudget(budget, window.End)
	}

	return windows
}

// Statement returns the statement window of the account that contains the
// date. Credit cards close on their statement day, all other accounts by
// calendar month.
func Statement(account models.Account, date types.Date) Window {
	if account.Type == models.AccountTypeCreditCard {
		return monthly(account.StatementDay, date)
	}

	return monthly(1, date)
}
