// Package budgeting keeps budgets up to date with the transactions of
// their owner.
//
// Periods are rolled forward lazily: whenever a budget is read or a
// transaction touching it is written, closed periods without a snapshot
// are snapshotted and the spending of the active period is refreshed.
// Changes to closed periods recalculate all periods from the affected one
// onwards while holding the recalculation lease of the budget.
package budgeting

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/period"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecalculationInProgress = fmt.Errorf("%w: the budget is being recalculated, please try again later", models.ErrConflict)
	ErrBackdatingNotConfirmed  = fmt.Errorf("%w: the date is in a closed budget period, confirm the change to recalculate the budget", models.ErrConflict)
)

var (
	alert80  = decimal.NewFromFloat(0.8)
	alert100 = decimal.NewFromInt(1)
)

// DefaultLease is the time a recalculation may hold a budget before other
// recalculations can take over.
const DefaultLease = 5 * time.Minute

// Engine evaluates and recalculates budgets.
type Engine struct {
	// Lease is the duration of the recalculation lease.
	Lease time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Change is a transaction date and category that a write touched.
type Change struct {
	Date       types.Date
	CategoryID *uuid.UUID
}

// Impact describes the recalculation a backdated change causes for a budget.
type Impact struct {
	BudgetID uuid.UUID     `json:"budgetId"`
	Name     string        `json:"name" example:"Household"`
	Period   period.Window `json:"period"`  // The closed period containing the date
	Periods  int           `json:"periods"` // Number of closed periods that will be recalculated
}

func (e Engine) now() time.Time {
	if e.Now == nil {
		return time.Now().In(time.UTC)
	}
	return e.Now().In(time.UTC)
}

func (e Engine) lease() time.Duration {
	if e.Lease <= 0 {
		return DefaultLease
	}
	return e.Lease
}

// Spent returns the sum of the net amounts of all expenses in the window
// that count against the budget.
//
// Amounts are summed in Go since sqlite sums DECIMAL columns as floats.
func Spent(db *gorm.DB, budget models.Budget, scope Scope, window period.Window) (decimal.Decimal, error) {
	var amounts []decimal.Decimal

	q := db.Model(&models.Transaction{}).
		Where(&models.Transaction{OwnerID: budget.OwnerID, Type: models.TransactionTypeExpense}).
		Where("date >= ? AND date < ?", window.Start, window.End)

	err := scope.Apply(q).Pluck("net_amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount)
	}

	return sum, nil
}

// Evaluate rolls the budget forward to the current time.
//
// It snapshots closed periods that have no snapshot yet, refreshes the
// pending amount of the active period and clears alert markers that were
// set in a previous period.
func (e Engine) Evaluate(db *gorm.DB, budget *models.Budget) error {
	if !budget.IsActive {
		return nil
	}

	now := e.now()

	scope, err := LoadScope(db, *budget)
	if err != nil {
		return err
	}

	if !budget.LeaseHeld(now) {
		err = e.closePeriods(db, *budget, scope, now)
		if err != nil {
			return err
		}
	}

	return e.refreshActive(db, budget, scope, now)
}

// closePeriods writes snapshots for closed periods that do not have one.
func (e Engine) closePeriods(db *gorm.DB, budget models.Budget, scope Scope, now time.Time) error {
	today := types.DateOf(now)

	var snapshots []models.BudgetPeriodSnapshot
	err := db.Where(&models.BudgetPeriodSnapshot{BudgetID: budget.ID}).Order("period_start").Find(&snapshots).Error
	if err != nil {
		return err
	}

	existing := make(map[string]models.BudgetPeriodSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		existing[snapshot.PeriodStart.String()] = snapshot
	}

	carry := decimal.Zero
	for _, window := range closedWindows(budget, budget.StartDate, today) {
		if snapshot, ok := existing[window.Start.String()]; ok {
			carry = snapshot.RolloverOut
			continue
		}

		snapshot, err := e.snapshot(db, budget, scope, window, carry, now)
		if err != nil {
			return err
		}

		err = db.Create(&snapshot).Error
		if err != nil {
			return err
		}

		log.Debug().Str("budget", budget.ID.String()).Str("period", window.Start.String()).Msg("closed budget period")
		carry = snapshot.RolloverOut
	}

	return nil
}

// closedWindows returns the periods of the budget from the one containing
// from up to the last one that has ended before today.
func closedWindows(budget models.Budget, from, today types.Date) []period.Window {
	windows := period.Between(budget, from, today)

	closed := make([]period.Window, 0, len(windows))
	for _, window := range windows {
		if window.End.After(today) {
			break
		}
		closed = append(closed, window)
	}

	return closed
}

func (e Engine) snapshot(db *gorm.DB, budget models.Budget, scope Scope, window period.Window, rolloverIn decimal.Decimal, now time.Time) (models.BudgetPeriodSnapshot, error) {
	spent, err := Spent(db, budget, scope, window)
	if err != nil {
		return models.BudgetPeriodSnapshot{}, err
	}

	snapshot := models.BudgetPeriodSnapshot{
		BudgetID:           budget.ID,
		PeriodStart:        window.Start,
		PeriodEnd:          window.End,
		BudgetAmount:       budget.Amount,
		SpentAmount:        spent,
		RolloverIn:         decimal.Zero,
		RolloverOut:        decimal.Zero,
		LastRecalculatedAt: now,
	}

	if budget.Rollover {
		snapshot.RolloverIn = rolloverIn
		snapshot.RolloverOut = budget.Amount.Add(rolloverIn).Sub(spent)
	}

	return snapshot, nil
}

// refreshActive updates the pending amount and the alert markers for the
// active period.
func (e Engine) refreshActive(db *gorm.DB, budget *models.Budget, scope Scope, now time.Time) error {
	active, ok := period.ForBudget(*budget, types.DateOf(now))

	pending := decimal.Zero
	if ok {
		spent, err := Spent(db, *budget, scope, active)
		if err != nil {
			return err
		}
		pending = spent
	}

	// Markers from earlier periods are reset, they only deduplicate
	// alerts within one period
	if budget.Alert80SentAt != nil && (!ok || budget.Alert80SentAt.Before(active.Start.Time())) {
		budget.Alert80SentAt = nil
	}

	if budget.Alert100SentAt != nil && (!ok || budget.Alert100SentAt.Before(active.Start.Time())) {
		budget.Alert100SentAt = nil
	}

	if ok && budget.Amount.IsPositive() {
		if budget.Alert80SentAt == nil && pending.GreaterThanOrEqual(budget.Amount.Mul(alert80)) {
			sent := now
			budget.Alert80SentAt = &sent
			log.Info().Str("budget", budget.ID.String()).Str("pending", pending.String()).Msg("budget reached 80%")
		}

		if budget.Alert100SentAt == nil && pending.GreaterThanOrEqual(budget.Amount.Mul(alert100)) {
			sent := now
			budget.Alert100SentAt = &sent
			log.Info().Str("budget", budget.ID.String()).Str("pending", pending.String()).Msg("budget reached 100%")
		}
	}

	budget.PendingAmount = pending

	return db.Model(budget).
		Select("PendingAmount", "Alert80SentAt", "Alert100SentAt").
		UpdateColumns(models.Budget{
			PendingAmount:  budget.PendingAmount,
			Alert80SentAt:  budget.Alert80SentAt,
			Alert100SentAt: budget.Alert100SentAt,
		}).Error
}

// acquire takes the recalculation lease of the budget. It fails with
// ErrRecalculationInProgress while another recalculation holds an
// unexpired lease.
func (e Engine) acquire(db *gorm.DB, budget *models.Budget, now time.Time) error {
	until := now.Add(e.lease())

	result := db.Model(&models.Budget{}).
		Where("id = ?", budget.ID).
		Where("is_recalculating = ? OR recalculation_lease_until IS NULL OR recalculation_lease_until < ?", false, now).
		Select("IsRecalculating", "RecalculationLeaseUntil").
		UpdateColumns(models.Budget{IsRecalculating: true, RecalculationLeaseUntil: &until})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecalculationInProgress
	}

	budget.IsRecalculating = true
	budget.RecalculationLeaseUntil = &until
	return nil
}

// release gives the lease back. When recalculated is set, it is stored as
// time of the last recalculation.
func (e Engine) release(db *gorm.DB, budget *models.Budget, recalculated *time.Time) error {
	columns := []string{"IsRecalculating", "RecalculationLeaseUntil"}
	update := models.Budget{}

	if recalculated != nil {
		columns = append(columns, "LastRecalculatedAt")
		update.LastRecalculatedAt = recalculated
		budget.LastRecalculatedAt = recalculated
	}

	err := db.Model(&models.Budget{}).
		Where("id = ?", budget.ID).
		Select(columns).
		UpdateColumns(update).Error
	if err != nil {
		return err
	}

	budget.IsRecalculating = false
	budget.RecalculationLeaseUntil = nil
	return nil
}

// Recalculate recomputes all closed periods of the budget from the one
// containing from and refreshes the active period. It runs in the
// transaction it is passed, a failure rolls back all snapshots.
func (e Engine) Recalculate(tx *gorm.DB, budget *models.Budget, from types.Date) error {
	now := e.now()

	err := e.acquire(tx, budget, now)
	if err != nil {
		return err
	}

	periods, err := e.cascade(tx, budget, from, now)
	if err != nil {
		return err
	}

	err = e.release(tx, budget, &now)
	if err != nil {
		return err
	}

	log.Info().Str("budget", budget.ID.String()).Int("periods", periods).Str("from", from.String()).Msg("recalculated budget")
	return nil
}

// RecalculateBudget recalculates the budget while holding its lease in
// a separate committed transaction, so that concurrent recalculations of
// the same budget are rejected instead of waiting.
func (e Engine) RecalculateBudget(db *gorm.DB, budget *models.Budget, from types.Date) error {
	return e.ChangeBudget(db, budget, from, nil)
}

// ChangeBudget takes the lease of the budget, then runs write and the
// recalculation from the period containing from in one transaction.
//
// write changes the configuration of the budget, its category links or
// both. Nothing is written when the lease is held by another
// recalculation, and a failing write or recalculation rolls back both.
func (e Engine) ChangeBudget(db *gorm.DB, budget *models.Budget, from types.Date, write func(tx *gorm.DB) error) error {
	now := e.now()

	err := db.Transaction(func(tx *gorm.DB) error {
		return e.acquire(tx, budget, now)
	})
	if err != nil {
		return err
	}

	var periods int
	err = db.Transaction(func(tx *gorm.DB) error {
		if write != nil {
			if err := write(tx); err != nil {
				return err
			}
		}

		periods, err = e.cascade(tx, budget, from, now)
		if err != nil {
			return err
		}

		return e.release(tx, budget, &now)
	})
	if err != nil {
		// The lease expires anyway, releasing it early lets the user retry
		if releaseErr := e.release(db, budget, nil); releaseErr != nil {
			log.Error().Err(releaseErr).Str("budget", budget.ID.String()).Msg("could not release recalculation lease")
		}
		return err
	}

	log.Info().Str("budget", budget.ID.String()).Int("periods", periods).Str("from", from.String()).Msg("recalculated budget")
	return nil
}

// cascade rewrites the snapshots of all closed periods from the one
// containing from, carrying rollover amounts forward. It returns the
// number of periods written.
func (e Engine) cascade(tx *gorm.DB, budget *models.Budget, from types.Date, now time.Time) (int, error) {
	if !budget.IsActive {
		return 0, nil
	}

	scope, err := LoadScope(tx, *budget)
	if err != nil {
		return 0, err
	}

	today := types.DateOf(now)
	full := !from.After(budget.StartDate)

	carry := decimal.Zero
	if !full {
		window, ok := period.ForBudget(*budget, from)

		var previous models.BudgetPeriodSnapshot
		err = tx.Where(&models.BudgetPeriodSnapshot{BudgetID: budget.ID}).
			Where("period_start < ?", window.Start).
			Order("period_start DESC").
			Limit(1).
			Find(&previous).Error
		if err != nil {
			return 0, err
		}

		switch {
		case previous.ID != uuid.Nil && ok && previous.PeriodEnd.Equal(window.Start):
			carry = previous.RolloverOut
			from = window.Start
		case ok && window.Start.Equal(budget.StartDate):
			from = window.Start
		default:
			// The periods before are not snapshotted, start over
			full = true
		}
	}

	if full {
		from = budget.StartDate
	}

	windows := closedWindows(*budget, from, today)
	starts := make([]types.Date, 0, len(windows))

	for _, window := range windows {
		snapshot, err := e.snapshot(tx, *budget, scope, window, carry, now)
		if err != nil {
			return 0, err
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "budget_id"}, {Name: "period_start"}},
			DoUpdates: clause.AssignmentColumns([]string{"period_end", "budget_amount", "spent_amount", "rollover_in", "rollover_out", "last_recalculated_at", "updated_at"}),
		}).Create(&snapshot).Error
		if err != nil {
			return 0, err
		}

		carry = snapshot.RolloverOut
		starts = append(starts, window.Start)
	}

	// Snapshots that no longer match a period of the budget are removed
	if full {
		q := tx.Unscoped().Where("budget_id = ?", budget.ID)
		if len(starts) > 0 {
			q = q.Where("period_start NOT IN ?", starts)
		}

		err = q.Delete(&models.BudgetPeriodSnapshot{}).Error
		if err != nil {
			return 0, err
		}
	}

	err = e.refreshActive(tx, budget, scope, now)
	if err != nil {
		return 0, err
	}

	return len(windows), nil
}

// OnTransactionChange updates all active budgets of the owner that the
// changes count against.
//
// Changes in the active period refresh the pending amount. Changes in a
// closed period recalculate the budget from that period on, which needs
// to be confirmed by the user.
func (e Engine) OnTransactionChange(tx *gorm.DB, owner uuid.UUID, changes []Change, confirmed bool) error {
	if len(changes) == 0 {
		return nil
	}

	var budgets []models.Budget
	err := tx.Where(&models.Budget{OwnerID: owner}).Where("is_active = ?", true).Find(&budgets).Error
	if err != nil {
		return err
	}

	today := types.DateOf(e.now())

	for i := range budgets {
		budget := &budgets[i]

		scope, err := LoadScope(tx, *budget)
		if err != nil {
			return err
		}

		affected := false
		var backdated *types.Date
		for _, change := range changes {
			window, ok := period.ForBudget(*budget, change.Date)
			if !ok || !scope.Covers(change.CategoryID) {
				continue
			}

			affected = true
			if !window.End.After(today) && (backdated == nil || change.Date.Before(*backdated)) {
				date := change.Date
				backdated = &date
			}
		}

		if !affected {
			continue
		}

		if backdated == nil {
			err = e.Evaluate(tx, budget)
			if err != nil {
				return err
			}
			continue
		}

		if !confirmed {
			return ErrBackdatingNotConfirmed
		}

		err = e.Recalculate(tx, budget, *backdated)
		if err != nil {
			return err
		}
	}

	return nil
}

// Backdating returns the budgets for which a change at the date lands in
// a closed period, with the periods that would be recalculated.
func (e Engine) Backdating(db *gorm.DB, owner uuid.UUID, date types.Date) ([]Impact, error) {
	var budgets []models.Budget
	err := db.Where(&models.Budget{OwnerID: owner}).Where("is_active = ?", true).Order("name").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	today := types.DateOf(e.now())
	impacts := make([]Impact, 0)

	for _, budget := range budgets {
		window, ok := period.ForBudget(budget, date)
		if !ok || window.End.After(today) {
			continue
		}

		impacts = append(impacts, Impact{
			BudgetID: budget.ID,
			Name:     budget.Name,
			Period:   window,
			Periods:  len(closedWindows(budget, date, today)),
		})
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		return impacts[i].Period.Start.Before(impacts[j].Period.Start)
	})

	return impacts, nil
}
