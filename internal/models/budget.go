package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CycleType is the length of a budget period.
//
// swagger:enum CycleType
type CycleType string

const (
	CycleYear  CycleType = "YEAR"
	CycleMonth CycleType = "MONTH"
	CycleWeek  CycleType = "WEEK"
	CycleDay   CycleType = "DAY"
)

var cycleTypes = []CycleType{CycleYear, CycleMonth, CycleWeek, CycleDay}

// Budget limits spending for a set of categories per period.
type Budget struct {
	DefaultModel
	OwnerID       uuid.UUID       `json:"ownerId" gorm:"type:uuid;index"`
	Name          string          `json:"name" example:"Household"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,5)" example:"800"`
	CycleType     CycleType       `json:"cycleType" example:"MONTH"`
	CycleStartDay int             `json:"cycleStartDay" example:"1"` // Weekday (0 = Sunday) for weekly budgets, day of month for monthly budgets
	StartDate     types.Date      `json:"startDate" swaggertype:"string" example:"2026-01-01"`
	EndDate       *types.Date     `json:"endDate" swaggertype:"string" example:"2026-12-31"` // Inclusive
	IsRecurring   bool            `json:"isRecurring"`
	Rollover      bool            `json:"rollover"` // Carry unspent or overspent amounts into the next period
	IsActive      bool            `json:"isActive"`

	PendingAmount           decimal.Decimal `json:"pendingAmount" gorm:"type:DECIMAL(20,5)" example:"312.5"` // Spent in the active period
	Alert80SentAt           *time.Time      `json:"alert80SentAt"`
	Alert100SentAt          *time.Time      `json:"alert100SentAt"`
	IsRecalculating         bool            `json:"isRecalculating"`
	RecalculationLeaseUntil *time.Time      `json:"recalculationLeaseUntil"`
	LastRecalculatedAt      *time.Time      `json:"lastRecalculatedAt"`
}

var (
	ErrBudgetNameEmpty        = fmt.Errorf("%w: the budget name must not be empty", ErrValidation)
	ErrBudgetCycleTypeInvalid = fmt.Errorf("%w: the cycle type must be one of YEAR, MONTH, WEEK, DAY", ErrValidation)
	ErrBudgetAmountNegative   = fmt.Errorf("%w: the budget amount must not be negative", ErrValidation)
	ErrBudgetStartDateMissing = fmt.Errorf("%w: the start date must be set", ErrValidation)
	ErrBudgetEndBeforeStart   = fmt.Errorf("%w: the end date must not be before the start date", ErrValidation)
	ErrBudgetWeekStartDay     = fmt.Errorf("%w: the cycle start day of a weekly budget must be between 0 (Sunday) and 6 (Saturday)", ErrValidation)
	ErrBudgetMonthStartDay    = fmt.Errorf("%w: the cycle start day of a monthly budget must be between 1 and 31", ErrValidation)
)

// BeforeSave verifies the budget configuration.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrBudgetNameEmpty
	}

	if !slices.Contains(cycleTypes, b.CycleType) {
		return ErrBudgetCycleTypeInvalid
	}

	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	if b.StartDate.IsZero() {
		return ErrBudgetStartDateMissing
	}

	if b.EndDate != nil && b.EndDate.IsZero() {
		b.EndDate = nil
	}

	if b.EndDate != nil && b.EndDate.Before(b.StartDate) {
		return ErrBudgetEndBeforeStart
	}

	switch b.CycleType {
	case CycleWeek:
		if b.CycleStartDay < 0 || b.CycleStartDay > 6 {
			return ErrBudgetWeekStartDay
		}
	case CycleMonth:
		if b.CycleStartDay == 0 {
			b.CycleStartDay = 1
		}

		if b.CycleStartDay < 1 || b.CycleStartDay > 31 {
			return ErrBudgetMonthStartDay
		}
	default:
		b.CycleStartDay = 0
	}

	return nil
}

// Covers reports if the date is within the lifetime of the budget.
func (b Budget) Covers(date types.Date) bool {
	if date.Before(b.StartDate) {
		return false
	}

	return b.EndDate == nil || !date.After(*b.EndDate)
}

// LeaseHeld reports if another recalculation holds the budget at the time.
func (b Budget) LeaseHeld(now time.Time) bool {
	return b.IsRecalculating && b.RecalculationLeaseUntil != nil && b.RecalculationLeaseUntil.After(now)
}

// BudgetCategory links a category to a budget.
//
// An excluded category removes its subtree from the categories the budget
// covers.
type BudgetCategory struct {
	DefaultModel
	BudgetID   uuid.UUID       `json:"budgetId" gorm:"type:uuid;uniqueIndex:budget_category_unique"`
	Budget     Budget          `json:"-"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"type:uuid;uniqueIndex:budget_category_unique"`
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,5)" example:"200"`
	IsExcluded bool            `json:"isExcluded"`
}

var (
	ErrBudgetCategoryNotUnique      = fmt.Errorf("%w: the category is already linked to the budget", ErrConflict)
	ErrBudgetCategoryAmountNegative = fmt.Errorf("%w: the category amount must not be negative", ErrValidation)
)

func (bc *BudgetCategory) BeforeSave(_ *gorm.DB) error {
	if bc.Amount.IsNegative() {
		return ErrBudgetCategoryAmountNegative
	}

	return nil
}

// BudgetPeriodSnapshot is the outcome of a closed budget period.
type BudgetPeriodSnapshot struct {
	DefaultModel
	BudgetID           uuid.UUID       `json:"budgetId" gorm:"type:uuid;uniqueIndex:budget_period_unique"`
	Budget             Budget          `json:"-"`
	PeriodStart        types.Date      `json:"periodStart" gorm:"uniqueIndex:budget_period_unique" swaggertype:"string" example:"2026-09-01"`
	PeriodEnd          types.Date      `json:"periodEnd" swaggertype:"string" example:"2026-10-01"` // Exclusive
	BudgetAmount       decimal.Decimal `json:"budgetAmount" gorm:"type:DECIMAL(20,5)" example:"800"`
	SpentAmount        decimal.Decimal `json:"spentAmount" gorm:"type:DECIMAL(20,5)" example:"743.2"`
	RolloverIn         decimal.Decimal `json:"rolloverIn" gorm:"type:DECIMAL(20,5)" example:"12.5"`
	RolloverOut        decimal.Decimal `json:"rolloverOut" gorm:"type:DECIMAL(20,5)" example:"69.3"`
	LastRecalculatedAt time.Time       `json:"lastRecalculatedAt"`
}
