package budgeting_test

import (
	"time"

	"github.com/ledgerbook/backend/internal/budgeting"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/period"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestSpentScope() {
	food := suite.createTestCategory(nil)
	groceries := suite.createTestCategory(&food.ID)
	sweets := suite.createTestCategory(&groceries.ID)
	travel := suite.createTestCategory(nil)

	date := types.NewDate(2026, 3, 2)
	suite.createTestExpense(date, 10, &food.ID)
	suite.createTestExpense(date, 20, &groceries.ID)
	suite.createTestExpense(date, 40, &sweets.ID)
	suite.createTestExpense(date, 80, &travel.ID)
	suite.createTestExpense(date, 160, nil)

	window := period.Window{Start: types.NewDate(2026, 3, 1), End: types.NewDate(2026, 4, 1)}

	// Without links, everything counts
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(1000)})
	scope, err := budgeting.LoadScope(models.DB, budget)
	suite.Require().Nil(err)
	spent, err := budgeting.Spent(models.DB, budget, scope, window)
	suite.Require().Nil(err)
	suite.assertDecimal(310, spent)

	// Included subtree minus excluded subtree
	suite.Require().Nil(models.DB.Create(&models.BudgetCategory{BudgetID: budget.ID, CategoryID: food.ID}).Error)
	suite.Require().Nil(models.DB.Create(&models.BudgetCategory{BudgetID: budget.ID, CategoryID: sweets.ID, IsExcluded: true}).Error)
	scope, err = budgeting.LoadScope(models.DB, budget)
	suite.Require().Nil(err)
	spent, err = budgeting.Spent(models.DB, budget, scope, window)
	suite.Require().Nil(err)
	suite.assertDecimal(30, spent)

	suite.Assert().True(scope.Covers(&groceries.ID))
	suite.Assert().False(scope.Covers(&sweets.ID))
	suite.Assert().False(scope.Covers(&travel.ID))
	suite.Assert().False(scope.Covers(nil))

	// Only exclusions keep everything else, uncategorised included
	other := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(1000)})
	suite.Require().Nil(models.DB.Create(&models.BudgetCategory{BudgetID: other.ID, CategoryID: travel.ID, IsExcluded: true}).Error)
	scope, err = budgeting.LoadScope(models.DB, other)
	suite.Require().Nil(err)
	spent, err = budgeting.Spent(models.DB, other, scope, window)
	suite.Require().Nil(err)
	suite.assertDecimal(230, spent)
	suite.Assert().True(scope.Covers(nil))
}

func (suite *TestSuiteStandard) TestSpentIgnoresOtherTransactions() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(1000)})
	suite.createTestExpense(types.NewDate(2026, 3, 2), 25, nil)

	income := models.Transaction{OwnerID: suite.owner, AccountID: suite.account.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(500), NetAmount: decimal.NewFromInt(500), Date: types.NewDate(2026, 3, 2)}
	suite.Require().Nil(models.DB.Create(&income).Error)

	deleted := suite.createTestExpense(types.NewDate(2026, 3, 3), 70, nil)
	suite.Require().Nil(models.DB.Delete(&deleted).Error)

	suite.createTestExpense(types.NewDate(2026, 4, 1), 90, nil)

	scope, err := budgeting.LoadScope(models.DB, budget)
	suite.Require().Nil(err)
	spent, err := budgeting.Spent(models.DB, budget, scope, period.Window{Start: types.NewDate(2026, 3, 1), End: types.NewDate(2026, 4, 1)})
	suite.Require().Nil(err)
	suite.assertDecimal(25, spent)
}

func (suite *TestSuiteStandard) TestEvaluateClosesPeriods() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250), Rollover: true})

	suite.createTestExpense(types.NewDate(2026, 1, 10), 100, nil)
	suite.createTestExpense(types.NewDate(2026, 2, 5), 300, nil)
	suite.createTestExpense(types.NewDate(2026, 3, 2), 50, nil)

	suite.Require().Nil(suite.engine().Evaluate(models.DB, &budget))

	snapshots := suite.snapshots(budget)
	suite.Require().Len(snapshots, 2)

	suite.Assert().Equal("2026-01-01", snapshots[0].PeriodStart.String())
	suite.Assert().Equal("2026-02-01", snapshots[0].PeriodEnd.String())
	suite.assertDecimal(100, snapshots[0].SpentAmount)
	suite.assertDecimal(0, snapshots[0].RolloverIn)
	suite.assertDecimal(150, snapshots[0].RolloverOut)

	suite.assertDecimal(300, snapshots[1].SpentAmount)
	suite.assertDecimal(150, snapshots[1].RolloverIn)
	suite.assertDecimal(100, snapshots[1].RolloverOut)

	suite.reload(&budget)
	suite.assertDecimal(50, budget.PendingAmount)

	// Evaluating again does not change closed periods
	suite.createTestExpense(types.NewDate(2026, 1, 20), 1000, nil)
	suite.Require().Nil(suite.engine().Evaluate(models.DB, &budget))
	suite.assertDecimal(100, suite.snapshots(budget)[0].SpentAmount)
}

func (suite *TestSuiteStandard) TestEvaluateWithoutRollover() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250)})
	suite.createTestExpense(types.NewDate(2026, 1, 10), 100, nil)

	suite.Require().Nil(suite.engine().Evaluate(models.DB, &budget))

	snapshots := suite.snapshots(budget)
	suite.Require().Len(snapshots, 2)
	suite.assertDecimal(100, snapshots[0].SpentAmount)
	suite.assertDecimal(0, snapshots[0].RolloverOut)
	suite.assertDecimal(0, snapshots[1].RolloverIn)
}

func (suite *TestSuiteStandard) TestEvaluateInactive() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250)})
	suite.Require().Nil(models.DB.Model(&budget).Select("IsActive").UpdateColumns(models.Budget{IsActive: false}).Error)
	budget.IsActive = false

	suite.Require().Nil(suite.engine().Evaluate(models.DB, &budget))
	suite.Assert().Len(suite.snapshots(budget), 0)
}

func (suite *TestSuiteStandard) TestAlertDedup() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(100)})
	engine := suite.engine()

	suite.createTestExpense(types.NewDate(2026, 3, 1), 79, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.Assert().Nil(budget.Alert80SentAt, "79% must not alert")

	suite.createTestExpense(types.NewDate(2026, 3, 2), 6, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.Require().NotNil(budget.Alert80SentAt)
	first := *budget.Alert80SentAt
	suite.Assert().Nil(budget.Alert100SentAt)

	// Crossing again later in the same period keeps the first marker
	suite.now = suite.now.Add(24 * time.Hour)
	suite.createTestExpense(types.NewDate(2026, 3, 3), 5, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.reload(&budget)
	suite.Require().NotNil(budget.Alert80SentAt)
	suite.Assert().True(first.Equal(*budget.Alert80SentAt), "%s != %s", first, budget.Alert80SentAt)

	suite.createTestExpense(types.NewDate(2026, 3, 4), 10, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.Assert().NotNil(budget.Alert100SentAt)

	// Rolling over into April resets both markers
	suite.now = time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.reload(&budget)
	suite.Assert().Nil(budget.Alert80SentAt)
	suite.Assert().Nil(budget.Alert100SentAt)
	suite.assertDecimal(0, budget.PendingAmount)

	suite.createTestExpense(types.NewDate(2026, 4, 2), 90, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.Require().NotNil(budget.Alert80SentAt)
	suite.Assert().True(budget.Alert80SentAt.Equal(suite.now))
}

type snapshotRow struct {
	ID                 string
	Start              string
	Spent              string
	RolloverIn         string
	RolloverOut        string
	LastRecalculatedAt time.Time
}

func rows(snapshots []models.BudgetPeriodSnapshot) []snapshotRow {
	r := make([]snapshotRow, 0, len(snapshots))
	for _, s := range snapshots {
		r = append(r, snapshotRow{
			ID:                 s.ID.String(),
			Start:              s.PeriodStart.String(),
			Spent:              s.SpentAmount.String(),
			RolloverIn:         s.RolloverIn.String(),
			RolloverOut:        s.RolloverOut.String(),
			LastRecalculatedAt: s.LastRecalculatedAt.UTC(),
		})
	}
	return r
}

func (suite *TestSuiteStandard) TestRecalculateCascade() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250), Rollover: true})
	engine := suite.engine()

	suite.createTestExpense(types.NewDate(2026, 1, 10), 100, nil)
	suite.createTestExpense(types.NewDate(2026, 2, 5), 300, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))

	// A backdated expense in January lowers the rollover of both periods
	suite.createTestExpense(types.NewDate(2026, 1, 20), 50, nil)
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return engine.Recalculate(tx, &budget, types.NewDate(2026, 1, 20))
	})
	suite.Require().Nil(err)

	snapshots := suite.snapshots(budget)
	suite.Require().Len(snapshots, 2)
	suite.assertDecimal(150, snapshots[0].SpentAmount)
	suite.assertDecimal(100, snapshots[0].RolloverOut)
	suite.assertDecimal(100, snapshots[1].RolloverIn)
	suite.assertDecimal(50, snapshots[1].RolloverOut)

	suite.reload(&budget)
	suite.Assert().False(budget.IsRecalculating)
	suite.Assert().Nil(budget.RecalculationLeaseUntil)
	suite.Require().NotNil(budget.LastRecalculatedAt)
	suite.Assert().True(budget.LastRecalculatedAt.Equal(suite.now))
}

func (suite *TestSuiteStandard) TestRecalculateIdempotent() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250), Rollover: true})
	engine := suite.engine()

	suite.createTestExpense(types.NewDate(2026, 1, 10), 100, nil)
	suite.createTestExpense(types.NewDate(2026, 2, 5), 300, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))

	suite.createTestExpense(types.NewDate(2026, 2, 1), 20, nil)
	recalculate := func() {
		err := models.DB.Transaction(func(tx *gorm.DB) error {
			return engine.OnTransactionChange(tx, suite.owner, []budgeting.Change{{Date: types.NewDate(2026, 2, 1)}}, true)
		})
		suite.Require().Nil(err)
	}

	recalculate()
	first := rows(suite.snapshots(budget))

	recalculate()
	second := rows(suite.snapshots(budget))

	suite.Assert().Equal(first, second)
	suite.Assert().Equal("320", second[1].Spent)
}

func (suite *TestSuiteStandard) TestOnTransactionChangeBackdatingNotConfirmed() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250), Rollover: true})
	engine := suite.engine()

	suite.createTestExpense(types.NewDate(2026, 1, 10), 100, nil)
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return engine.OnTransactionChange(tx, suite.owner, []budgeting.Change{{Date: types.NewDate(2026, 1, 12)}}, false)
	})
	suite.Assert().ErrorIs(err, budgeting.ErrBackdatingNotConfirmed)
	suite.Assert().ErrorIs(err, models.ErrConflict)

	// Dates in the active period do not need a confirmation
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return engine.OnTransactionChange(tx, suite.owner, []budgeting.Change{{Date: types.NewDate(2026, 3, 12)}}, false)
	})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestOnTransactionChangeScope() {
	food := suite.createTestCategory(nil)
	travel := suite.createTestCategory(nil)

	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250)})
	suite.Require().Nil(models.DB.Create(&models.BudgetCategory{BudgetID: budget.ID, CategoryID: food.ID}).Error)

	// Backdated changes outside of the budget's categories need no confirmation
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return suite.engine().OnTransactionChange(tx, suite.owner, []budgeting.Change{{Date: types.NewDate(2026, 1, 12), CategoryID: &travel.ID}}, false)
	})
	suite.Assert().Nil(err)

	suite.createTestExpense(types.NewDate(2026, 3, 3), 40, &food.ID)
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return suite.engine().OnTransactionChange(tx, suite.owner, []budgeting.Change{{Date: types.NewDate(2026, 3, 3), CategoryID: &food.ID}}, false)
	})
	suite.Require().Nil(err)

	suite.reload(&budget)
	suite.assertDecimal(40, budget.PendingAmount)
}

func (suite *TestSuiteStandard) TestRecalculateLease() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250)})
	engine := suite.engine()

	held := suite.now.Add(30 * time.Second)
	suite.Require().Nil(models.DB.Model(&budget).Select("IsRecalculating", "RecalculationLeaseUntil").UpdateColumns(models.Budget{IsRecalculating: true, RecalculationLeaseUntil: &held}).Error)

	err := engine.RecalculateBudget(models.DB, &budget, budget.StartDate)
	suite.Assert().ErrorIs(err, budgeting.ErrRecalculationInProgress)
	suite.Assert().ErrorIs(err, models.ErrConflict)
	suite.Assert().Len(suite.snapshots(budget), 0, "a rejected recalculation must not write snapshots")

	// An expired lease is taken over
	suite.now = suite.now.Add(time.Minute)
	err = engine.RecalculateBudget(models.DB, &budget, budget.StartDate)
	suite.Require().Nil(err)
	suite.Assert().Len(suite.snapshots(budget), 2)

	suite.reload(&budget)
	suite.Assert().False(budget.IsRecalculating)
	suite.Assert().Nil(budget.RecalculationLeaseUntil)
}

func (suite *TestSuiteStandard) TestChangeBudget() {
	food := suite.createTestCategory(nil)
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250)})
	engine := suite.engine()
	suite.createTestExpense(types.NewDate(2026, 2, 5), 100, nil)

	held := suite.now.Add(30 * time.Second)
	suite.Require().Nil(models.DB.Model(&budget).Select("IsRecalculating", "RecalculationLeaseUntil").UpdateColumns(models.Budget{IsRecalculating: true, RecalculationLeaseUntil: &held}).Error)

	link := models.BudgetCategory{BudgetID: budget.ID, CategoryID: food.ID}
	written := false
	err := engine.ChangeBudget(models.DB, &budget, budget.StartDate, func(tx *gorm.DB) error {
		written = true
		return tx.Create(&link).Error
	})
	suite.Assert().ErrorIs(err, budgeting.ErrRecalculationInProgress)
	suite.Assert().False(written, "the write must not run while another recalculation holds the lease")

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetCategory{}).Where(&models.BudgetCategory{BudgetID: budget.ID}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	// With the lease available, the link and the snapshots are written together
	suite.now = suite.now.Add(time.Minute)
	err = engine.ChangeBudget(models.DB, &budget, budget.StartDate, func(tx *gorm.DB) error {
		return tx.Create(&models.BudgetCategory{BudgetID: budget.ID, CategoryID: food.ID}).Error
	})
	suite.Require().Nil(err)

	snapshots := suite.snapshots(budget)
	suite.Require().Len(snapshots, 2)
	suite.assertDecimal(0, snapshots[1].SpentAmount)

	// A failing change is rolled back as a whole
	err = engine.ChangeBudget(models.DB, &budget, budget.StartDate, func(tx *gorm.DB) error {
		err := tx.Model(&models.BudgetCategory{}).Where(&models.BudgetCategory{BudgetID: budget.ID}).Update("is_excluded", true).Error
		if err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	suite.Assert().ErrorIs(err, gorm.ErrInvalidData)

	var links []models.BudgetCategory
	suite.Require().Nil(models.DB.Where(&models.BudgetCategory{BudgetID: budget.ID}).Find(&links).Error)
	suite.Require().Len(links, 1)
	suite.Assert().False(links[0].IsExcluded)

	suite.reload(&budget)
	suite.Assert().False(budget.IsRecalculating)
	suite.Assert().Nil(budget.RecalculationLeaseUntil)
}

func (suite *TestSuiteStandard) TestRecalculateRemovesStaleSnapshots() {
	budget := suite.createTestBudget(models.Budget{Amount: decimal.NewFromInt(250)})
	engine := suite.engine()
	suite.Require().Nil(engine.Evaluate(models.DB, &budget))
	suite.Require().Len(suite.snapshots(budget), 2)

	budget.StartDate = types.NewDate(2026, 2, 1)
	suite.Require().Nil(models.DB.Save(&budget).Error)

	suite.Require().Nil(engine.RecalculateBudget(models.DB, &budget, budget.StartDate))

	snapshots := suite.snapshots(budget)
	suite.Require().Len(snapshots, 1)
	suite.Assert().Equal("2026-02-01", snapshots[0].PeriodStart.String())
}

func (suite *TestSuiteStandard) TestBackdating() {
	monthly := suite.createTestBudget(models.Budget{Name: "Monthly", Amount: decimal.NewFromInt(250)})
	weekly := suite.createTestBudget(models.Budget{Name: "Weekly", Amount: decimal.NewFromInt(50), CycleType: models.CycleWeek, StartDate: types.NewDate(2026, 3, 1)})

	impacts, err := suite.engine().Backdating(models.DB, suite.owner, types.NewDate(2026, 1, 31))
	suite.Require().Nil(err)
	suite.Require().Len(impacts, 1)
	suite.Assert().Equal(monthly.ID, impacts[0].BudgetID)
	suite.Assert().Equal("2026-01-01", impacts[0].Period.Start.String())
	suite.Assert().Equal(2, impacts[0].Periods)

	impacts, err = suite.engine().Backdating(models.DB, suite.owner, types.NewDate(2026, 3, 2))
	suite.Require().Nil(err)
	suite.Require().Len(impacts, 1)
	suite.Assert().Equal(weekly.ID, impacts[0].BudgetID)

	impacts, err = suite.engine().Backdating(models.DB, suite.owner, types.NewDate(2026, 3, 15))
	suite.Require().Nil(err)
	suite.Assert().Len(impacts, 0)
}
