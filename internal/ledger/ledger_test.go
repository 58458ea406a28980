package ledger_test

import (
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/budgeting"
	"github.com/ledgerbook/backend/internal/ledger"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

var today = types.NewDate(2026, 3, 15)

func (suite *TestSuiteStandard) TestCreateExpenseWithExtras() {
	account := suite.createTestAccount(100)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(1000),
		Date:      today,
		Extra: &models.TransactionExtra{
			ExtraAdd:   decimal.NewFromInt(100),
			ExtraMinus: decimal.NewFromInt(10),
		},
	})
	suite.Require().Nil(err)

	suite.Assert().True(result.Transaction.NetAmount.Equal(decimal.NewFromInt(910)), result.Transaction.NetAmount.String())
	suite.Assert().Empty(result.Notices)
	suite.assertBalance(-810, account)

	var stored models.Transaction
	suite.Require().Nil(models.DB.Preload("Extra").First(&stored, "id = ?", result.Transaction.ID).Error)
	suite.Require().NotNil(stored.Extra)
	suite.Assert().Equal("discount", stored.Extra.ExtraAddLabel)
	suite.Assert().Equal("fee", stored.Extra.ExtraMinusLabel)
}

func (suite *TestSuiteStandard) TestCreateIncome() {
	account := suite.createTestAccount(100)

	_, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(50),
		Date:      today,
	})
	suite.Require().Nil(err)
	suite.assertBalance(150, account)
}

func (suite *TestSuiteStandard) TestCreateNegativeAmount() {
	account := suite.createTestAccount(100)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(-30),
		Date:      today,
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(models.TransactionTypeExpense, result.Transaction.Type)
	suite.Assert().True(result.Transaction.Amount.Equal(decimal.NewFromInt(30)))
	suite.Assert().Contains(result.Notices, "converted to positive expense")
	suite.assertBalance(70, account)
}

func (suite *TestSuiteStandard) TestCreateClampedNet() {
	account := suite.createTestAccount(100)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(20),
		Date:      today,
		Extra:     &models.TransactionExtra{ExtraAdd: decimal.NewFromInt(50)},
	})
	suite.Require().Nil(err)

	suite.Assert().True(result.Transaction.NetAmount.IsZero())
	suite.Assert().Contains(result.Notices, ledger.NoticeNetClamped)
	suite.assertBalance(100, account)
}

func (suite *TestSuiteStandard) TestTransferConservation() {
	source := suite.createTestAccount(500)
	target := suite.createTestAccount(200)

	_, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID:       source.ID,
		TargetAccountID: &target.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(120),
		Date:            today,
	})
	suite.Require().Nil(err)

	suite.assertBalance(380, source)
	suite.assertBalance(320, target)
	suite.Assert().True(suite.balance(source).Add(suite.balance(target)).Equal(decimal.NewFromInt(700)), "transfers must not change the total")
}

func (suite *TestSuiteStandard) TestTransferDropsExtras() {
	source := suite.createTestAccount(500)
	target := suite.createTestAccount(200)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID:       source.ID,
		TargetAccountID: &target.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(100),
		Date:            today,
		Extra:           &models.TransactionExtra{ExtraMinus: decimal.NewFromInt(5)},
	})
	suite.Require().Nil(err)

	suite.Assert().Nil(result.Transaction.Extra)
	suite.Assert().Contains(result.Notices, ledger.NoticeTransferExtras)
	suite.assertBalance(400, source)
	suite.assertBalance(300, target)
}

func (suite *TestSuiteStandard) TestZeroTransfer() {
	source := suite.createTestAccount(500)
	target := suite.createTestAccount(200)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID:       source.ID,
		TargetAccountID: &target.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.Zero,
		Date:            today,
	})
	suite.Require().Nil(err)

	suite.assertBalance(500, source)
	suite.assertBalance(200, target)
	suite.Assert().Contains(result.Notices, ledger.NoticeNoBalanceChange)

	var stored models.Transaction
	suite.Assert().Nil(models.DB.First(&stored, "id = ?", result.Transaction.ID).Error, "zero transfers are stored")
}

func (suite *TestSuiteStandard) TestTransferWithoutTarget() {
	source := suite.createTestAccount(500)

	_, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID: source.ID,
		Type:      models.TransactionTypeTransfer,
		Amount:    decimal.NewFromInt(10),
		Date:      today,
	})
	suite.Assert().ErrorIs(err, models.ErrTransferTargetMissing)
	suite.Assert().ErrorIs(err, models.ErrConsistency)

	suite.assertBalance(500, source)
	suite.Assert().Equal(int64(0), suite.countTransactions())
}

func (suite *TestSuiteStandard) TestUnknownAccount() {
	source := suite.createTestAccount(500)
	missing := uuid.New()

	_, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID:       source.ID,
		TargetAccountID: &missing,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(10),
		Date:            today,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no account matching your query", err.Error())

	suite.assertBalance(500, source)
	suite.Assert().Equal(int64(0), suite.countTransactions())
}

func (suite *TestSuiteStandard) TestAccountOfOtherOwner() {
	account := suite.createTestAccount(500)

	_, err := suite.engine.Create(suite.ctx, uuid.New(), ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(10),
		Date:      today,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.assertBalance(500, account)
}

func (suite *TestSuiteStandard) TestUnknownCategory() {
	account := suite.createTestAccount(500)
	category := uuid.New()

	_, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID:  account.ID,
		CategoryID: &category,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(10),
		Date:       today,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.assertBalance(500, account)
}

func (suite *TestSuiteStandard) TestDraftValidation() {
	account := suite.createTestAccount(500)

	_, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: "GIFT", Date: today})
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)

	_, err = suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeIncome})
	suite.Assert().ErrorIs(err, models.ErrTransactionDateMissing)

	_, err = suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{Type: models.TransactionTypeIncome, Date: today})
	suite.Assert().ErrorIs(err, models.ErrTransactionAccountMissing)
}

func (suite *TestSuiteStandard) TestUpdateReversesBeforeApplying() {
	account := suite.createTestAccount(1000)

	draft := ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(100),
		Date:      today,
	}
	result, err := suite.engine.Create(suite.ctx, suite.owner, draft)
	suite.Require().Nil(err)
	suite.assertBalance(900, account)

	draft.Amount = decimal.NewFromInt(250)
	_, err = suite.engine.Update(suite.ctx, suite.owner, result.Transaction.ID, draft)
	suite.Require().Nil(err)
	suite.assertBalance(750, account)

	// Saving the same version again does not change the balance
	_, err = suite.engine.Update(suite.ctx, suite.owner, result.Transaction.ID, draft)
	suite.Require().Nil(err)
	suite.assertBalance(750, account)
}

func (suite *TestSuiteStandard) TestUpdateMovesAccountsAndExtras() {
	first := suite.createTestAccount(1000)
	second := suite.createTestAccount(1000)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID: first.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(100),
		Date:      today,
		Extra:     &models.TransactionExtra{ExtraMinus: decimal.NewFromInt(5)},
	})
	suite.Require().Nil(err)
	suite.assertBalance(895, first)

	// Turn the expense into a transfer between the accounts
	updated, err := suite.engine.Update(suite.ctx, suite.owner, result.Transaction.ID, ledger.Draft{
		AccountID:       second.ID,
		TargetAccountID: &first.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(300),
		Date:            today,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(result.Transaction.ID, updated.Transaction.ID)

	suite.assertBalance(1300, first)
	suite.assertBalance(700, second)

	var extras int64
	suite.Require().Nil(models.DB.Model(&models.TransactionExtra{}).Count(&extras).Error)
	suite.Assert().Equal(int64(0), extras, "the extra of the expense must be removed")
}

func (suite *TestSuiteStandard) TestUpdateExtra() {
	account := suite.createTestAccount(1000)

	draft := ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(100),
		Date:      today,
		Extra:     &models.TransactionExtra{ExtraMinus: decimal.NewFromInt(5)},
	}
	result, err := suite.engine.Create(suite.ctx, suite.owner, draft)
	suite.Require().Nil(err)

	draft.Extra = &models.TransactionExtra{ExtraAdd: decimal.NewFromInt(20), ExtraAddLabel: "coupon"}
	_, err = suite.engine.Update(suite.ctx, suite.owner, result.Transaction.ID, draft)
	suite.Require().Nil(err)
	suite.assertBalance(920, account)

	var extras []models.TransactionExtra
	suite.Require().Nil(models.DB.Find(&extras).Error)
	suite.Require().Len(extras, 1)
	suite.Assert().Equal("coupon", extras[0].ExtraAddLabel)
	suite.Assert().Equal(result.Transaction.Extra.ID, extras[0].ID)
}

func (suite *TestSuiteStandard) TestUpdateNotFound() {
	account := suite.createTestAccount(1000)

	_, err := suite.engine.Update(suite.ctx, suite.owner, uuid.New(), ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(100),
		Date:      today,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no transaction matching your query", err.Error())
	suite.assertBalance(1000, account)
}

func (suite *TestSuiteStandard) TestDeleteReverses() {
	source := suite.createTestAccount(500)
	target := suite.createTestAccount(200)

	result, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{
		AccountID:       source.ID,
		TargetAccountID: &target.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(120),
		Date:            today,
	})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.engine.Delete(suite.ctx, suite.owner, result.Transaction.ID, false))
	suite.assertBalance(500, source)
	suite.assertBalance(200, target)

	var deleted models.Transaction
	suite.Require().Nil(models.DB.Unscoped().First(&deleted, "id = ?", result.Transaction.ID).Error)
	suite.Assert().Equal(models.LifecycleDeleted, deleted.State())

	err = suite.engine.Delete(suite.ctx, suite.owner, result.Transaction.ID, false)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "deleted transactions cannot be deleted again")
}

func (suite *TestSuiteStandard) TestLinkedTransaction() {
	account := suite.createTestAccount(500)

	first, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Date: today})
	suite.Require().Nil(err)

	second, err := suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(10), Date: today, LinkID: &first.Transaction.ID})
	suite.Require().Nil(err)
	suite.Assert().Equal(first.Transaction.ID, *second.Transaction.LinkID)

	missing := uuid.New()
	_, err = suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(10), Date: today, LinkID: &missing})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.engine.Update(suite.ctx, suite.owner, first.Transaction.ID, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Date: today, LinkID: &first.Transaction.ID})
	suite.Assert().ErrorIs(err, models.ErrTransactionLinkSelf)
}

func (suite *TestSuiteStandard) TestBackdatedExpense() {
	account := suite.createTestAccount(1000)

	budget := models.Budget{
		OwnerID:     suite.owner,
		Name:        "Household",
		Amount:      decimal.NewFromInt(500),
		CycleType:   models.CycleMonth,
		StartDate:   types.NewDate(2026, 1, 1),
		IsRecurring: true,
		IsActive:    true,
		Rollover:    true,
	}
	suite.Require().Nil(models.DB.Create(&budget).Error)

	draft := ledger.Draft{
		AccountID: account.ID,
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(100),
		Date:      types.NewDate(2026, 1, 10),
	}

	_, err := suite.engine.Create(suite.ctx, suite.owner, draft)
	suite.Assert().ErrorIs(err, budgeting.ErrBackdatingNotConfirmed)
	suite.assertBalance(1000, account)
	suite.Assert().Equal(int64(0), suite.countTransactions(), "nothing is written without confirmation")

	draft.ConfirmBackdated = true
	result, err := suite.engine.Create(suite.ctx, suite.owner, draft)
	suite.Require().Nil(err)
	suite.assertBalance(900, account)

	var snapshot models.BudgetPeriodSnapshot
	suite.Require().Nil(models.DB.Where(&models.BudgetPeriodSnapshot{BudgetID: budget.ID}).Order("period_start").First(&snapshot).Error)
	suite.Assert().True(snapshot.SpentAmount.Equal(decimal.NewFromInt(100)), snapshot.SpentAmount.String())
	suite.Assert().True(snapshot.RolloverOut.Equal(decimal.NewFromInt(400)), snapshot.RolloverOut.String())

	// Income does not touch budgets and needs no confirmation
	_, err = suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5), Date: types.NewDate(2026, 1, 11)})
	suite.Require().Nil(err)

	// Expenses in the active period update the pending amount
	_, err = suite.engine.Create(suite.ctx, suite.owner, ledger.Draft{AccountID: account.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(40), Date: today})
	suite.Require().Nil(err)
	suite.Require().Nil(models.DB.First(&budget, "id = ?", budget.ID).Error)
	suite.Assert().True(budget.PendingAmount.Equal(decimal.NewFromInt(40)), budget.PendingAmount.String())

	err = suite.engine.Delete(suite.ctx, suite.owner, result.Transaction.ID, false)
	suite.Assert().ErrorIs(err, budgeting.ErrBackdatingNotConfirmed)
	suite.Require().Nil(suite.engine.Delete(suite.ctx, suite.owner, result.Transaction.ID, true))
}
