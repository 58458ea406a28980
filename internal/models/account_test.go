package models_test

import (
	"testing"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountDefaults() {
	account := suite.createTestAccount(models.Account{Name: "  Wallet  ", Type: models.AccountTypeCash, Currency: "usd"})

	suite.Assert().Equal("Wallet", account.Name)
	suite.Assert().Equal("USD", account.Currency)
	suite.Assert().Equal(1, account.StatementDay)
	suite.Assert().Equal(models.LifecycleActive, account.State())
}

func (suite *TestSuiteStandard) TestAccountValidation() {
	tests := []struct {
		name    string
		account models.Account
		err     error
	}{
		{"Empty name", models.Account{Type: models.AccountTypeBank}, models.ErrAccountNameEmpty},
		{"Unknown type", models.Account{Name: "Safe", Type: "VAULT"}, models.ErrAccountTypeInvalid},
		{"Statement day", models.Account{Name: "Card", Type: models.AccountTypeCreditCard, StatementDay: 32}, models.ErrAccountStatementDay},
		{"Credit limit on bank", models.Account{Name: "Bank", Type: models.AccountTypeBank, CreditLimit: decimal.NewNullDecimal(decimal.NewFromInt(100))}, models.ErrAccountCreditLimit},
		{"Negative credit limit", models.Account{Name: "Card", Type: models.AccountTypeCreditCard, CreditLimit: decimal.NewNullDecimal(decimal.NewFromInt(-100))}, models.ErrAccountCreditLimitSign},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.account.OwnerID = suite.owner
			err := models.DB.Create(&tt.account).Error
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountCurrencyInvalid() {
	err := models.DB.Create(&models.Account{OwnerID: suite.owner, Name: "Bank", Type: models.AccountTypeBank, Currency: "ABC"}).Error
	suite.Assert().ErrorIs(err, models.ErrValidation)
	suite.Assert().Contains(err.Error(), "'ABC' is not an ISO 4217 currency code")
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.Account{OwnerID: suite.owner, Name: "Checking", Type: models.AccountTypeBank}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
	suite.Assert().ErrorIs(err, models.ErrConflict)
}

func (suite *TestSuiteStandard) TestAccountAvailableCredit() {
	card := suite.createTestAccount(models.Account{
		Type:        models.AccountTypeCreditCard,
		Balance:     decimal.NewFromInt(-300),
		CreditLimit: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	})

	available, ok := card.AvailableCredit()
	suite.Assert().True(ok)
	suite.Assert().True(available.Equal(decimal.NewFromInt(700)), available.String())

	bank := suite.createTestAccount(models.Account{})
	_, ok = bank.AvailableCredit()
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestAccountDeleteWithTransactions() {
	source := suite.createTestAccount(models.Account{})
	destination := suite.createTestAccount(models.Account{})

	transfer := models.Transaction{
		OwnerID:         suite.owner,
		AccountID:       source.ID,
		TargetAccountID: &destination.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(100),
		NetAmount:       decimal.NewFromInt(100),
		Date:            types.NewDate(2026, 10, 17),
	}
	suite.Require().Nil(models.DB.Create(&transfer).Error)

	for _, account := range []models.Account{source, destination} {
		err := models.DB.Delete(&account).Error
		suite.Assert().ErrorIs(err, models.ErrAccountInUse)
		suite.Assert().ErrorIs(err, models.ErrConflict)
	}

	suite.Require().Nil(models.DB.Delete(&transfer).Error)
	suite.Assert().Nil(models.DB.Delete(&source).Error)
	suite.Assert().Nil(models.DB.Delete(&destination).Error)
}
