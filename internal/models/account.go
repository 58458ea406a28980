package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// AccountType is the kind of an account.
//
// swagger:enum AccountType
type AccountType string

const (
	AccountTypeCash       AccountType = "CASH"
	AccountTypeBank       AccountType = "BANK"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeOther      AccountType = "OTHER"
)

var accountTypes = []AccountType{AccountTypeCash, AccountTypeBank, AccountTypeCreditCard, AccountTypeSavings, AccountTypeInvestment, AccountTypeOther}

// Account is a place money is kept in, e.g. a wallet or a bank account.
type Account struct {
	DefaultModel
	OwnerID      uuid.UUID           `json:"ownerId" gorm:"type:uuid;uniqueIndex:account_owner_name"`
	Name         string              `json:"name" gorm:"uniqueIndex:account_owner_name" example:"Checking"`
	Type         AccountType         `json:"type" example:"BANK"`
	Balance      decimal.Decimal     `json:"balance" gorm:"type:DECIMAL(20,5)" example:"1250.75"`
	CreditLimit  decimal.NullDecimal `json:"creditLimit" gorm:"type:DECIMAL(20,5)" swaggertype:"string" example:"5000"` // Only set for credit cards
	Currency     string              `json:"currency" example:"EUR"`
	StatementDay int                 `json:"statementDay" example:"15"` // Day of month the statement closes on
	Icon         string              `json:"icon" example:"bank"`
	Color        string              `json:"color" example:"#2563eb"`
	IsActive     bool                `json:"isActive"`
}

var (
	ErrAccountNameNotUnique   = fmt.Errorf("%w: the account name must be unique", ErrConflict)
	ErrAccountTypeInvalid     = fmt.Errorf("%w: the account type must be one of CASH, BANK, CREDIT_CARD, SAVINGS, INVESTMENT, OTHER", ErrValidation)
	ErrAccountNameEmpty       = fmt.Errorf("%w: the account name must not be empty", ErrValidation)
	ErrAccountStatementDay    = fmt.Errorf("%w: the statement day must be between 1 and 31", ErrValidation)
	ErrAccountCreditLimit     = fmt.Errorf("%w: only credit card accounts can have a credit limit", ErrValidation)
	ErrAccountCreditLimitSign = fmt.Errorf("%w: the credit limit must not be negative", ErrValidation)
	ErrAccountInUse           = fmt.Errorf("%w: the account still has transactions, delete them first", ErrConflict)
)

// BeforeSave verifies the account and sets defaults.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Icon = strings.TrimSpace(a.Icon)
	a.Color = strings.TrimSpace(a.Color)
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))

	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	if !slices.Contains(accountTypes, a.Type) {
		return ErrAccountTypeInvalid
	}

	if a.Currency == "" {
		a.Currency = "EUR"
	}

	if _, err := currency.ParseISO(a.Currency); err != nil {
		return fmt.Errorf("%w: '%s' is not an ISO 4217 currency code", ErrValidation, a.Currency)
	}

	if a.StatementDay == 0 {
		a.StatementDay = 1
	}

	if a.StatementDay < 1 || a.StatementDay > 31 {
		return ErrAccountStatementDay
	}

	if a.CreditLimit.Valid {
		if a.Type != AccountTypeCreditCard {
			return ErrAccountCreditLimit
		}

		if a.CreditLimit.Decimal.IsNegative() {
			return ErrAccountCreditLimitSign
		}
	}

	return nil
}

// BeforeDelete refuses to delete accounts that transactions still reference
// as source or destination. Balances of transfer partners could not be
// reverted otherwise.
func (a *Account) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Session(&gorm.Session{NewDB: true}).Model(&Transaction{}).Where("account_id = ? OR target_account_id = ?", a.ID, a.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrAccountInUse
	}

	return nil
}

// AvailableCredit returns the credit left on a credit card account. For all
// other accounts, ok is false.
func (a Account) AvailableCredit() (available decimal.Decimal, ok bool) {
	if a.Type != AccountTypeCreditCard || !a.CreditLimit.Valid {
		return decimal.Zero, false
	}

	return a.CreditLimit.Decimal.Add(a.Balance), true
}
