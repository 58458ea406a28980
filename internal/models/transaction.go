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

// TransactionType is the direction of a transaction. The amount of a
// transaction is never negative, the direction is encoded in the type.
//
// swagger:enum TransactionType
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer}

// Valid reports if t is a known transaction type.
func (t TransactionType) Valid() bool {
	return slices.Contains(TransactionTypes, t)
}

// Transaction is a movement of money on one account, or between two accounts
// for transfers.
type Transaction struct {
	DefaultModel
	OwnerID            uuid.UUID         `json:"ownerId" gorm:"type:uuid;index"`
	AccountID          uuid.UUID         `json:"accountId" gorm:"type:uuid;index" example:"3ff3e6ac-2b3b-4f7d-8d6e-2a2a0f6b2f55"`
	Account            Account           `json:"-"`
	TargetAccountID    *uuid.UUID        `json:"targetAccountId" gorm:"type:uuid;index" example:"9d1b6a36-49b6-4bd0-9a44-c0f8c3c1f0c5"` // Only set for transfers
	TargetAccount      *Account          `json:"-"`
	CategoryID         *uuid.UUID        `json:"categoryId" gorm:"type:uuid;index"`
	Category           *Category         `json:"-"`
	Type               TransactionType   `json:"type" example:"EXPENSE"`
	Amount             decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,5)" example:"1000"`
	NetAmount          decimal.Decimal   `json:"netAmount" gorm:"type:DECIMAL(20,5)" example:"910"` // Amount after the extra adjustments
	Date               types.Date        `json:"date" gorm:"index" swaggertype:"string" example:"2026-10-17"`
	Note               string            `json:"note" example:"Groceries"`
	LinkID             *uuid.UUID        `json:"linkId" gorm:"type:uuid"` // Links two transactions that belong together
	Extra              *TransactionExtra `json:"extra" gorm:"foreignKey:TransactionID"`
	IsReconciled       bool              `json:"isReconciled"` // All legs of the transaction are reconciled
	ReconciliationDate *time.Time        `json:"reconciliationDate"`
	DeferredUntil      *types.Date       `json:"deferredUntil" swaggertype:"string"` // Reconciliation on the source account is deferred until this date

	// Transfers are reconciled on the statements of both accounts
	ReconciledSource         bool        `json:"reconciledSource"`
	ReconciledDestination    bool        `json:"reconciledDestination"`
	DestinationDeferredUntil *types.Date `json:"destinationDeferredUntil" swaggertype:"string"` // Reconciliation on the target account is deferred until this date
}

var (
	ErrTransactionTypeInvalid     = fmt.Errorf("%w: the transaction type must be one of INCOME, EXPENSE, TRANSFER", ErrValidation)
	ErrTransactionAmountNegative  = fmt.Errorf("%w: the transaction amount must not be negative", ErrValidation)
	ErrTransactionDateMissing     = fmt.Errorf("%w: the transaction date must be set", ErrValidation)
	ErrTransactionAccountMissing  = fmt.Errorf("%w: the account must be set", ErrValidation)
	ErrTransferTargetMissing      = fmt.Errorf("%w: a transfer needs a target account", ErrConsistency)
	ErrTransferSameAccount        = fmt.Errorf("%w: the target account of a transfer must differ from its account", ErrConsistency)
	ErrTargetAccountNotATransfer  = fmt.Errorf("%w: only transfers can have a target account", ErrConsistency)
	ErrTransactionLinkSelf        = fmt.Errorf("%w: a transaction cannot be linked to itself", ErrValidation)
	ErrTransactionExtraNegative   = fmt.Errorf("%w: extra amounts must not be negative", ErrValidation)
	ErrTransactionCategoryOnTrans = fmt.Errorf("%w: transfers cannot have a category", ErrValidation)
)

// BeforeSave enforces the invariants of a stored transaction.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.AccountID == uuid.Nil {
		return ErrTransactionAccountMissing
	}

	if t.Amount.IsNegative() || t.NetAmount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Date.IsZero() {
		return ErrTransactionDateMissing
	}

	if t.LinkID != nil && *t.LinkID == t.ID && t.ID != uuid.Nil {
		return ErrTransactionLinkSelf
	}

	return t.CheckAccounts()
}

// CheckAccounts verifies the account references for the type of the
// transaction.
func (t Transaction) CheckAccounts() error {
	if t.Type == TransactionTypeTransfer {
		if t.TargetAccountID == nil || *t.TargetAccountID == uuid.Nil {
			return ErrTransferTargetMissing
		}

		if *t.TargetAccountID == t.AccountID {
			return ErrTransferSameAccount
		}

		if t.CategoryID != nil {
			return ErrTransactionCategoryOnTrans
		}

		return nil
	}

	if t.TargetAccountID != nil {
		return ErrTargetAccountNotATransfer
	}

	return nil
}

// TransactionExtra holds adjustments to the amount of a transaction,
// e.g. a discount and a fee.
type TransactionExtra struct {
	DefaultModel
	TransactionID   uuid.UUID       `json:"-" gorm:"type:uuid;uniqueIndex"`
	ExtraAdd        decimal.Decimal `json:"extraAdd" gorm:"type:DECIMAL(20,5)" example:"100"`
	ExtraAddLabel   string          `json:"extraAddLabel" example:"discount"`
	ExtraMinus      decimal.Decimal `json:"extraMinus" gorm:"type:DECIMAL(20,5)" example:"10"`
	ExtraMinusLabel string          `json:"extraMinusLabel" example:"fee"`
}

const (
	DefaultExtraAddLabel   = "discount"
	DefaultExtraMinusLabel = "fee"
)

// BeforeSave sets the default labels.
func (e *TransactionExtra) BeforeSave(_ *gorm.DB) error {
	e.SetDefaults()

	if e.ExtraAdd.IsNegative() || e.ExtraMinus.IsNegative() {
		return ErrTransactionExtraNegative
	}

	return nil
}

// SetDefaults fills in the labels when they are empty.
func (e *TransactionExtra) SetDefaults() {
	e.ExtraAddLabel = strings.TrimSpace(e.ExtraAddLabel)
	e.ExtraMinusLabel = strings.TrimSpace(e.ExtraMinusLabel)

	if e.ExtraAddLabel == "" {
		e.ExtraAddLabel = DefaultExtraAddLabel
	}

	if e.ExtraMinusLabel == "" {
		e.ExtraMinusLabel = DefaultExtraMinusLabel
	}
}
