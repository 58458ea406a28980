// Package ledger writes transactions and keeps account balances
// consistent with them.
//
// Every write runs in a single database transaction: balance changes,
// the transaction row, its extra adjustments and the budget updates are
// committed together or not at all.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/budgeting"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCommitFailed = fmt.Errorf("%w: the change could not be saved, nothing has been changed", models.ErrConflict)

// Notices returned with a successful write.
const (
	NoticeNetClamped      = "the adjustments exceed the amount, the net amount was set to 0"
	NoticeTransferExtras  = "extra adjustments are not applied to transfers and have been dropped"
	NoticeNoBalanceChange = "the transfer amount is 0, no balance has been changed"
)

// BudgetHook is notified about the dates and categories a write touched.
// It runs inside the transaction of the write.
type BudgetHook interface {
	OnTransactionChange(tx *gorm.DB, owner uuid.UUID, changes []budgeting.Change, confirmed bool) error
}

// Engine writes transactions.
type Engine struct {
	DB      *gorm.DB
	Budgets BudgetHook
}

// Draft is a transaction as entered by a user.
type Draft struct {
	AccountID       uuid.UUID
	TargetAccountID *uuid.UUID
	CategoryID      *uuid.UUID
	Type            models.TransactionType
	Amount          decimal.Decimal
	Date            types.Date
	Note            string
	LinkID          *uuid.UUID
	Extra           *models.TransactionExtra

	// ConfirmBackdated confirms the recalculation of closed budget periods
	ConfirmBackdated bool
}

// Result is a written transaction with the notices for the user.
type Result struct {
	Transaction models.Transaction
	Notices     []string
}

// effects are balance changes per account.
type effects map[uuid.UUID]decimal.Decimal

func (e effects) add(account uuid.UUID, amount decimal.Decimal) {
	e[account] = e[account].Add(amount)
}

// effectOf returns the balance changes a stored transaction causes.
func effectOf(t models.Transaction) effects {
	e := effects{}

	switch t.Type {
	case models.TransactionTypeIncome:
		e.add(t.AccountID, t.NetAmount)
	case models.TransactionTypeExpense:
		e.add(t.AccountID, t.NetAmount.Neg())
	case models.TransactionTypeTransfer:
		e.add(t.AccountID, t.Amount.Neg())
		if t.TargetAccountID != nil {
			e.add(*t.TargetAccountID, t.Amount)
		}
	}

	return e
}

// reverse returns the changes that undo e.
func (e effects) reverse() effects {
	r := effects{}
	for account, amount := range e {
		r[account] = amount.Neg()
	}
	return r
}

// then combines two sets of changes.
func (e effects) then(next effects) effects {
	combined := effects{}
	for account, amount := range e {
		combined.add(account, amount)
	}
	for account, amount := range next {
		combined.add(account, amount)
	}
	return combined
}

// prepare validates and normalizes a draft into the transaction to store.
// It does not access the database.
func prepare(owner uuid.UUID, draft Draft) (models.Transaction, []string, error) {
	notices := make([]string, 0)

	if !draft.Type.Valid() {
		return models.Transaction{}, nil, models.ErrTransactionTypeInvalid
	}

	if draft.AccountID == uuid.Nil {
		return models.Transaction{}, nil, models.ErrTransactionAccountMissing
	}

	if draft.Date.IsZero() {
		return models.Transaction{}, nil, models.ErrTransactionDateMissing
	}

	normalized := Normalize(draft.Type, draft.Amount)
	if normalized.Notice != "" {
		notices = append(notices, normalized.Notice)
	}

	transaction := models.Transaction{
		OwnerID:         owner,
		AccountID:       draft.AccountID,
		TargetAccountID: draft.TargetAccountID,
		CategoryID:      draft.CategoryID,
		Type:            normalized.Type,
		Amount:          normalized.Amount,
		Date:            draft.Date,
		Note:            draft.Note,
		LinkID:          draft.LinkID,
	}

	err := transaction.CheckAccounts()
	if err != nil {
		return models.Transaction{}, nil, err
	}

	extraAdd, extraMinus := decimal.Zero, decimal.Zero
	if draft.Extra != nil {
		if transaction.Type == models.TransactionTypeTransfer {
			notices = append(notices, NoticeTransferExtras)
		} else {
			if draft.Extra.ExtraAdd.IsNegative() || draft.Extra.ExtraMinus.IsNegative() {
				return models.Transaction{}, nil, models.ErrTransactionExtraNegative
			}

			extra := models.TransactionExtra{
				ExtraAdd:        draft.Extra.ExtraAdd,
				ExtraAddLabel:   draft.Extra.ExtraAddLabel,
				ExtraMinus:      draft.Extra.ExtraMinus,
				ExtraMinusLabel: draft.Extra.ExtraMinusLabel,
			}
			extra.SetDefaults()
			transaction.Extra = &extra
			extraAdd, extraMinus = extra.ExtraAdd, extra.ExtraMinus
		}
	}

	net, clamped := NetAmount(transaction.Amount, extraAdd, extraMinus, transaction.Type)
	if clamped {
		notices = append(notices, NoticeNetClamped)
	}
	transaction.NetAmount = net

	if transaction.Type == models.TransactionTypeTransfer && transaction.Amount.IsZero() {
		notices = append(notices, NoticeNoBalanceChange)
	}

	return transaction, notices, nil
}

// budgetChange returns the budget change for a transaction. Only expenses
// count against budgets.
func budgetChange(t models.Transaction) []budgeting.Change {
	if t.Type != models.TransactionTypeExpense {
		return nil
	}

	return []budgeting.Change{{Date: t.Date, CategoryID: t.CategoryID}}
}

// run executes fn in a transaction. A failing commit is logged and reported
// as ErrCommitFailed, the store rolls back all changes.
func (e Engine) run(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx := e.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err = fn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	err = tx.Commit().Error
	if err != nil {
		log.Error().Err(err).Msg("commit of ledger write failed")
		return ErrCommitFailed
	}

	return nil
}

// apply locks all accounts of the changes, verifies they belong to the
// owner and updates their balances.
func apply(tx *gorm.DB, owner uuid.UUID, changes effects) error {
	ids := make([]uuid.UUID, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}

	// A stable locking order avoids deadlocks between concurrent writes
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	accounts := make([]models.Account, 0, len(ids))
	for _, id := range ids {
		var account models.Account
		err := models.ForUpdate(tx).Where(&models.Account{OwnerID: owner}).First(&account, "id = ?", id).Error
		if err != nil {
			return err
		}
		accounts = append(accounts, account)
	}

	for _, account := range accounts {
		change := changes[account.ID]
		if change.IsZero() {
			continue
		}

		err := tx.Model(&account).UpdateColumn("balance", account.Balance.Add(change)).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// verifyReferences checks that the category and the linked transaction
// belong to the owner.
func verifyReferences(tx *gorm.DB, owner uuid.UUID, transaction models.Transaction) error {
	if transaction.CategoryID != nil {
		err := tx.Where(&models.Category{OwnerID: owner}).First(&models.Category{}, "id = ?", *transaction.CategoryID).Error
		if err != nil {
			return err
		}
	}

	if transaction.LinkID != nil {
		if transaction.ID != uuid.Nil && *transaction.LinkID == transaction.ID {
			return models.ErrTransactionLinkSelf
		}

		err := tx.Where(&models.Transaction{OwnerID: owner}).First(&models.Transaction{}, "id = ?", *transaction.LinkID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Create stores a new transaction and applies its balance effect.
func (e Engine) Create(ctx context.Context, owner uuid.UUID, draft Draft) (Result, error) {
	transaction, notices, err := prepare(owner, draft)
	if err != nil {
		return Result{}, err
	}

	err = e.run(ctx, func(tx *gorm.DB) error {
		err := verifyReferences(tx, owner, transaction)
		if err != nil {
			return err
		}

		err = apply(tx, owner, effectOf(transaction))
		if err != nil {
			return err
		}

		extra := transaction.Extra
		transaction.Extra = nil
		err = tx.Omit(clause.Associations).Create(&transaction).Error
		if err != nil {
			return err
		}

		if extra != nil {
			extra.TransactionID = transaction.ID
			err = tx.Create(extra).Error
			if err != nil {
				return err
			}
			transaction.Extra = extra
		}

		return e.onChange(tx, owner, budgetChange(transaction), draft.ConfirmBackdated)
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Transaction: transaction, Notices: notices}, nil
}

// Update replaces a transaction. The balance effect of the stored version
// is reversed before the effect of the new version is applied.
func (e Engine) Update(ctx context.Context, owner, id uuid.UUID, draft Draft) (Result, error) {
	updated, notices, err := prepare(owner, draft)
	if err != nil {
		return Result{}, err
	}

	err = e.run(ctx, func(tx *gorm.DB) error {
		var stored models.Transaction
		err := models.ForUpdate(tx).Preload("Extra").Where(&models.Transaction{OwnerID: owner}).First(&stored, "id = ?", id).Error
		if err != nil {
			return err
		}

		updated.DefaultModel = stored.DefaultModel
		updated.IsReconciled = stored.IsReconciled
		updated.ReconciliationDate = stored.ReconciliationDate
		updated.DeferredUntil = stored.DeferredUntil
		updated.ReconciledSource = stored.ReconciledSource
		updated.ReconciledDestination = stored.ReconciledDestination
		updated.DestinationDeferredUntil = stored.DestinationDeferredUntil

		err = verifyReferences(tx, owner, updated)
		if err != nil {
			return err
		}

		err = apply(tx, owner, effectOf(stored).reverse().then(effectOf(updated)))
		if err != nil {
			return err
		}

		extra := updated.Extra
		updated.Extra = nil
		err = tx.Omit(clause.Associations).Save(&updated).Error
		if err != nil {
			return err
		}

		switch {
		case extra != nil && stored.Extra != nil:
			extra.DefaultModel = stored.Extra.DefaultModel
			extra.TransactionID = updated.ID
			err = tx.Save(extra).Error
		case extra != nil:
			extra.TransactionID = updated.ID
			err = tx.Create(extra).Error
		case stored.Extra != nil:
			err = tx.Unscoped().Delete(stored.Extra).Error
		}
		if err != nil {
			return err
		}
		updated.Extra = extra

		changes := append(budgetChange(stored), budgetChange(updated)...)
		return e.onChange(tx, owner, changes, draft.ConfirmBackdated)
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Transaction: updated, Notices: notices}, nil
}

// Delete reverses the balance effect of a transaction and deletes it.
func (e Engine) Delete(ctx context.Context, owner, id uuid.UUID, confirmBackdated bool) error {
	return e.run(ctx, func(tx *gorm.DB) error {
		var stored models.Transaction
		err := models.ForUpdate(tx).Preload("Extra").Where(&models.Transaction{OwnerID: owner}).First(&stored, "id = ?", id).Error
		if err != nil {
			return err
		}

		err = apply(tx, owner, effectOf(stored).reverse())
		if err != nil {
			return err
		}

		if stored.Extra != nil {
			err = tx.Unscoped().Delete(stored.Extra).Error
			if err != nil {
				return err
			}
		}

		err = tx.Delete(&stored).Error
		if err != nil {
			return err
		}

		return e.onChange(tx, owner, budgetChange(stored), confirmBackdated)
	})
}

func (e Engine) onChange(tx *gorm.DB, owner uuid.UUID, changes []budgeting.Change, confirmed bool) error {
	if e.Budgets == nil || len(changes) == 0 {
		return nil
	}

	err := e.Budgets.OnTransactionChange(tx, owner, changes, confirmed)
	if err != nil && !errors.Is(err, budgeting.ErrBackdatingNotConfirmed) {
		log.Debug().Err(err).Str("owner", owner.String()).Msg("budget update failed")
	}
	return err
}
