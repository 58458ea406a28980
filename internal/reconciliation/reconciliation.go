// Package reconciliation matches the transactions of an account against
// its statement periods.
package reconciliation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/period"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrNothingToConfirm     = fmt.Errorf("%w: at least one transaction must be confirmed or deferred", models.ErrValidation)
	ErrNotInOpenSet         = fmt.Errorf("%w: the transaction is not open for reconciliation in the current statement period", models.ErrValidation)
	ErrConfirmedAndDeferred = fmt.Errorf("%w: a transaction cannot be confirmed and deferred at the same time", models.ErrConflict)
)

const (
	// duplicateDays is the maximum distance in days between two possible duplicates
	duplicateDays = 3

	// duplicateSimilarity is the minimum similarity of the notes of two possible duplicates
	duplicateSimilarity = 0.6
)

// Duplicate is a pair of transactions in the open set that might be the same.
type Duplicate struct {
	TransactionIDs [2]uuid.UUID `json:"transactionIds"`
	Similarity     float64      `json:"similarity" example:"0.82"` // Similarity of the notes, 1 means equal
}

// Statement is the reconciliation state of an account for its current
// statement period.
type Statement struct {
	Account      models.Account       `json:"account"`
	Period       period.Window        `json:"period"`
	Transactions []models.Transaction `json:"transactions"` // Transactions to reconcile
	Duplicates   []Duplicate          `json:"duplicates"`   // Possible duplicates among the transactions
}

// Result is the outcome of a confirmation.
type Result struct {
	Reconciled    int        `json:"reconciled" example:"4"`
	Deferred      int        `json:"deferred" example:"1"`
	DeferredUntil types.Date `json:"deferredUntil" swaggertype:"string" example:"2026-12-01"` // Deferred transactions reappear in the period ending at this date
}

func account(db *gorm.DB, owner, id uuid.UUID) (models.Account, error) {
	var a models.Account
	err := db.Where(&models.Account{OwnerID: owner}).First(&a, "id = ?", id).Error
	return a, err
}

// leg names the columns holding the reconciliation state of one side of a
// transaction.
type leg struct {
	account    string
	reconciled string
	deferred   string
}

var legs = []leg{
	{"account_id", "reconciled_source", "deferred_until"},
	{"target_account_id", "reconciled_destination", "destination_deferred_until"},
}

// pending returns the query for all transactions with an unreconciled leg
// on the account that is not deferred past until.
func pending(db *gorm.DB, owner uuid.UUID, accountID uuid.UUID, until types.Date) *gorm.DB {
	conditions := make([]string, 0, len(legs))
	for _, l := range legs {
		conditions = append(conditions, fmt.Sprintf("(%s = @account AND %s = @reconciled AND (%s IS NULL OR %s <= @until))", l.account, l.reconciled, l.deferred, l.deferred))
	}

	return db.Model(&models.Transaction{}).
		Where(&models.Transaction{OwnerID: owner}).
		Where("("+strings.Join(conditions, " OR ")+")", map[string]any{
			"account":    accountID,
			"reconciled": false,
			"until":      until,
		})
}

// open returns the query for all unreconciled transactions of the account
// that are due in the window.
func open(db *gorm.DB, owner uuid.UUID, accountID uuid.UUID, window period.Window) *gorm.DB {
	return pending(db, owner, accountID, window.End).Where("date < ?", window.End)
}

// Data returns the current statement period of the account with the
// transactions that are open for reconciliation.
func Data(db *gorm.DB, owner, accountID uuid.UUID, now time.Time) (Statement, error) {
	a, err := account(db, owner, accountID)
	if err != nil {
		return Statement{}, err
	}

	window := period.Statement(a, types.DateOf(now))

	transactions := make([]models.Transaction, 0)
	err = open(db, owner, a.ID, window).Order("date, created_at").Find(&transactions).Error
	if err != nil {
		return Statement{}, err
	}

	return Statement{
		Account:      a,
		Period:       window,
		Transactions: transactions,
		Duplicates:   duplicates(transactions),
	}, nil
}

// similarity returns how similar two notes are, from 0 to 1.
func similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}

	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// duplicates returns all pairs with the same amount and similar notes that
// are at most duplicateDays apart. The transactions must be sorted by date.
func duplicates(transactions []models.Transaction) []Duplicate {
	found := make([]Duplicate, 0)

	for i, a := range transactions {
		limit := a.Date.AddDate(0, 0, duplicateDays)

		for _, b := range transactions[i+1:] {
			if b.Date.After(limit) {
				break
			}

			if !a.Amount.Equal(b.Amount) || a.Type != b.Type {
				continue
			}

			s := similarity(a.Note, b.Note)
			if s < duplicateSimilarity {
				continue
			}

			found = append(found, Duplicate{
				TransactionIDs: [2]uuid.UUID{a.ID, b.ID},
				Similarity:     s,
			})
		}
	}

	return found
}

func set(ids []uuid.UUID) map[uuid.UUID]struct{} {
	s := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func keys(s map[uuid.UUID]struct{}) []uuid.UUID {
	k := make([]uuid.UUID, 0, len(s))
	for id := range s {
		k = append(k, id)
	}

	sort.Slice(k, func(i, j int) bool {
		return k[i].String() < k[j].String()
	})
	return k
}

// Confirm reconciles the confirmed transactions and defers the deferred
// ones to the next statement period. All transactions must be open in the
// current statement period of the account.
func Confirm(db *gorm.DB, owner, accountID uuid.UUID, confirmed, deferred []uuid.UUID, now time.Time) (Result, error) {
	if len(confirmed) == 0 && len(deferred) == 0 {
		return Result{}, ErrNothingToConfirm
	}

	confirmedSet, deferredSet := set(confirmed), set(deferred)
	for id := range confirmedSet {
		if _, ok := deferredSet[id]; ok {
			return Result{}, fmt.Errorf("%w: %s", ErrConfirmedAndDeferred, id)
		}
	}

	var result Result
	err := db.Transaction(func(tx *gorm.DB) error {
		a, err := account(models.ForUpdate(tx), owner, accountID)
		if err != nil {
			return err
		}

		window := period.Statement(a, types.DateOf(now))
		next := period.Statement(a, window.End)

		var ids []uuid.UUID
		err = open(tx, owner, a.ID, window).Pluck("id", &ids).Error
		if err != nil {
			return err
		}

		openSet := set(ids)
		for _, id := range append(keys(confirmedSet), keys(deferredSet)...) {
			if _, ok := openSet[id]; !ok {
				return fmt.Errorf("%w: %s", ErrNotInOpenSet, id)
			}
		}

		// Only the leg on this account changes, the other account of a
		// transfer reconciles it on its own statement
		for _, l := range legs {
			if len(confirmedSet) > 0 {
				err = tx.Model(&models.Transaction{}).
					Where("id IN ?", keys(confirmedSet)).
					Where(l.account+" = ?", a.ID).
					UpdateColumns(map[string]any{
						l.reconciled:          true,
						"reconciliation_date": now.UTC(),
					}).Error
				if err != nil {
					return err
				}
			}

			if len(deferredSet) > 0 {
				err = tx.Model(&models.Transaction{}).
					Where("id IN ?", keys(deferredSet)).
					Where(l.account+" = ?", a.ID).
					UpdateColumn(l.deferred, next.End).Error
				if err != nil {
					return err
				}
			}
		}

		if len(confirmedSet) > 0 {
			err = tx.Model(&models.Transaction{}).
				Where("id IN ?", keys(confirmedSet)).
				Where("reconciled_source = ? AND (target_account_id IS NULL OR reconciled_destination = ?)", true, true).
				UpdateColumn("is_reconciled", true).Error
			if err != nil {
				return err
			}
		}

		result = Result{
			Reconciled:    len(confirmedSet),
			Deferred:      len(deferredSet),
			DeferredUntil: next.End,
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("account", accountID.String()).
		Int("reconciled", result.Reconciled).
		Int("deferred", result.Deferred).
		Msg("reconciliation confirmed")

	return result, nil
}
