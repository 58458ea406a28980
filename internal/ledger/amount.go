package ledger

import (
	"fmt"
	"strings"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Normalized is a transaction amount after sign correction.
type Normalized struct {
	Type   models.TransactionType
	Amount decimal.Decimal
	Notice string // Empty when nothing was corrected
}

// Normalize corrects the sign of a user entered amount.
//
// Negative amounts are converted to their absolute value. The type of the
// transaction is never changed, the direction of money is only encoded by
// the type.
func Normalize(t models.TransactionType, amount decimal.Decimal) Normalized {
	if !amount.IsNegative() {
		return Normalized{Type: t, Amount: amount}
	}

	return Normalized{
		Type:   t,
		Amount: amount.Abs(),
		Notice: fmt.Sprintf("converted to positive %s", strings.ToLower(string(t))),
	}
}

// NetAmount derives the settled amount of a transaction from its base
// amount and the extra adjustments.
//
// For expenses, the fee (extraMinus) increases and the discount (extraAdd)
// decreases the amount. For income, the adjustments work the other way
// round. Transfers move the base amount unchanged.
//
// A result below zero is clamped to zero and reported with clamped.
func NetAmount(base, extraAdd, extraMinus decimal.Decimal, t models.TransactionType) (net decimal.Decimal, clamped bool) {
	switch t {
	case models.TransactionTypeExpense:
		net = base.Add(extraMinus).Sub(extraAdd)
	case models.TransactionTypeIncome:
		net = base.Add(extraAdd).Sub(extraMinus)
	default:
		net = base
	}

	if net.IsNegative() {
		return decimal.Zero, true
	}

	return net, false
}
