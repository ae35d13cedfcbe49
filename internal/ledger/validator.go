// Package ledger implements the core of splitledger: expense validation,
// balance aggregation, and per-user reporting. All functions are pure; they
// receive records and decide, leaving persistence to the caller.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"splitledger/internal/models"
)

// Tolerance is the allowance, in currency units, for rounding drift between an
// expense amount and the sum of its split amounts.
const Tolerance = 0.01

// SplitDraft is one proposed split entry of an expense.
type SplitDraft struct {
	// UserID references the owing user.
	UserID string

	// Amount is the proposed portion, as received on the wire. Numeric
	// strings and JSON numbers are both accepted.
	Amount string

	// Percentage is informational; nil denotes an equal-split share.
	Percentage *float64
}

// ExpenseDraft is a proposed expense before validation.
type ExpenseDraft struct {
	Description string
	Amount      string
	Currency    string
	PayerID     string
	Splits      []SplitDraft
}

// ValidateExpense checks a proposed expense against the set of known user IDs
// and, on acceptance, returns the Expense with its splits ready to persist as
// one atomic unit. It triggers no balance recomputation; balances are derived
// on demand from the full history.
//
// Rejections, in order of detection:
//   - empty description after trimming, missing currency, or no splits
//   - amount (or any split amount) not parseable as a positive number
//   - payer or any split user not resolving to a known user
//   - |round2(sum of splits) - round2(amount)| > Tolerance
func ValidateExpense(draft ExpenseDraft, knownUsers map[string]struct{}) (*models.Expense, error) {
	description := strings.TrimSpace(draft.Description)
	if description == "" || strings.TrimSpace(draft.Currency) == "" {
		return nil, reject(ErrMissingField, "missing fields")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(draft.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, reject(ErrInvalidAmount, "invalid amount")
	}
	if amount <= 0 {
		return nil, reject(ErrInvalidAmount, "invalid split/amount")
	}
	if len(draft.Splits) == 0 {
		return nil, reject(ErrMissingField, "invalid split/amount")
	}

	if _, ok := knownUsers[draft.PayerID]; !ok {
		return nil, reject(ErrInvalidReference, "invalid payer")
	}

	splits := make([]models.ExpenseSplit, len(draft.Splits))
	var splitSum float64
	for i, s := range draft.Splits {
		if _, ok := knownUsers[s.UserID]; !ok {
			return nil, reject(ErrInvalidReference, "one or more split users are invalid")
		}
		portion, err := strconv.ParseFloat(strings.TrimSpace(s.Amount), 64)
		if err != nil || math.IsNaN(portion) || math.IsInf(portion, 0) {
			return nil, reject(ErrInvalidAmount, "invalid amount")
		}
		splits[i] = models.ExpenseSplit{
			UserID:     s.UserID,
			Amount:     portion,
			Percentage: s.Percentage,
		}
		splitSum += portion
	}

	// Compare both sides rounded to 2dp so genuine mismatches are caught while
	// rounding drift within the tolerance is absorbed.
	total := Round2(splitSum)
	want := Round2(amount)
	if math.Abs(total-want) > Tolerance {
		return nil, reject(ErrSplitMismatch, fmt.Sprintf(
			"split totals (%s) do not equal amount (%s)",
			FormatAmount(total), FormatAmount(want)))
	}

	return &models.Expense{
		Description: description,
		Amount:      amount,
		Currency:    draft.Currency,
		PayerID:     draft.PayerID,
		Splits:      splits,
	}, nil
}

// Round2 rounds a currency value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount without trailing zeros, for error messages.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
