package models

// Expense represents money paid by one user on behalf of the group.
//
// An expense and its splits form a single atomic unit: they are created in one
// transaction and the splits are destroyed when the expense is destroyed.
// Invariant: the sum of split amounts equals the expense amount within a
// tolerance of 0.01 currency units (checked before persistence).
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is the human-readable reason for the expense.
	Description string

	// Amount is the total paid, in units of Currency.
	Amount float64

	// Currency is a free-form label (e.g. "USD"). It is never validated
	// against a real code set and never converted.
	Currency string

	// PayerID references the user who paid.
	PayerID string

	// Splits are the per-user portions of this expense.
	Splits []ExpenseSplit

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseSplit is the portion of an expense owed by one user.
type ExpenseSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID references the owning expense.
	ExpenseID string

	// UserID references the owing user.
	UserID string

	// Amount is the portion owed, in the owning expense's currency.
	Amount float64

	// Percentage is an informational share indicator. Nil denotes an
	// equal-split share; it plays no part in validation.
	Percentage *float64
}

// SplitDetail is a split joined with its owning expense's description and
// currency, as needed by per-user reports.
type SplitDetail struct {
	Description string
	Amount      float64
	Currency    string
	Percentage  *float64
}
