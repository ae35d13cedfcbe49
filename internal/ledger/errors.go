package ledger

import "errors"

// Error kinds surfaced by ledger operations. Callers match with errors.Is to
// decide how a rejection is reported; the caller-facing message lives on the
// wrapping Error.
var (
	// ErrMissingField indicates a required field was absent or empty.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidAmount indicates an amount that is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDuplicateUser indicates a username or email already in use.
	// Matching is exact: casing and whitespace are not normalized.
	ErrDuplicateUser = errors.New("duplicate user")

	// ErrInvalidReference indicates an unknown payer or split user.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrSplitMismatch indicates split totals that do not reconcile with the
	// expense amount within the tolerance.
	ErrSplitMismatch = errors.New("split totals mismatch")

	// ErrNotFound indicates a lookup for a record that does not exist.
	ErrNotFound = errors.New("not found")
)

// Error pairs an error kind with the message reported to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// reject builds a typed rejection.
func reject(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}
