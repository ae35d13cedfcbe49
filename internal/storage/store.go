// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"splitledger/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer, and lets tests substitute an isolated
// store per test case.
type Store interface {
	// CreateUser persists a new user and populates its ID and CreatedAt.
	// Fails with a duplicate-user error if the username or email is taken
	// (exact match).
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID. Fails with a not-found error when the
	// user does not exist.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all users in a stable order (registration order).
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UserIDs returns the set of all existing user IDs.
	UserIDs(ctx context.Context) (map[string]struct{}, error)

	// CreateExpense persists an expense together with all its splits in one
	// transaction; a failure leaves no partial record. ID, CreatedAt, and the
	// split IDs are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns all expenses newest first, splits attached.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// ListExpensesByPayer returns the expenses paid by one user.
	ListExpensesByPayer(ctx context.Context, userID string) ([]*models.Expense, error)

	// ListSplitsByUser returns the splits owed by one user, joined with the
	// owning expense's description and currency.
	ListSplitsByUser(ctx context.Context, userID string) ([]models.SplitDetail, error)

	// DeleteExpense removes an expense and all its splits in one transaction.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ClearAll wipes all splits, expenses, and users in one transaction.
	ClearAll(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
