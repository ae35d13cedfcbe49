// Package service orchestrates the ledger core and the storage layer.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"splitledger/internal/ledger"
	"splitledger/internal/models"
	"splitledger/internal/storage"
)

// LedgerService implements the shared-expense operations exposed by the API.
// The store is injected so tests can substitute an isolated instance.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// ListUsers returns all registered users in registration order.
func (s *LedgerService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// CreateUser registers a new user. Username and email are required; both must
// be unused (exact match, no normalization beyond trimming).
func (s *LedgerService) CreateUser(ctx context.Context, username, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, &ledger.Error{Kind: ledger.ErrMissingField, Message: "username and email required"}
	}

	user := &models.User{Username: username, Email: email}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("User created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// ListExpenses returns all expenses newest first, splits attached.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// CreateExpense validates a proposed expense and persists it with all its
// splits as one atomic unit. All validation happens before any write; no
// balance recomputation is triggered.
func (s *LedgerService) CreateExpense(ctx context.Context, draft ledger.ExpenseDraft) (*models.Expense, error) {
	knownUsers, err := s.store.UserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load user ids: %w", err)
	}

	expense, err := ledger.ValidateExpense(draft, knownUsers)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "payer_id", expense.PayerID, "error", err)
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"payer_id", expense.PayerID,
		"amount", expense.Amount,
		"splits", len(expense.Splits),
	)
	return expense, nil
}

// Balances recomputes every user's paid/owes/net figures from the full
// expense history.
func (s *LedgerService) Balances(ctx context.Context) (map[string]ledger.Balance, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return ledger.ComputeBalances(users, expenses), nil
}

// UserReport builds the personal statement for one user, or fails with a
// not-found error if the user does not exist.
func (s *LedgerService) UserReport(ctx context.Context, userID string) (*ledger.Report, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	paid, err := s.store.ListExpensesByPayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list paid expenses: %w", err)
	}
	owed, err := s.store.ListSplitsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list owed splits: %w", err)
	}
	return ledger.BuildReport(paid, owed), nil
}

// ClearAll wipes every user, expense, and split. Destructive; intended for
// administrative and development use only.
func (s *LedgerService) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		slog.Error("ClearAll failed", "error", err)
		return err
	}
	slog.Warn("All ledger data cleared")
	return nil
}
