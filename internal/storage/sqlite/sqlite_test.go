package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"splitledger/internal/ledger"
	"splitledger/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateUser(t *testing.T, store *SQLiteStore, username, email string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: email}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", username, err)
	}
	return user
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser generates ID and CreatedAt", func(t *testing.T) {
		user := mustCreateUser(t, store, "alice", "alice@example.com")
		if user.ID == "" {
			t.Error("Expected user ID to be generated")
		}
		if user.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		err := store.CreateUser(ctx, &models.User{Username: "alice", Email: "other@example.com"})
		if !errors.Is(err, ledger.ErrDuplicateUser) {
			t.Errorf("expected ErrDuplicateUser, got %v", err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := store.CreateUser(ctx, &models.User{Username: "alice2", Email: "alice@example.com"})
		if !errors.Is(err, ledger.ErrDuplicateUser) {
			t.Errorf("expected ErrDuplicateUser, got %v", err)
		}
	})

	t.Run("GetUser returns not found for unknown id", func(t *testing.T) {
		_, err := store.GetUser(ctx, "nonexistent-id")
		if !errors.Is(err, ledger.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListUsers in registration order", func(t *testing.T) {
		mustCreateUser(t, store, "bob", "bob@example.com")
		mustCreateUser(t, store, "carol", "carol@example.com")

		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 3 {
			t.Fatalf("expected 3 users, got %d", len(users))
		}
		if users[0].Username != "alice" || users[2].Username != "carol" {
			t.Errorf("unexpected order: %s, %s, %s", users[0].Username, users[1].Username, users[2].Username)
		}
	})

	t.Run("UserIDs returns the full set", func(t *testing.T) {
		ids, err := store.UserIDs(ctx)
		if err != nil {
			t.Fatalf("UserIDs failed: %v", err)
		}
		if len(ids) != 3 {
			t.Errorf("expected 3 ids, got %d", len(ids))
		}
	})
}

func TestSQLiteStoreExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice", "alice@example.com")
	bob := mustCreateUser(t, store, "bob", "bob@example.com")

	t.Run("CreateExpense persists expense with splits", func(t *testing.T) {
		pct := 50.0
		expense := &models.Expense{
			Description: "Dinner",
			Amount:      30,
			Currency:    "USD",
			PayerID:     alice.ID,
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Amount: 15, Percentage: &pct},
				{UserID: bob.ID, Amount: 15},
			},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" || expense.CreatedAt == 0 {
			t.Error("expected ID and CreatedAt to be generated")
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(expenses))
		}
		got := expenses[0]
		if len(got.Splits) != 2 {
			t.Fatalf("expected 2 splits, got %d", len(got.Splits))
		}
		if got.Splits[0].Percentage == nil || *got.Splits[0].Percentage != 50.0 {
			t.Errorf("percentage not round-tripped: %v", got.Splits[0].Percentage)
		}
		if got.Splits[1].Percentage != nil {
			t.Errorf("nil percentage should stay nil")
		}
	})

	t.Run("CreateExpense rolls back on invalid split user", func(t *testing.T) {
		expense := &models.Expense{
			Description: "Broken",
			Amount:      10,
			Currency:    "USD",
			PayerID:     alice.ID,
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Amount: 5},
				{UserID: "no-such-user", Amount: 5},
			},
		}
		if err := store.CreateExpense(ctx, expense); err == nil {
			t.Fatal("expected foreign key failure, got nil")
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		for _, e := range expenses {
			if e.Description == "Broken" {
				t.Error("partial expense observable after failed create")
			}
		}
	})

	t.Run("ListExpenses newest first", func(t *testing.T) {
		second := &models.Expense{
			Description: "Taxi",
			Amount:      12,
			Currency:    "USD",
			PayerID:     bob.ID,
			Splits:      []models.ExpenseSplit{{UserID: bob.ID, Amount: 12}},
		}
		if err := store.CreateExpense(ctx, second); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if expenses[0].Description != "Taxi" {
			t.Errorf("expected newest expense first, got %q", expenses[0].Description)
		}
	})

	t.Run("ListExpensesByPayer filters", func(t *testing.T) {
		paid, err := store.ListExpensesByPayer(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListExpensesByPayer failed: %v", err)
		}
		if len(paid) != 1 || paid[0].Description != "Dinner" {
			t.Errorf("unexpected expenses for payer: %+v", paid)
		}
	})

	t.Run("ListSplitsByUser joins expense fields", func(t *testing.T) {
		splits, err := store.ListSplitsByUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListSplitsByUser failed: %v", err)
		}
		if len(splits) != 2 {
			t.Fatalf("expected 2 splits, got %d", len(splits))
		}
		if splits[0].Description != "Dinner" || splits[0].Currency != "USD" {
			t.Errorf("expense fields not joined: %+v", splits[0])
		}
	})

	t.Run("DeleteExpense cascades to splits", func(t *testing.T) {
		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		var dinnerID string
		for _, e := range expenses {
			if e.Description == "Dinner" {
				dinnerID = e.ID
			}
		}

		if err := store.DeleteExpense(ctx, dinnerID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}

		splits, err := store.ListSplitsByUser(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListSplitsByUser failed: %v", err)
		}
		if len(splits) != 0 {
			t.Errorf("splits survived expense deletion: %+v", splits)
		}
	})

	t.Run("DeleteExpense returns not found for unknown id", func(t *testing.T) {
		err := store.DeleteExpense(ctx, "nonexistent-id")
		if !errors.Is(err, ledger.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStoreClearAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice", "alice@example.com")
	expense := &models.Expense{
		Description: "Dinner",
		Amount:      10,
		Currency:    "USD",
		PayerID:     alice.ID,
		Splits:      []models.ExpenseSplit{{UserID: alice.ID, Amount: 10}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users after clear, got %d", len(users))
	}

	expenses, err := store.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expected no expenses after clear, got %d", len(expenses))
	}
}
