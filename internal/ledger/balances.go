package ledger

import "splitledger/internal/models"

// Balance is the aggregated position of one user across all expenses.
type Balance struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	TotalPaid  float64 `json:"total_paid"`
	TotalOwes  float64 `json:"total_owes"`
	NetBalance float64 `json:"net_balance"`
}

// ComputeBalances aggregates the complete expense history into per-user
// paid/owes/net figures, keyed by user ID.
//
// Algorithm:
//   - every expense adds its amount to the payer's paid accumulator
//   - every split adds its amount to the owing user's owes accumulator
//   - net = paid - owes
//
// Accumulation stays unrounded; all three figures are rounded to 2dp only at
// output, so rounding error never compounds. Every call recomputes from the
// full history; the result does not depend on input order. A user with no
// activity yields an all-zero record.
func ComputeBalances(users []*models.User, expenses []*models.Expense) map[string]Balance {
	paid := make(map[string]float64, len(users))
	owes := make(map[string]float64, len(users))
	for _, u := range users {
		paid[u.ID] = 0
		owes[u.ID] = 0
	}

	for _, e := range expenses {
		if _, ok := paid[e.PayerID]; ok {
			paid[e.PayerID] += e.Amount
		}
		for _, s := range e.Splits {
			if _, ok := owes[s.UserID]; ok {
				owes[s.UserID] += s.Amount
			}
		}
	}

	balances := make(map[string]Balance, len(users))
	for _, u := range users {
		totalPaid := Round2(paid[u.ID])
		totalOwes := Round2(owes[u.ID])
		balances[u.ID] = Balance{
			UserID:     u.ID,
			Username:   u.Username,
			TotalPaid:  totalPaid,
			TotalOwes:  totalOwes,
			NetBalance: Round2(totalPaid - totalOwes),
		}
	}
	return balances
}
