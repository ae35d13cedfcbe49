package ledger

import "splitledger/internal/models"

// PaidEntry is one expense paid by the reported user.
type PaidEntry struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// OwedEntry is one split owed by the reported user, carrying the owning
// expense's description and currency.
type OwedEntry struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Currency    string   `json:"currency"`
	Percentage  *float64 `json:"percentage"`
}

// Report is a single user's personal statement: raw per-record detail, no
// aggregation (that is the balance engine's job).
type Report struct {
	Paid []PaidEntry `json:"paid"`
	Owes []OwedEntry `json:"owes"`
}

// BuildReport projects the expenses paid by a user and the splits owed by the
// same user into a Report. Amounts are rounded to 2dp at this output boundary;
// input order is preserved.
func BuildReport(paidExpenses []*models.Expense, owedSplits []models.SplitDetail) *Report {
	report := &Report{
		Paid: make([]PaidEntry, 0, len(paidExpenses)),
		Owes: make([]OwedEntry, 0, len(owedSplits)),
	}
	for _, e := range paidExpenses {
		report.Paid = append(report.Paid, PaidEntry{
			Description: e.Description,
			Amount:      Round2(e.Amount),
			Currency:    e.Currency,
		})
	}
	for _, s := range owedSplits {
		report.Owes = append(report.Owes, OwedEntry{
			Description: s.Description,
			Amount:      Round2(s.Amount),
			Currency:    s.Currency,
			Percentage:  s.Percentage,
		})
	}
	return report
}
