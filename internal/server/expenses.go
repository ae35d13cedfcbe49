package server

import (
	"net/http"

	"splitledger/internal/ledger"
	"splitledger/internal/models"
)

type splitResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Amount     float64  `json:"amount"`
	Percentage *float64 `json:"percentage"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	PayerID     string          `json:"payer_id"`
	Splits      []splitResponse `json:"splits"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	splits := make([]splitResponse, 0, len(e.Splits))
	for _, s := range e.Splits {
		splits = append(splits, splitResponse{
			ID:         s.ID,
			UserID:     s.UserID,
			Amount:     ledger.Round2(s.Amount),
			Percentage: s.Percentage,
		})
	}
	return expenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      ledger.Round2(e.Amount),
		Currency:    e.Currency,
		PayerID:     e.PayerID,
		Splits:      splits,
	}
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.svc.ListExpenses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

type createSplitRequest struct {
	UserID     string   `json:"user_id"`
	Amount     any      `json:"amount"`
	Percentage *float64 `json:"percentage"`
}

// createExpenseRequest keeps required fields as pointers so absent keys are
// distinguishable from zero values, and amounts as raw JSON values so both
// numbers and numeric strings reach the validator.
type createExpenseRequest struct {
	Description *string               `json:"description"`
	Amount      any                   `json:"amount"`
	Currency    *string               `json:"currency"`
	PayerID     *string               `json:"payer_id"`
	Splits      *[]createSplitRequest `json:"splits"`
}

type createExpenseResponse struct {
	ID string `json:"id"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, &ledger.Error{Kind: ledger.ErrMissingField, Message: "missing fields"})
		return
	}
	if req.Description == nil || req.Amount == nil || req.Currency == nil || req.PayerID == nil || req.Splits == nil {
		writeError(w, r, &ledger.Error{Kind: ledger.ErrMissingField, Message: "missing fields"})
		return
	}

	draft := ledger.ExpenseDraft{
		Description: *req.Description,
		Amount:      numberString(req.Amount),
		Currency:    *req.Currency,
		PayerID:     *req.PayerID,
	}
	for _, split := range *req.Splits {
		draft.Splits = append(draft.Splits, ledger.SplitDraft{
			UserID:     split.UserID,
			Amount:     numberString(split.Amount),
			Percentage: split.Percentage,
		})
	}

	expense, err := s.svc.CreateExpense(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createExpenseResponse{ID: expense.ID})
}
