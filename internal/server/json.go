package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"splitledger/internal/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps an error to its HTTP status and emits the JSON error body.
// Errors without a ledger kind are treated as internal and not leaked.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrMissingField),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrDuplicateUser),
		errors.Is(err, ledger.ErrInvalidReference),
		errors.Is(err, ledger.ErrSplitMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body, keeping numbers as json.Number so
// amounts survive untouched until the validator parses them.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}

// numberString coerces a decoded JSON value (number or numeric string) to its
// string form for the validator. Any other type yields an unparseable string.
func numberString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
