// Package server exposes the ledger operations as a JSON HTTP API.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"splitledger/internal/service"
)

// Server routes HTTP requests to the ledger service.
type Server struct {
	svc *service.LedgerService
	mux *http.ServeMux
}

// New creates a Server with all routes registered.
func New(svc *service.LedgerService) *Server {
	s := &Server{svc: svc, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /users", s.handleListUsers)
	s.mux.HandleFunc("POST /users", s.handleCreateUser)
	s.mux.HandleFunc("GET /expenses", s.handleListExpenses)
	s.mux.HandleFunc("POST /expenses", s.handleCreateExpense)
	s.mux.HandleFunc("GET /balances", s.handleBalances)
	s.mux.HandleFunc("GET /user_report/{user_id}", s.handleUserReport)
	s.mux.HandleFunc("POST /clear_all", s.handleClearAll)

	s.mux.HandleFunc("GET /healthz", handleHealth)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Handler returns the routed handler wrapped with logging, CORS, and metrics
// middleware.
func (s *Server) Handler() http.Handler {
	return loggingMiddleware(corsMiddleware(metricsMiddleware(s.mux)))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
