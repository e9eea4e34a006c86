package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vietddude/wallet-explorer/internal/core/domain"
)

const (
	dbErrorBody      = "Database access error"
	invalidInputBody = "Invalid address"
)

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	address, ok := s.address(w, r)
	if !ok {
		return
	}

	wallets, err := s.svc.Wallets(r.Context(), address.String())
	if err != nil {
		s.dbError(w, r, err)
		return
	}

	s.log.Debug("Wallet lookup", "address", address, "network", address.Network, "wallets", wallets)
	writeJSON(w, wallets)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	address, ok := s.address(w, r)
	if !ok {
		return
	}

	txs, err := s.svc.Transactions(r.Context(), address.String())
	if err != nil {
		s.dbError(w, r, err)
		return
	}

	writeJSON(w, txs)
}

func (s *Server) address(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	address, err := domain.ParseAddress(r.PathValue("address"), s.cfg.StrictAddresses)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidAddress) && !errors.Is(err, domain.ErrChecksumMismatch) {
			s.log.Error("Unexpected address parse error", "error", err)
		}
		writeText(w, http.StatusBadRequest, invalidInputBody)
		return domain.Address{}, false
	}
	return address, true
}

// dbError reports any store or normalization failure the same way.
func (s *Server) dbError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("Error accessing the database",
		"request_id", requestIDFrom(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	writeText(w, http.StatusInternalServerError, dbErrorBody)
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeText(w, http.StatusInternalServerError, dbErrorBody)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
