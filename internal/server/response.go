package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps ledger errors to HTTP status codes. Every caller-side
// failure is a 400; anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrCustomerNotFound),
		errors.Is(err, ledger.ErrDuplicateKey),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
