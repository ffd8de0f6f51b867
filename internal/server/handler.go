package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/ledger"
)

const (
	dateLayout = "2006-01-02"

	maxBodyBytes = 1 << 20
)

// Handler exposes the ledger over HTTP. Every handler returns as soon as it
// has written an error.
type Handler struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

func NewHandler(l *ledger.Ledger, logger *zap.Logger) *Handler {
	return &Handler{ledger: l, logger: logger}
}

type createAccountRequest struct {
	CPF  string `json:"cpf"`
	Name string `json:"name"`
}

type updateAccountRequest struct {
	Name string `json:"name"`
}

type depositRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type withdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decode(w, r, &req) {
		return
	}

	if _, err := h.ledger.CreateCustomer(r.Context(), req.CPF, req.Name); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.ledger.UpdateName(r.Context(), chi.URLParam(r, "cpf"), req.Name); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	customer, err := h.ledger.GetCustomer(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.ledger.DeleteCustomer(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remaining)
}

// GetBalance answers with a bare JSON number
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.Balance(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	statement, err := h.ledger.Statement(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

// GetStatementByDate expects ?date=YYYY-MM-DD
func (h *Handler) GetStatementByDate(w http.ResponseWriter, r *http.Request) {
	day, err := time.ParseInLocation(dateLayout, r.URL.Query().Get("date"), h.ledger.Location())
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	statement, err := h.ledger.StatementByDate(r.Context(), chi.URLParam(r, "cpf"), day)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.ledger.RecordCredit(r.Context(), chi.URLParam(r, "cpf"), req.Description, req.Amount); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.ledger.RecordDebit(r.Context(), chi.URLParam(r, "cpf"), req.Amount); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// decode reports false after writing a 400 when the body is not valid JSON
// or is larger than maxBodyBytes
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
