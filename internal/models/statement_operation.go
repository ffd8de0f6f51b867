package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers, the same as the balance endpoint. decimal
// quotes them by default; decoding accepts either form.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// OperationType tells whether a statement operation adds to or takes from the balance
type OperationType string

const (
	Credit OperationType = "credit"
	Debit  OperationType = "debit"
)

// StatementOperation represents a single movement on a customer's statement.
// Once appended it is never modified.
type StatementOperation struct {
	Description string          `json:"description,omitempty"` // only deposits carry one
	Amount      decimal.Decimal `json:"amount"`
	Type        OperationType   `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
}
