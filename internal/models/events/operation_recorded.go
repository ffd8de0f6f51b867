package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationRecorded is emitted after a credit or debit lands on a statement
type OperationRecorded struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	CPF        string          `json:"cpf"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
	OccurredAt time.Time       `json:"occurred_at"`
}
