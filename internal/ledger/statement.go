package ledger

import (
	"time"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/models"
	"github.com/shopspring/decimal"
)

// ComputeBalance folds a statement in order: credits add, debits subtract
func ComputeBalance(statement []models.StatementOperation) decimal.Decimal {
	balance := decimal.Zero

	for _, op := range statement {
		if op.Type == models.Credit {
			balance = balance.Add(op.Amount)
		} else {
			balance = balance.Sub(op.Amount)
		}
	}
	return balance
}

// StatementFor returns the customer's full history in insertion order
func StatementFor(customer models.Customer) []models.StatementOperation {
	statement := make([]models.StatementOperation, len(customer.Statement))
	copy(statement, customer.Statement)
	return statement
}

// StatementForDate keeps the operations created on the same calendar day as
// day, with both sides read in loc.
func StatementForDate(customer models.Customer, day time.Time, loc *time.Location) []models.StatementOperation {
	y, m, d := day.In(loc).Date()

	statement := make([]models.StatementOperation, 0)
	for _, op := range customer.Statement {
		oy, om, od := op.CreatedAt.In(loc).Date()
		if oy == y && om == m && od == d {
			statement = append(statement, op)
		}
	}
	return statement
}
