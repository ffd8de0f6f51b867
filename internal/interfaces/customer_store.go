package interfaces

import (
	"context"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/models"
)

// CustomerStore owns the customer collection. Reads hand back copies so
// nothing outside the store can mutate what it holds.
type CustomerStore interface {
	Create(ctx context.Context, customer models.Customer) error
	FindByCPF(ctx context.Context, cpf string) (models.Customer, error)
	UpdateName(ctx context.Context, cpf, name string) error
	AppendOperation(ctx context.Context, cpf string, op models.StatementOperation) error
	Delete(ctx context.Context, cpf string) error
	List(ctx context.Context) ([]models.Customer, error)
}
