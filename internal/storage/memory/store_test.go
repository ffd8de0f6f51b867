package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/models"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/storage"
)

func newCustomer(cpf, name string) models.Customer {
	return models.Customer{ID: uuid.New(), CPF: cpf, Name: name}
}

func TestCreate_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCustomerStore()

	if err := s.Create(ctx, newCustomer("111", "Alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.Create(ctx, newCustomer("111", "Bob"))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	all, _ := s.List(ctx)
	if len(all) != 1 || all[0].Name != "Alice" {
		t.Fatalf("expected only Alice to be stored, got %+v", all)
	}
}

func TestFindByCPF_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCustomerStore()
	_ = s.Create(ctx, newCustomer("111", "Alice"))
	_ = s.AppendOperation(ctx, "111", models.StatementOperation{
		Amount:    decimal.NewFromInt(10),
		Type:      models.Credit,
		CreatedAt: time.Now(),
	})

	got, err := s.FindByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Name = "Mallory"
	got.Statement[0].Amount = decimal.NewFromInt(1_000_000)

	again, _ := s.FindByCPF(ctx, "111")
	if again.Name != "Alice" {
		t.Errorf("name leaked through copy: %s", again.Name)
	}
	if !again.Statement[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("statement leaked through copy: %s", again.Statement[0].Amount)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCustomerStore()

	if _, err := s.FindByCPF(ctx, "404"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("FindByCPF: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateName(ctx, "404", "x"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateName: expected ErrNotFound, got %v", err)
	}
	if err := s.AppendOperation(ctx, "404", models.StatementOperation{}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("AppendOperation: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "404"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesOnlyMatchingCustomer(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCustomerStore()
	for _, cpf := range []string{"1", "2", "3"} {
		_ = s.Create(ctx, newCustomer(cpf, "c"+cpf))
	}

	if err := s.Delete(ctx, "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := s.List(ctx)
	if len(all) != 2 || all[0].CPF != "1" || all[1].CPF != "3" {
		t.Fatalf("expected customers 1 and 3 in order, got %+v", all)
	}
}

func TestUpdateName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCustomerStore()
	_ = s.Create(ctx, newCustomer("111", "Alice"))

	if err := s.UpdateName(ctx, "111", "Alicia"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.FindByCPF(ctx, "111")
	if got.Name != "Alicia" {
		t.Errorf("expected Alicia, got %s", got.Name)
	}
}
