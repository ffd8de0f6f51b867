package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/interfaces"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/models"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/storage"
)

// MemoryCustomerStore is an in-memory implementation of interfaces.CustomerStore.
// Customers are kept in insertion order in a slice guarded by a mutex.
type MemoryCustomerStore struct {
	mu        sync.Mutex        // protects customers from concurrent access
	customers []models.Customer // every customer, in creation order
}

// NewMemoryCustomerStore creates and returns an empty MemoryCustomerStore
func NewMemoryCustomerStore() *MemoryCustomerStore {
	return &MemoryCustomerStore{
		customers: make([]models.Customer, 0),
	}
}

// Create appends a new customer. The CPF must not be taken yet.
func (m *MemoryCustomerStore) Create(ctx context.Context, customer models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// the check and the append share one critical section, so two creates
	// with the same CPF can't both succeed
	if m.indexOf(customer.CPF) >= 0 {
		return storage.ErrDuplicateKey
	}

	m.customers = append(m.customers, customer.Clone()) // store our own copy
	return nil
}

func (m *MemoryCustomerStore) FindByCPF(ctx context.Context, cpf string) (models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(cpf)
	if i < 0 {
		return models.Customer{}, storage.ErrNotFound
	}
	return m.customers[i].Clone(), nil // callers can't reach the stored statement
}

func (m *MemoryCustomerStore) UpdateName(ctx context.Context, cpf, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(cpf)
	if i < 0 {
		return storage.ErrNotFound
	}
	m.customers[i].Name = name
	return nil
}

// AppendOperation adds op to the end of the customer's statement
func (m *MemoryCustomerStore) AppendOperation(ctx context.Context, cpf string, op models.StatementOperation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(cpf)
	if i < 0 {
		return storage.ErrNotFound
	}
	m.customers[i].Statement = append(m.customers[i].Statement, op) // operations are never rewritten
	return nil
}

// Delete removes the customer at the position its CPF is found at
func (m *MemoryCustomerStore) Delete(ctx context.Context, cpf string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(cpf)
	if i < 0 {
		return storage.ErrNotFound
	}
	// remove by position, keeping the others in order
	m.customers = append(m.customers[:i], m.customers[i+1:]...)
	return nil
}

// List returns a copy of every customer in insertion order
func (m *MemoryCustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// deep copy so external code can't modify internal state
	copied := make([]models.Customer, len(m.customers))
	for i, c := range m.customers {
		copied[i] = c.Clone()
	}
	return copied, nil
}

// indexOf must be called with mu held
func (m *MemoryCustomerStore) indexOf(cpf string) int {
	// linear scan; the collection is small and kept in creation order
	for i, c := range m.customers {
		if c.CPF == cpf {
			return i
		}
	}
	return -1
}

// Compile-time check: ensure MemoryCustomerStore implements CustomerStore interface
var _ interfaces.CustomerStore = (*MemoryCustomerStore)(nil)
