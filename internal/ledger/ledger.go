package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/interfaces"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/models"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/models/events"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCustomerNotFound  = storage.ErrNotFound
	ErrDuplicateKey      = storage.ErrDuplicateKey
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must not be negative")
)

// Ledger is the banking core. It owns the customer store and serializes
// every statement change of a customer behind that customer's mutex, so a
// balance check and the debit that depends on it cannot interleave with
// another write.
type Ledger struct {
	store     interfaces.CustomerStore
	publisher interfaces.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
	loc       *time.Location

	muMap map[string]*customerLock // one lock per CPF with operations in flight
	mapMu sync.Mutex               // protects muMap itself
}

// customerLock is shared by every operation on one CPF. refs counts the
// holders and waiters; the map entry goes away when it drops to zero.
type customerLock struct {
	mu   sync.Mutex
	refs int
}

// NewLedger creates a Ledger on top of store. Without options it stamps
// operations with time.Now, compares days in local time, logs nothing and
// publishes nothing.
func NewLedger(store interfaces.CustomerStore, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
		loc:    time.Local,
		muMap:  make(map[string]*customerLock),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// lockCustomer blocks until the caller owns cpf's lock and returns the
// function that releases it. Entries only live while someone holds or waits
// on them, so unknown keys never pile up in muMap.
func (l *Ledger) lockCustomer(cpf string) (unlock func()) {
	l.mapMu.Lock()
	cl, exists := l.muMap[cpf]
	if !exists {
		cl = &customerLock{}
		l.muMap[cpf] = cl
	}
	cl.refs++ // registered before blocking so the entry can't be dropped under us
	l.mapMu.Unlock()

	cl.mu.Lock()

	return func() {
		cl.mu.Unlock()

		l.mapMu.Lock()
		defer l.mapMu.Unlock()
		cl.refs--
		if cl.refs == 0 {
			delete(l.muMap, cpf) // last one out removes the entry
		}
	}
}

// CreateCustomer registers a new customer with an empty statement and
// returns its generated id.
func (l *Ledger) CreateCustomer(ctx context.Context, cpf, name string) (uuid.UUID, error) {
	customer := models.Customer{
		ID:        uuid.New(),
		CPF:       cpf,
		Name:      name,
		Statement: []models.StatementOperation{},
	}

	// The store rejects the CPF atomically if it is already taken
	if err := l.store.Create(ctx, customer); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			operationsRejected.WithLabelValues("create", "duplicate_key").Inc()
		}
		return uuid.Nil, err
	}

	l.logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("cpf", cpf))
	return customer.ID, nil
}

// FindByKey looks a customer up by CPF. The bool is false when there is
// none; any other store failure comes back as the error.
func (l *Ledger) FindByKey(ctx context.Context, cpf string) (models.Customer, bool, error) {
	customer, err := l.store.FindByCPF(ctx, cpf)
	if errors.Is(err, ErrCustomerNotFound) {
		return models.Customer{}, false, nil
	}
	if err != nil {
		return models.Customer{}, false, err
	}
	return customer, true, nil
}

// GetCustomer is FindByKey reporting absence as ErrCustomerNotFound
func (l *Ledger) GetCustomer(ctx context.Context, cpf string) (models.Customer, error) {
	return l.store.FindByCPF(ctx, cpf)
}

func (l *Ledger) UpdateName(ctx context.Context, cpf, name string) error {
	return l.store.UpdateName(ctx, cpf, name)
}

// DeleteCustomer removes the customer and returns everyone left in the store
func (l *Ledger) DeleteCustomer(ctx context.Context, cpf string) ([]models.Customer, error) {
	// Wait for any deposit or withdrawal in flight on this customer
	unlock := l.lockCustomer(cpf)
	defer unlock()

	// The store finds the customer's index by CPF and removes at that index
	if err := l.store.Delete(ctx, cpf); err != nil {
		return nil, err
	}

	l.logger.Info("customer deleted", zap.String("cpf", cpf))
	return l.store.List(ctx)
}

func (l *Ledger) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return l.store.List(ctx)
}

// RecordCredit appends a deposit to the customer's statement
func (l *Ledger) RecordCredit(ctx context.Context, cpf, description string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		operationsRejected.WithLabelValues("deposit", "invalid_amount").Inc()
		return ErrInvalidAmount
	}

	unlock := l.lockCustomer(cpf)
	customer, err := l.store.FindByCPF(ctx, cpf)
	if err != nil {
		unlock()
		return err
	}

	// Credit entry: money entering the customer's account
	op := models.StatementOperation{
		Description: description,
		Amount:      amount,
		Type:        models.Credit,
		CreatedAt:   l.now(),
	}
	err = l.store.AppendOperation(ctx, cpf, op)
	unlock() // publishing happens outside the lock
	if err != nil {
		return fmt.Errorf("append credit: %w", err)
	}

	operationsRecorded.WithLabelValues(string(models.Credit)).Inc()

	// customer was read before the append, so add the new amount on top
	l.publish(ctx, customer, op, ComputeBalance(customer.Statement).Add(amount))
	return nil
}

// RecordDebit appends a withdrawal, provided the current balance covers it
func (l *Ledger) RecordDebit(ctx context.Context, cpf string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		operationsRejected.WithLabelValues("withdraw", "invalid_amount").Inc()
		return ErrInvalidAmount
	}

	// Balance check and append must happen under the same lock, otherwise
	// two concurrent withdrawals could both pass the check
	unlock := l.lockCustomer(cpf)
	customer, err := l.store.FindByCPF(ctx, cpf)
	if err != nil {
		unlock()
		return err
	}

	balance := ComputeBalance(customer.Statement)
	if balance.LessThan(amount) {
		unlock()
		operationsRejected.WithLabelValues("withdraw", "insufficient_funds").Inc()
		l.logger.Warn("withdrawal refused",
			zap.String("cpf", cpf),
			zap.String("balance", balance.String()),
			zap.String("amount", amount.String()))
		return ErrInsufficientFunds
	}

	// Debit entry: money leaving the customer's account, no description
	op := models.StatementOperation{
		Amount:    amount,
		Type:      models.Debit,
		CreatedAt: l.now(),
	}
	err = l.store.AppendOperation(ctx, cpf, op)
	unlock()
	if err != nil {
		return fmt.Errorf("append debit: %w", err)
	}

	operationsRecorded.WithLabelValues(string(models.Debit)).Inc()
	l.publish(ctx, customer, op, balance.Sub(amount))
	return nil
}

func (l *Ledger) Balance(ctx context.Context, cpf string) (decimal.Decimal, error) {
	customer, err := l.store.FindByCPF(ctx, cpf)
	if err != nil {
		return decimal.Zero, err
	}
	// Balance is never stored, always folded from the statement
	return ComputeBalance(customer.Statement), nil
}

func (l *Ledger) Statement(ctx context.Context, cpf string) ([]models.StatementOperation, error) {
	customer, err := l.store.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	return StatementFor(customer), nil
}

// StatementByDate returns the operations recorded on the calendar day of
// day, in the ledger's location.
func (l *Ledger) StatementByDate(ctx context.Context, cpf string, day time.Time) ([]models.StatementOperation, error) {
	customer, err := l.store.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	return StatementForDate(customer, day, l.loc), nil
}

// Location is the time zone calendar days are evaluated in
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// publish is best-effort: the operation is already on the statement, so a
// failure is logged and counted, never returned.
func (l *Ledger) publish(ctx context.Context, customer models.Customer, op models.StatementOperation, balance decimal.Decimal) {
	if l.publisher == nil {
		return
	}

	event := events.OperationRecorded{
		CustomerID: customer.ID,
		CPF:        customer.CPF,
		Type:       string(op.Type),
		Amount:     op.Amount,
		Balance:    balance,
		OccurredAt: op.CreatedAt,
	}
	// Keyed by customer id so one customer's events stay in order
	if err := l.publisher.Publish(ctx, customer.ID.String(), event); err != nil {
		publishErrors.Inc()
		l.logger.Error("failed to publish operation recorded event",
			zap.String("customer_id", customer.ID.String()),
			zap.Error(err))
	}
}
