package ledger

import (
	"time"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/interfaces"
	"go.uber.org/zap"
)

type Option func(*Ledger)

// WithClock replaces time.Now as the source of operation timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithLocation sets the time zone calendar days are compared in
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithPublisher makes the ledger emit an OperationRecorded event per credit and debit
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(l *Ledger) {
		l.publisher = p
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}
