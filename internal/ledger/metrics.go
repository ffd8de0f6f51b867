package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_recorded_total",
			Help: "Statement operations appended, by type",
		},
		[]string{"type"},
	)

	operationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_rejected_total",
			Help: "Ledger operations refused, by operation and reason",
		},
		[]string{"operation", "reason"},
	)

	publishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_event_publish_errors_total",
			Help: "OperationRecorded events that could not be handed to the publisher",
		},
	)
)
