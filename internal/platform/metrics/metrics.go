// Package metrics exposes Prometheus instruments for journal posting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Posting outcomes used as the "outcome" label.
const (
	OutcomePosted           = "posted"
	OutcomeValidation       = "validation_error"
	OutcomeDuplicate        = "duplicate"
	OutcomeStoreUnavailable = "store_unavailable"
	OutcomeConstraint       = "constraint_violation"
	OutcomeError            = "error"
)

// PostingsTotal counts posting attempts by outcome.
var PostingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "posting",
	Name:      "attempts_total",
	Help:      "Journal entry posting attempts by outcome.",
}, []string{"outcome"})

// PostingDuration observes the time spent inside the store transaction.
var PostingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "journal",
	Subsystem: "posting",
	Name:      "transaction_seconds",
	Help:      "Time from Begin to Commit or Rollback of a posting transaction.",
	Buckets:   prometheus.DefBuckets,
})

// RowsWritten counts committed rows by table.
var RowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "posting",
	Name:      "rows_written_total",
	Help:      "Rows committed by table.",
}, []string{"table"})

// RecordPosted records a committed commit unit.
func RecordPosted(lines, ledgerEntries int) {
	PostingsTotal.WithLabelValues(OutcomePosted).Inc()
	RowsWritten.WithLabelValues("journal_entry").Inc()
	RowsWritten.WithLabelValues("journal_entry_account").Add(float64(lines))
	RowsWritten.WithLabelValues("accounting_ledger_entry").Add(float64(ledgerEntries))
}

// RecordFailure records a failed posting attempt.
func RecordFailure(outcome string) {
	PostingsTotal.WithLabelValues(outcome).Inc()
}
