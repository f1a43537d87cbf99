// Package metrics exposes Prometheus counters for the ingestion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_pages_fetched_total",
		Help: "Total pages fetched from the upstream API by resource",
	}, []string{"resource"})

	recordsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_records_fetched_total",
		Help: "Total raw records fetched from the upstream API by resource",
	}, []string{"resource"})

	rateLimitHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_rate_limit_hits_total",
		Help: "Total HTTP 429 responses received by resource",
	}, []string{"resource"})

	duplicatesDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_duplicates_dropped_total",
		Help: "Total records discarded by first-wins deduplication by resource",
	}, []string{"resource"})

	rowsUpsertedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_rows_upserted_total",
		Help: "Total rows applied to the store by entity",
	}, []string{"entity"})

	batchCommitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_batch_commits_total",
		Help: "Total batch transactions committed by entity",
	}, []string{"entity"})

	rowErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_row_errors_total",
		Help: "Total rows rejected by the store (referential or data errors) by entity",
	}, []string{"entity"})
)

// Recorder is a nil-safe facade over the package counters so components can
// take an optional recorder without guarding every call site.
type Recorder struct{}

// NewRecorder returns a Recorder backed by the process-wide registry.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordPage counts one fetched page and the records it carried.
func (r *Recorder) RecordPage(resource string, records int) {
	if r == nil {
		return
	}
	pagesFetchedTotal.WithLabelValues(resource).Inc()
	recordsFetchedTotal.WithLabelValues(resource).Add(float64(records))
}

// RecordRateLimit counts an upstream 429 response.
func (r *Recorder) RecordRateLimit(resource string) {
	if r == nil {
		return
	}
	rateLimitHitsTotal.WithLabelValues(resource).Inc()
}

// RecordDuplicates counts records dropped by deduplication.
func (r *Recorder) RecordDuplicates(resource string, dropped int) {
	if r == nil || dropped <= 0 {
		return
	}
	duplicatesDroppedTotal.WithLabelValues(resource).Add(float64(dropped))
}

// RecordUpserts counts rows applied to the store.
func (r *Recorder) RecordUpserts(entity string, rows int) {
	if r == nil {
		return
	}
	rowsUpsertedTotal.WithLabelValues(entity).Add(float64(rows))
}

// RecordBatchCommit counts one committed batch transaction.
func (r *Recorder) RecordBatchCommit(entity string) {
	if r == nil {
		return
	}
	batchCommitsTotal.WithLabelValues(entity).Inc()
}

// RecordRowError counts a row the store rejected.
func (r *Recorder) RecordRowError(entity string) {
	if r == nil {
		return
	}
	rowErrorsTotal.WithLabelValues(entity).Inc()
}
