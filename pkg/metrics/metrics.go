package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os coletores do serviço. Um *Metrics nil é válido e ignora as chamadas.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Sincronização
	SyncRunsTotal     *prometheus.CounterVec
	SyncDuration      *prometheus.HistogramVec
	RecordsTotal      *prometheus.CounterVec
	ExistenceFailures *prometheus.CounterVec

	// APIs externas
	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec

	// Entregas
	DeliveriesTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		SyncRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_runs_total",
				Help: "Total number of client synchronization runs",
			},
			[]string{"platform", "mode", "status"},
		),

		SyncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sync_duration_seconds",
				Help:    "Client synchronization duration in seconds",
				Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120, 300},
			},
			[]string{"platform", "mode"},
		),

		RecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_records_total",
				Help: "Records handled by the persister by outcome (saved, duplicate, conflict, error)",
			},
			[]string{"platform", "outcome"},
		),

		ExistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_existence_check_failures_total",
				Help: "Existence lookups that failed and were treated as absent",
			},
			[]string{"platform"},
		),

		ExternalAPICalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_calls_total",
				Help: "Total number of external API calls",
			},
			[]string{"api", "status"},
		),

		ExternalAPIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_api_duration_seconds",
				Help:    "External API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),

		DeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whatsapp_deliveries_total",
				Help: "Total number of WhatsApp report deliveries",
			},
			[]string{"platform", "status"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) RecordSyncRun(platform, mode, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.SyncRunsTotal.WithLabelValues(platform, mode, status).Inc()
	m.SyncDuration.WithLabelValues(platform, mode).Observe(duration.Seconds())
}

func (m *Metrics) RecordBatch(platform string, saved, duplicates, errors int) {
	if m == nil {
		return
	}
	m.RecordsTotal.WithLabelValues(platform, "saved").Add(float64(saved))
	m.RecordsTotal.WithLabelValues(platform, "duplicate").Add(float64(duplicates))
	m.RecordsTotal.WithLabelValues(platform, "error").Add(float64(errors))
}

// RecordConflicts conta inserções descartadas pelo ON CONFLICT do banco,
// ou seja, chaves gravadas por outra execução depois da verificação de existência
func (m *Metrics) RecordConflicts(platform string, conflicts int) {
	if m == nil {
		return
	}
	m.RecordsTotal.WithLabelValues(platform, "conflict").Add(float64(conflicts))
}

func (m *Metrics) RecordExistenceFailure(platform string) {
	if m == nil {
		return
	}
	m.ExistenceFailures.WithLabelValues(platform).Inc()
}

func (m *Metrics) RecordExternalAPICall(api, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ExternalAPICalls.WithLabelValues(api, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

func (m *Metrics) RecordDelivery(platform, status string) {
	if m == nil {
		return
	}
	m.DeliveriesTotal.WithLabelValues(platform, status).Inc()
}
