package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "exception_reporting"
)

var (
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "reporter", "reports_total"),
		Help: "Reporting calls by severity and the action taken",
	}, []string{"severity", "action"})
	ConsentPrompts = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "consent", "prompts_total"),
		Help: "Consent prompts shown for private metadata",
	})
	ConsentDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "consent", "decisions_total"),
		Help: "Resolved consent prompts by decision",
	}, []string{"decision"})
	TransportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "transport", "request_duration_seconds"),
		Help:    "Duration of collector requests in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	})
	TransportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "transport", "failures_total"),
		Help: "Dropped collector requests by reason",
	}, []string{"reason"})
	RecoveredPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "reporter", "recovered_panics_total"),
		Help: "Panics recovered inside the reporting path",
	})
)
