package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "life_advisor"

// Chat request outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeMalformed     = "malformed"
	OutcomeUpstreamError = "upstream_error"
	OutcomeInternal      = "internal"
)

// Collector owns a private registry so tests and multiple servers in one
// process never collide on the global one.
//
// Metrics:
//   - life_advisor_chat_requests_total: chat requests by outcome
//   - life_advisor_completion_duration_seconds: external call latency by model, status
type Collector struct {
	registry *prometheus.Registry

	chatRequests       *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		chatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "chat_requests_total",
				Help:      "Total number of chat requests by outcome",
			},
			[]string{"outcome"},
		),
		completionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "completion_duration_seconds",
				Help:      "Duration of completion API calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9), // 250ms to 64s
			},
			[]string{"model", "status"},
		),
	}
	c.registry.MustRegister(
		c.chatRequests,
		c.completionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// RecordChat counts one handled chat request.
func (c *Collector) RecordChat(outcome string) {
	c.chatRequests.WithLabelValues(outcome).Inc()
}

// RecordCompletion observes one external call.
func (c *Collector) RecordCompletion(model string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.completionDuration.WithLabelValues(model, status).Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
