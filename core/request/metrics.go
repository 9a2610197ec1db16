package request

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	methodUpload = "UPLOAD"

	outcomeOK           = "ok"
	outcomeAppError     = "app_error"
	outcomeNetworkError = "network_error"
	outcomeInvalid      = "invalid"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minikit",
			Name:      "requests_total",
			Help:      "Backend calls by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "minikit",
			Name:      "request_duration_seconds",
			Help:      "Backend call latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.requests = register(reg, m.requests)
	m.duration = register(reg, m.duration)
	return m
}

// register returns the already registered collector when another client got there first.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func (c *Client) observe(method, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.requests.WithLabelValues(method, outcome).Inc()
	c.metrics.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
