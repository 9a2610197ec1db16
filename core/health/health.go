package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/minikit/core/logger"
)

// Status strings reported for a whole run.
const (
	StatusAlive    = "ALIVE"
	StatusReady    = "READY"
	StatusNotReady = "NOT_READY"
)

// DefaultTimeout bounds a probe that sets no timeout of its own.
const DefaultTimeout = 5 * time.Second

const storageProbeKey = "__health__"

// Check is a named dependency probe.
type Check struct {
	Name  string
	Probe func(context.Context) error
	// Timeout bounds the probe. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Result is the outcome of one Check.
type Result struct {
	Name     string        `json:"name"`
	Err      error         `json:"-"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report collects the results of a run.
type Report struct {
	Status  string   `json:"status"`
	Results []Result `json:"results,omitempty"`
}

// Ready reports whether every check passed.
func (r Report) Ready() bool {
	return r.Status != StatusNotReady
}

// Run executes checks in order. Without checks the report is a liveness answer.
func Run(ctx context.Context, log *slog.Logger, checks ...Check) Report {
	if len(checks) == 0 {
		return Report{Status: StatusAlive}
	}
	if log == nil {
		log = logger.NewNop()
	}

	report := Report{Status: StatusReady, Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		res := run(ctx, c)
		if res.Err != nil {
			report.Status = StatusNotReady
			log.ErrorContext(ctx, "readiness check failed",
				logger.Component("health"),
				slog.String("check", c.Name),
				logger.Duration(res.Duration),
				logger.Error(res.Err),
			)
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func run(ctx context.Context, c Check) Result {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := c.Probe(ctx)
	res := Result{Name: c.Name, Err: err, Duration: time.Since(start)}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
