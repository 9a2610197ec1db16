package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/minikit/core/config"
	"github.com/dmitrymomot/minikit/core/health"
	"github.com/dmitrymomot/minikit/core/host"
	"github.com/dmitrymomot/minikit/core/logger"
	"github.com/dmitrymomot/minikit/core/request"
	"github.com/dmitrymomot/minikit/core/session"
	"github.com/dmitrymomot/minikit/core/storage"
	"github.com/dmitrymomot/minikit/integration/database/redis"
	"github.com/dmitrymomot/minikit/integration/storage/s3"
)

const (
	storeFile   = "file"
	storeMemory = "memory"
	storeRedis  = "redis"
	storeS3     = "s3"

	// sessionKey holds the captured Cookie header between invocations.
	sessionKey = "session"
)

var errUnknownStore = errors.New("unknown storage backend")

type globalFlags struct {
	verbose bool
	store   string
	dir     string
	metrics bool
}

type appConfig struct {
	AppName string `env:"MINIKIT_APP_NAME" envDefault:"minikit"`
}

// app holds everything a command needs. Close releases backend connections.
type app struct {
	log      *slog.Logger
	kv       *storage.Storage
	registry *prometheus.Registry
	metrics  bool
	checks   []health.Check
	closers  []func() error
}

func newApp(ctx context.Context, flags *globalFlags) (*app, error) {
	log := logger.NewNop()
	if flags.verbose {
		log = logger.New(logger.WithDevelopment("minikit"), logger.WithOutput(os.Stderr))
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	a := &app{
		log:      log,
		registry: prometheus.NewRegistry(),
		metrics:  flags.metrics,
	}

	backend, err := a.backend(ctx, flags)
	if err != nil {
		return nil, err
	}
	a.kv = storage.New(backend, cfg.AppName, storage.WithLogger(log))
	a.checks = append(a.checks, health.Check{Name: "storage:" + flags.store, Probe: health.StorageProbe(a.kv)})

	return a, nil
}

func (a *app) backend(ctx context.Context, flags *globalFlags) (storage.Backend, error) {
	switch flags.store {
	case storeFile:
		dir := flags.dir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve config dir: %w", err)
			}
			dir = filepath.Join(base, "minikit")
		}
		return storage.NewFileBackend(dir), nil

	case storeMemory:
		return storage.NewMemoryBackend(), nil

	case storeRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		a.checks = append(a.checks, health.Check{Name: "redis", Probe: redis.Healthcheck(client)})
		return redis.NewBackend(client, redis.WithKeyPrefix(cfg.KeyPrefix)), nil

	case storeS3:
		var cfg s3.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return s3.New(ctx, cfg)

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownStore, flags.store)
	}
}

// client builds a request client whose session cookie is restored from storage.
func (a *app) client() (*request.Client, error) {
	var cfg request.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	headers := session.New()
	if cookie := storage.Load(a.kv, sessionKey, ""); cookie != "" {
		headers.Set(session.CookieHeader, cookie)
	}

	return request.NewFromConfig(cfg,
		request.WithHeaders(headers),
		request.WithUI(host.NewLogUI(a.log)),
		request.WithLogger(a.log),
		request.WithMetrics(a.registry),
	)
}

// saveSession persists the cookie captured during the command.
func (a *app) saveSession(c *request.Client) {
	if cookie, ok := c.Headers().Get(session.CookieHeader); ok && cookie != "" {
		a.kv.Set(sessionKey, cookie)
	}
}

// finish saves the session and prints metrics when requested.
func (a *app) finish(w io.Writer, c *request.Client) {
	a.saveSession(c)
	if a.metrics {
		printMetrics(w, a.registry)
	}
}

func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// parsePairs turns key=value arguments into a map.
func parsePairs(args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		out[k] = v
	}
	return out, nil
}

func printMetrics(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		fmt.Fprintf(w, "metrics unavailable: %s\n", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			name := mf.GetName() + "{" + strings.Join(labels, ",") + "}"
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s count=%d sum=%gs\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}
