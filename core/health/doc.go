// Package health runs readiness probes against the client's dependencies
// (storage backends, Redis, the application backend).
//
// A probe is any func(context.Context) error, the same shape returned by
// redis.Healthcheck:
//
//	report := health.Run(ctx, log,
//		health.Check{Name: "storage", Probe: health.StorageProbe(kv)},
//		health.Check{Name: "redis", Probe: redis.Healthcheck(client)},
//	)
//	if !report.Ready() {
//		os.Exit(1)
//	}
//
// Checks run in order; every check runs even after a failure so the report
// covers all dependencies. Failures are logged at error level.
package health
