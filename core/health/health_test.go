package health_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minikit/core/health"
	"github.com/dmitrymomot/minikit/core/storage"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("liveness without checks", func(t *testing.T) {
		t.Parallel()
		r := health.Run(t.Context(), nil)
		assert.Equal(t, health.StatusAlive, r.Status)
		assert.True(t, r.Ready())
	})

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()
		r := health.Run(t.Context(), nil,
			health.Check{Name: "a", Probe: func(context.Context) error { return nil }},
			health.Check{Name: "b", Probe: func(context.Context) error { return nil }},
		)
		assert.Equal(t, health.StatusReady, r.Status)
		require.Len(t, r.Results, 2)
		assert.NoError(t, r.Results[0].Err)
	})

	t.Run("failure keeps running remaining checks", func(t *testing.T) {
		t.Parallel()
		ran := false
		r := health.Run(t.Context(), nil,
			health.Check{Name: "redis", Probe: func(context.Context) error { return errors.New("down") }},
			health.Check{Name: "storage", Probe: func(context.Context) error { ran = true; return nil }},
		)
		assert.False(t, r.Ready())
		assert.True(t, ran)
		assert.Equal(t, "down", r.Results[0].Error)
	})

	t.Run("probe timeout", func(t *testing.T) {
		t.Parallel()
		r := health.Run(t.Context(), nil, health.Check{
			Name:    "slow",
			Timeout: 10 * time.Millisecond,
			Probe: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		})
		assert.False(t, r.Ready())
		assert.ErrorIs(t, r.Results[0].Err, context.DeadlineExceeded)
	})
}

func TestStorageProbe(t *testing.T) {
	t.Parallel()

	backend := storage.NewMemoryBackend()
	probe := health.StorageProbe(storage.New(backend, "app"))
	require.NoError(t, probe(t.Context()))
	assert.Equal(t, 0, backend.Len())

	failing := health.StorageProbe(storage.New(&readOnly{}, "app"))
	assert.Error(t, failing(t.Context()))
}

type readOnly struct{}

func (readOnly) Get(context.Context, string) ([]byte, error) { return nil, storage.ErrNotFound }
func (readOnly) Set(context.Context, string, []byte) error   { return errors.New("read-only") }
func (readOnly) Remove(context.Context, string) error        { return nil }
