package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minikit/core/storage"
)

func TestFileBackend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "kv")
	b := storage.NewFileBackend(dir)

	_, err := b.Get(ctx, "app-token")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, b.Set(ctx, "app-token", []byte(`"abc"`)))
	got, err := b.Get(ctx, "app-token")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(got))

	require.NoError(t, b.Set(ctx, "app-token", []byte(`"def"`)))
	got, err = b.Get(ctx, "app-token")
	require.NoError(t, err)
	assert.Equal(t, `"def"`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")

	require.NoError(t, b.Remove(ctx, "app-token"))
	require.NoError(t, b.Remove(ctx, "app-token"))
	_, err = b.Get(ctx, "app-token")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileBackendEscapesKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	b := storage.NewFileBackend(dir)

	require.NoError(t, b.Set(ctx, "app-../escape", []byte("1")))
	_, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape"))
	assert.True(t, os.IsNotExist(err))

	got, err := b.Get(ctx, "app-../escape")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
}

func TestFileBackendWithStorage(t *testing.T) {
	t.Parallel()

	s := storage.New(storage.NewFileBackend(t.TempDir()), "bhapp")
	s.Set("userInfo", map[string]any{"name": "ann"})
	assert.Equal(t, map[string]any{"name": "ann"}, s.Get("userInfo", nil))
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := storage.NewMemoryBackend()
	in := []byte("abc")
	require.NoError(t, b.Set(ctx, "k", in))
	in[0] = 'x'

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, b.Len())
}
