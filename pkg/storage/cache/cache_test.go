package cache

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/zarr/pkg/storage"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestCacheHitMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obj")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))
	engine, err := New(storage.NewLocalEngine(), 8, prometheus.NewRegistry())
	require.NoError(t, err)
	u, err := storage.ParseURI(path)
	require.NoError(t, err)

	read := func() string {
		r, err := engine.Get(context.Background(), u)
		require.NoError(t, err)
		defer r.Close()
		b, err := io.ReadAll(r)
		require.NoError(t, err)
		return string(b)
	}

	assert.Equal(t, "payload", read())
	assert.EqualValues(t, 0, counterValue(t, engine.hits))
	assert.EqualValues(t, 1, counterValue(t, engine.misses))

	// Second read is served from the cache even if the file vanishes.
	require.NoError(t, os.Remove(path))
	assert.Equal(t, "payload", read())
	assert.EqualValues(t, 1, counterValue(t, engine.hits))
	assert.EqualValues(t, 1, counterValue(t, engine.misses))

	size, err := engine.Size(context.Background(), u)
	require.NoError(t, err)
	assert.EqualValues(t, len("payload"), size)
	ok, err := engine.Exists(context.Background(), u)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCacheMissError(t *testing.T) {
	engine, err := New(storage.NewLocalEngine(), 8, nil)
	require.NoError(t, err)
	u, err := storage.ParseURI(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	_, err = engine.Get(context.Background(), u)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
