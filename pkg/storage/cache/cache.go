// Package cache contains facilities for caching immutable objects read
// through a storage engine, typically a cloud object store.
package cache

import (
	"context"

	"github.com/brimdata/zarr/pkg/storage"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine fronts another storage engine with an LRU of whole objects.
// Objects read through it must be immutable: a cached entry is never
// invalidated.
type Engine struct {
	inner  storage.Engine
	lru    *lru.Cache[string, []byte]
	hits   prometheus.Counter
	misses prometheus.Counter
}

var _ storage.Engine = (*Engine)(nil)

func New(inner storage.Engine, size int, registerer prometheus.Registerer) (*Engine, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	factory := promauto.With(registerer)
	return &Engine{
		inner: inner,
		lru:   cache,
		hits: factory.NewCounter(prometheus.CounterOpts{
			Name: "storage_cache_hits_total",
			Help: "Number of hits for a cache lookup.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Name: "storage_cache_misses_total",
			Help: "Number of misses for a cache lookup.",
		}),
	}, nil
}

func (e *Engine) Get(ctx context.Context, u *storage.URI) (storage.Reader, error) {
	if b, ok := e.lru.Get(u.String()); ok {
		e.hits.Inc()
		return storage.NewBytesReader(b), nil
	}
	b, err := storage.Get(ctx, e.inner, u)
	if err != nil {
		return nil, err
	}
	e.lru.Add(u.String(), b)
	e.misses.Inc()
	return storage.NewBytesReader(b), nil
}

func (e *Engine) Size(ctx context.Context, u *storage.URI) (int64, error) {
	if b, ok := e.lru.Get(u.String()); ok {
		return int64(len(b)), nil
	}
	return e.inner.Size(ctx, u)
}

func (e *Engine) Exists(ctx context.Context, u *storage.URI) (bool, error) {
	if _, ok := e.lru.Get(u.String()); ok {
		return true, nil
	}
	return e.inner.Exists(ctx, u)
}

func (e *Engine) List(ctx context.Context, u *storage.URI) ([]storage.Info, error) {
	return e.inner.List(ctx, u)
}
