package storage

import (
	"context"
	"fmt"
)

type Scheme string

const (
	FileScheme  Scheme = "file"
	HTTPScheme  Scheme = "http"
	HTTPSScheme Scheme = "https"
	S3Scheme    Scheme = "s3"
)

func knownScheme(s Scheme) bool {
	switch s {
	case FileScheme, HTTPScheme, HTTPSScheme, S3Scheme:
		return true
	}
	return false
}

// Router dispatches Engine calls by URI scheme to the engines that have
// been enabled on it.  A scheme that has not been enabled is an error at
// call time, not a fallback to some other engine.
type Router struct {
	engines map[Scheme]Engine
}

var _ Engine = (*Router)(nil)

func NewRouter() *Router {
	return &Router{engines: make(map[Scheme]Engine)}
}

func (r *Router) Enable(scheme Scheme) {
	switch scheme {
	case FileScheme:
		r.engines[FileScheme] = NewFileSystem()
	case HTTPScheme, HTTPSScheme:
		engine := NewHTTP()
		r.engines[HTTPScheme] = engine
		r.engines[HTTPSScheme] = engine
	case S3Scheme:
		r.engines[S3Scheme] = NewS3()
	default:
		panic(fmt.Sprintf("storage: cannot enable unknown scheme %q", scheme))
	}
}

func (r *Router) lookup(u *URI) (Engine, error) {
	scheme := Scheme(u.Scheme)
	if scheme == "" {
		scheme = FileScheme
	}
	engine, ok := r.engines[scheme]
	if !ok {
		return nil, fmt.Errorf("storage scheme %q not enabled", scheme)
	}
	return engine, nil
}

func (r *Router) Get(ctx context.Context, u *URI) (Reader, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return nil, err
	}
	return engine.Get(ctx, u)
}

func (r *Router) Size(ctx context.Context, u *URI) (int64, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return 0, err
	}
	return engine.Size(ctx, u)
}

func (r *Router) Exists(ctx context.Context, u *URI) (bool, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return false, err
	}
	return engine.Exists(ctx, u)
}

func (r *Router) List(ctx context.Context, u *URI) ([]Info, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return nil, err
	}
	return engine.List(ctx, u)
}
