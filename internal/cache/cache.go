package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Get when the key is absent or stale.
var ErrMiss = errors.New("cache miss")

// Generation identifies the cache contents a Get observed. Passing it back to
// Set stores the value under that generation, so an Invalidate that happens
// in between leaves the value unreachable.
type Generation int64

// SummaryCache stores computed period summaries. Invalidate makes every
// previously stored value unreachable.
type SummaryCache interface {
	Get(ctx context.Context, key string, dst any) (Generation, error)
	Set(ctx context.Context, gen Generation, key string, value any) error
	Invalidate(ctx context.Context) error
	Close() error
}

// Noop is used when no cache backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (Generation, error) { return 0, ErrMiss }
func (Noop) Set(context.Context, Generation, string, any) error   { return nil }
func (Noop) Invalidate(context.Context) error                     { return nil }
func (Noop) Close() error                                         { return nil }
