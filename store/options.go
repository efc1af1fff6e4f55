// SPDX-License-Identifier: MIT
// Package: trafficpath/store
//
// options.go - functional options shared by every loader.

package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
)

// LoadOption customizes how a network is rebuilt.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger   *zap.Logger
	capacity int
	gopts    []core.GraphOption
}

func newLoadConfig(opts ...LoadOption) loadConfig {
	cfg := loadConfig{
		logger:   zap.NewNop(),
		capacity: core.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.gopts) > 0 {
		// a core.WithCapacity among gopts wins; the up-front checks follow it
		cfg.capacity = cfg.builder().Capacity()
	}

	return cfg
}

// builder returns a core.Builder honoring the configured capacity and options.
func (c loadConfig) builder() *core.Builder {
	return core.NewBuilder(append([]core.GraphOption{core.WithCapacity(c.capacity)}, c.gopts...)...)
}

// WithLogger sets the logger used to report skipped records. Nil is ignored.
func WithLogger(l *zap.Logger) LoadOption {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCapacity bounds the number of junctions a loaded network may hold.
// Panics if n ≤ 0.
func WithCapacity(n int) LoadOption {
	if n <= 0 {
		panic(fmt.Sprintf("store: WithCapacity(%d): capacity must be positive", n))
	}
	return func(c *loadConfig) {
		c.capacity = n
	}
}

// WithGraphOptions forwards extra options to the underlying core.Builder,
// e.g. core.WithNonNegativeWeights(). A core.WithCapacity passed here
// overrides WithCapacity.
func WithGraphOptions(opts ...core.GraphOption) LoadOption {
	return func(c *loadConfig) {
		c.gopts = append(c.gopts, opts...)
	}
}

// addRoad inserts u–v and logs instead of failing when the builder rejects it.
// Reports whether the road was kept.
func addRoad(b *core.Builder, log *zap.Logger, u, v int, w int64) bool {
	if err := b.AddEdge(u, v, w); err != nil {
		log.Warn("store: road skipped",
			zap.Int("from", u),
			zap.Int("to", v),
			zap.Int64("weight", w),
			zap.Error(err),
		)
		return false
	}

	return true
}
