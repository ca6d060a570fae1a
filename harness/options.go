// SPDX-License-Identifier: MIT
// Package: twocolor/harness
//
// options.go - Config and its functional options.
//
// Contract:
//   - Defaults match the classic driver: V1=V2=10, E=20, F=15, one trial.
//   - Options panic on meaningless values; Run never panics.

package harness

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	defaultSide       = 10
	defaultEdges      = 20
	defaultExtraEdges = 15
	defaultTrials     = 1
	defaultSeed       = 1
)

// Config holds the harness parameters.
type Config struct {
	Trials     int
	V1, V2     int
	Edges      int
	ExtraEdges int
	Seed       int64
	Workers    int
	Logger     *slog.Logger
}

// Option customizes Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Trials:     defaultTrials,
		V1:         defaultSide,
		V2:         defaultSide,
		Edges:      defaultEdges,
		ExtraEdges: defaultExtraEdges,
		Seed:       defaultSeed,
		Workers:    runtime.GOMAXPROCS(0),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewConfig applies opts over DefaultConfig in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTrials sets the number of trials. Panics if n < 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic("harness: WithTrials(n<1)")
	}
	return func(c *Config) { c.Trials = n }
}

// WithSides sets the sizes of the two hidden sides. Panics if either is < 1.
func WithSides(v1, v2 int) Option {
	if v1 < 1 || v2 < 1 {
		panic("harness: WithSides requires v1, v2 >= 1")
	}
	return func(c *Config) {
		c.V1 = v1
		c.V2 = v2
	}
}

// WithEdges sets the number of cross edges. Panics if e < 0.
func WithEdges(e int) Option {
	if e < 0 {
		panic("harness: WithEdges(e<0)")
	}
	return func(c *Config) { c.Edges = e }
}

// WithExtraEdges sets the number of random extra edges. Panics if f < 0.
func WithExtraEdges(f int) Option {
	if f < 0 {
		panic("harness: WithExtraEdges(f<0)")
	}
	return func(c *Config) { c.ExtraEdges = f }
}

// WithSeed sets the base seed; trial i uses seed+i.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithWorkers bounds concurrent trials. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("harness: WithWorkers(k<1)")
	}
	return func(c *Config) { c.Workers = k }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("harness: WithLogger(nil)")
	}
	return func(c *Config) { c.Logger = l }
}
