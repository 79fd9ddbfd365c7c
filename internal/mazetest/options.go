// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// options.go — functional options for the mazetest package.
//
// Option constructors panic on meaningless inputs; constructors themselves
// return sentinel errors and never panic.

package mazetest

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for randomized constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("mazetest: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEndpoints sets the start and goal cells written to the layout.
// Panics on negative ids; ids past the grid fail the build with
// ErrConstructFailed.
func WithEndpoints(start, goal int) BuilderOption {
	if start < 0 || goal < 0 {
		panic("mazetest: WithEndpoints(negative id)")
	}
	return func(c *builderConfig) {
		c.start, c.goal = start, goal
	}
}
