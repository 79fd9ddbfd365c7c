// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng   = nil           (pure/deterministic unless seeded)
//   • start = 0             (top-left cell)
//   • goal  = last cell     (bottom-right), resolved at build time

package mazetest

import "math/rand"

// unset marks an endpoint left to its default.
const unset = -1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng   *rand.Rand
	start int
	goal  int
}

// newBuilderConfig applies options in order; later options override earlier.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		start: unset,
		goal:  unset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
