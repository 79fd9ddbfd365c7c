// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// api.go — the build orchestrator and constructor type.
//
// Same inputs, options, seed and constructor order ⇒ identical layouts.

package mazetest

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Constructor carves passages into a layout using the resolved config.
// Constructors validate their parameters and return sentinel errors.
type Constructor func(l *Layout, cfg builderConfig) error

// BuildMaze creates a fully walled rows×cols layout, applies every
// constructor in order and resolves the endpoints. Constructor errors are
// wrapped with "BuildMaze: %w".
func BuildMaze(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*Layout, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("BuildMaze: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewCells)
	}
	g, err := gridgraph.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("BuildMaze: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	l := newLayout(g)
	l.Start, l.Goal = 0, g.Size()-1
	if cfg.start != unset {
		l.Start = cfg.start
	}
	if cfg.goal != unset {
		l.Goal = cfg.goal
	}
	if !g.Contains(l.Start) || !g.Contains(l.Goal) {
		return nil, fmt.Errorf("BuildMaze: endpoints %d,%d outside %d cells: %w",
			l.Start, l.Goal, g.Size(), ErrConstructFailed)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMaze: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("BuildMaze: %w", err)
		}
	}
	return l, nil
}
