// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// impl_random.go — Backtracker() and Braid(p) constructors.
//
// Both draw from cfg.rng only, so a fixed seed fixes the layout.

package mazetest

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Backtracker carves a perfect maze (connected, loop-free) with an
// iterative randomized depth-first search from cell 0. Cells already opened
// by an earlier constructor are treated as unvisited.
func Backtracker() Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("Backtracker: %w", ErrNeedRandSource)
		}
		g := l.Grid
		visited := make([]bool, g.Size())
		stack := []int{0}
		visited[0] = true

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			// try the four faces in random order
			var next int
			found := false
			for _, k := range cfg.rng.Perm(len(gridgraph.Directions)) {
				d := gridgraph.Directions[k]
				nbr, ok := g.Step(top, d)
				if !ok || visited[nbr] {
					continue
				}
				l.carve(top, d)
				next, found = nbr, true
				break
			}
			if !found {
				stack = stack[:len(stack)-1]
				continue
			}
			visited[next] = true
			stack = append(stack, next)
		}
		return nil
	}
}

// Braid removes each remaining interior wall with probability p, adding
// loops. Walls are considered East then South for each cell in row-major
// order.
func Braid(p float64) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("Braid: p=%v: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("Braid: %w", ErrNeedRandSource)
		}
		for id := 0; id < l.Grid.Size(); id++ {
			for _, d := range [...]gridgraph.Direction{gridgraph.East, gridgraph.South} {
				if l.Grid.OnBoundary(id, d) || l.Codes[id].Open(d) {
					continue
				}
				if cfg.rng.Float64() < p {
					l.carve(id, d)
				}
			}
		}
		return nil
	}
}
