// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// impl_kruskal.go — Kruskal() constructor.
//
// Randomized Kruskal: every interior wall is a candidate edge; walls are
// shuffled with cfg.rng and removed whenever they join two different
// regions. Union-find uses path halving and union by rank.
//
// Complexity: O(V·α(V)) after an O(V) shuffle.

package mazetest

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// wall is an interior face identified by its west or north cell.
type wall struct {
	id int
	d  gridgraph.Direction // East or South
}

// Kruskal carves a perfect maze by randomized Kruskal's algorithm.
func Kruskal() Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("Kruskal: %w", ErrNeedRandSource)
		}
		g := l.Grid
		n := g.Size()

		walls := make([]wall, 0, 2*n)
		for id := 0; id < n; id++ {
			for _, d := range [...]gridgraph.Direction{gridgraph.East, gridgraph.South} {
				if !g.OnBoundary(id, d) {
					walls = append(walls, wall{id: id, d: d})
				}
			}
		}
		cfg.rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

		parent := make([]int, n)
		rank := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		find := func(u int) int {
			for parent[u] != u {
				parent[u] = parent[parent[u]]
				u = parent[u]
			}
			return u
		}

		joined := 0
		for _, w := range walls {
			if joined == n-1 {
				break
			}
			nbr, _ := g.Step(w.id, w.d)
			ru, rv := find(w.id), find(nbr)
			if ru == rv {
				continue
			}
			// union by rank
			if rank[ru] < rank[rv] {
				ru, rv = rv, ru
			}
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
			l.carve(w.id, w.d)
			joined++
		}
		return nil
	}
}
