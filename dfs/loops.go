package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvmaze/maze"
)

// Loops returns every passage that closes a loop in m: the edges left over
// once a depth-first spanning forest is taken out. The count equals
// E - V + C for a symmetric maze. Edges are sorted by (From, To).
func Loops(m *maze.Maze) ([]Edge, error) {
	if m == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(m, DefaultOptions())
	var loops []Edge
	w.onBack = func(from, to int) {
		loops = append(loops, Edge{From: min(from, to), To: max(from, to)})
	}
	for id := 0; id < m.Size(); id++ {
		if w.state[id] == White {
			if err := w.run(id); err != nil {
				return nil, err
			}
		}
	}

	slices.SortFunc(loops, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return loops, nil
}

// IsPerfect reports whether m is non-empty, connected and loop-free, so
// exactly one path joins any two cells.
func IsPerfect(m *maze.Maze) bool {
	if m == nil || m.Empty() {
		return false
	}
	if len(m.Components()) != 1 {
		return false
	}
	loops, err := Loops(m)
	return err == nil && len(loops) == 0
}
