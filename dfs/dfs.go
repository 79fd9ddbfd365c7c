package dfs

import (
	"github.com/katalvlaran/lvmaze/maze"
)

// frame is one entry of the explicit recursion stack.
type frame struct {
	id   int
	nbrs []int
	next int
}

// walker encapsulates state during a walk.
type walker struct {
	m     *maze.Maze
	opts  Options
	res   *Result
	state []int
	stack []frame

	// onBack, if set, is called for every edge to a Gray cell other than the
	// parent.
	onBack func(from, to int)
}

// Walk performs a depth-first walk of m from start. With WithFullTraversal
// it restarts from every unvisited cell and start is ignored. Neighbours are
// explored in adjacency order (N, E, S, W).
func Walk(m *maze.Maze, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !m.Grid().Contains(start) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(m, o)
	if o.FullTraversal {
		for id := 0; id < m.Size(); id++ {
			if w.state[id] != White {
				continue
			}
			if err := w.run(id); err != nil {
				return nil, err
			}
		}
		return w.res, nil
	}
	if err := w.run(start); err != nil {
		return nil, err
	}
	return w.res, nil
}

func newWalker(m *maze.Maze, o Options) *walker {
	n := m.Size()
	res := &Result{
		Order:     make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = maze.NoCell
	}
	return &walker{
		m:     m,
		opts:  o,
		res:   res,
		state: make([]int, n),
	}
}

// discover marks id Gray, records it and pushes its frame.
func (w *walker) discover(id, parent int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.state[id] = Gray
	w.res.Parent[id] = parent
	if parent == maze.NoCell {
		w.res.Depth[id] = 0
	} else {
		w.res.Depth[id] = w.res.Depth[parent] + 1
	}
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return err
		}
	}

	nbrs, _ := w.m.Neighbors(id) // id is in range
	w.stack = append(w.stack, frame{id: id, nbrs: nbrs})
	return nil
}

// run walks the tree rooted at root.
func (w *walker) run(root int) error {
	if err := w.discover(root, maze.NoCell); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) && !w.atDepthLimit(top.id) {
			nbr := top.nbrs[top.next]
			top.next++
			u := top.id
			switch w.state[nbr] {
			case White:
				if err := w.discover(nbr, u); err != nil {
					return err
				}
			case Gray:
				if nbr != w.res.Parent[u] && w.onBack != nil {
					w.onBack(u, nbr)
				}
			}
			continue
		}

		// every neighbour handled: finish the cell
		w.stack = w.stack[:len(w.stack)-1]
		w.state[top.id] = Black
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.id); err != nil {
				return err
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, top.id)
	}
	return nil
}

func (w *walker) atDepthLimit(id int) bool {
	return w.opts.MaxDepth >= 0 && w.res.Depth[id] >= w.opts.MaxDepth
}
