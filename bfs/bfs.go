// Package bfs provides breadth-first search over a maze.Maze, returning a
// shortest start→goal path together with depths, parent links and the
// expansion order.
package bfs

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvmaze/maze"
)

// searchState stores visited flags and backtrack links for one solve.
type searchState interface {
	reset()
	visit(id, parent int)
	parent(id int) int
	next(id int) (int, bool)
}

// walker encapsulates mutable BFS state.
type walker struct {
	state searchState
	opts  Options
	ctx   context.Context
	log   logr.Logger
	goal  int
	queue []int
	res   *Result
}

// Solve runs breadth-first search on m from its start cell to its goal cell,
// applying any number of functional Options.
// Returns ErrGraphNil for a nil maze and ErrInvalidStart, with an empty
// Result, when the start is unset. An unreachable goal is not an error: the
// Result has no Path and Found is false. Cancellation of the context aborts
// the search with the context's error.
func Solve(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var state searchState
	if o.Detached {
		state = newTableState(m)
	} else {
		state = &cellState{m: m}
	}
	state.reset()

	log := m.Logger()
	start, ok := m.Start()
	if !ok {
		log.Info("no solution -- invalid start")
		return &Result{}, ErrInvalidStart
	}
	goal, _ := m.Goal() // NoCell when unset: never matches a front cell

	n := m.Size()
	w := &walker{
		state: state,
		opts:  o,
		ctx:   o.Ctx,
		log:   log,
		goal:  goal,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, maze.NoCell)
	err := w.loop()
	w.collectParents()
	log.V(1).Info("solve finished",
		"start", start, "goal", goal, "found", w.res.Found, "expanded", len(w.res.Order), "length", w.res.Len())

	return w.res, err
}

// enqueue marks id visited with the given parent, records its depth,
// calls OnEnqueue and appends it to the frontier.
func (w *walker) enqueue(id, parent int) {
	w.state.visit(id, parent)
	d := 0
	if parent != maze.NoCell {
		d = w.res.Depth[parent] + 1
	}
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// loop expands the frontier until the goal reaches the front, the frontier
// empties, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		front := w.queue[0]
		w.opts.OnDequeue(front, w.res.Depth[front])
		w.res.Order = append(w.res.Order, front)

		if front == w.goal {
			w.res.Found = true
			w.res.Path = w.backtrack()
			return nil
		}

		// drain every unvisited neighbour before popping front
		for {
			nbr, ok := w.state.next(front)
			if !ok {
				break
			}
			w.enqueue(nbr, front)
		}
		w.queue = w.queue[1:]
	}
	w.log.V(1).Info("goal unreachable", "goal", w.goal)
	return nil
}

// backtrack walks parent links from the goal and returns the start→goal path.
func (w *walker) backtrack() []int {
	path := make([]int, 0, w.res.Depth[w.goal]+1)
	for cur := w.goal; cur != maze.NoCell; cur = w.state.parent(cur) {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// collectParents copies backtrack links into the Result.
func (w *walker) collectParents() {
	for i := range w.res.Parent {
		w.res.Parent[i] = w.state.parent(i)
	}
}

// cellState keeps search state on the maze cells themselves.
type cellState struct {
	m *maze.Maze
}

func (s *cellState) reset() {
	s.m.ResetSearch()
}

func (s *cellState) visit(id, parent int) {
	c, err := s.m.Cell(id)
	if err != nil {
		return
	}
	c.SetVisited()
	if parent == maze.NoCell {
		c.ClearParent()
	} else {
		c.SetParent(parent)
	}
}

func (s *cellState) parent(id int) int {
	c, err := s.m.Cell(id)
	if err != nil {
		return maze.NoCell
	}
	p, _ := c.Parent()
	return p
}

func (s *cellState) next(id int) (int, bool) {
	return s.m.NextUnvisitedNeighbor(id)
}

// tableState keeps search state in slices indexed by cell id and never
// writes to the maze.
type tableState struct {
	adj     [][]int
	seen    []bool
	parents []int
}

func newTableState(m *maze.Maze) *tableState {
	n := m.Size()
	s := &tableState{
		adj:     make([][]int, n),
		seen:    make([]bool, n),
		parents: make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.adj[i], _ = m.Neighbors(i)
	}
	return s
}

func (s *tableState) reset() {
	for i := range s.seen {
		s.seen[i] = false
		s.parents[i] = maze.NoCell
	}
}

func (s *tableState) visit(id, parent int) {
	s.seen[id] = true
	s.parents[id] = parent
}

func (s *tableState) parent(id int) int {
	return s.parents[id]
}

func (s *tableState) next(id int) (int, bool) {
	for _, n := range s.adj[id] {
		if n >= 0 && n < len(s.seen) && !s.seen[n] {
			return n, true
		}
	}
	return maze.NoCell, false
}
