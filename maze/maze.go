package maze

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Maze owns every Cell of a rectangular maze plus the start and goal cells.
// The zero value is not usable; call New.
type Maze struct {
	grid    gridgraph.Grid
	cells   []Cell
	start   int
	goal    int
	defects []Defect

	log      logr.Logger
	maxCells int
}

// New returns an empty Maze configured by opts.
func New(opts ...Option) *Maze {
	m := &Maze{
		start:    NoCell,
		goal:     NoCell,
		log:      logr.Discard(),
		maxCells: DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Clear drops every cell and resets the maze to its empty state:
// zero rows and columns, no start, no goal, no defects. Options are kept.
func (m *Maze) Clear() {
	for i := range m.cells {
		m.cells[i].Clear()
	}
	m.grid = gridgraph.Grid{}
	m.cells = nil
	m.start = NoCell
	m.goal = NoCell
	m.defects = nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.grid.Rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.grid.Cols }

// Size returns the number of cells.
func (m *Maze) Size() int { return len(m.cells) }

// Empty reports whether the maze holds no cells.
func (m *Maze) Empty() bool { return len(m.cells) == 0 }

// Grid returns the geometry of the maze.
func (m *Maze) Grid() gridgraph.Grid { return m.grid }

// Logger returns the logger the maze was built with.
func (m *Maze) Logger() logr.Logger { return m.log }

// Start returns the start cell; false if unset.
func (m *Maze) Start() (int, bool) {
	return m.start, m.start != NoCell
}

// Goal returns the goal cell; false if unset.
func (m *Maze) Goal() (int, bool) {
	return m.goal, m.goal != NoCell
}

// SetStart moves the start cell. Returns ErrCellOutOfRange for a bad index.
func (m *Maze) SetStart(id int) error {
	if !m.contains(id) {
		return fmt.Errorf("%w: start %d", ErrCellOutOfRange, id)
	}
	m.start = id
	return nil
}

// SetGoal moves the goal cell. Returns ErrCellOutOfRange for a bad index.
func (m *Maze) SetGoal(id int) error {
	if !m.contains(id) {
		return fmt.Errorf("%w: goal %d", ErrCellOutOfRange, id)
	}
	m.goal = id
	return nil
}

// Cell returns the cell with the given id. The pointer aliases the arena and
// stays valid until the next Load or Clear.
func (m *Maze) Cell(id int) (*Cell, error) {
	if !m.contains(id) {
		return nil, fmt.Errorf("%w: %d", ErrCellOutOfRange, id)
	}
	return &m.cells[id], nil
}

// Cells returns a deep copy of the arena.
func (m *Maze) Cells() []Cell {
	if m.cells == nil {
		return nil
	}
	out := make([]Cell, len(m.cells))
	for i := range m.cells {
		out[i] = m.cells[i].clone()
	}
	return out
}

// Neighbors returns the neighbour ids of cell id in insertion order.
func (m *Maze) Neighbors(id int) ([]int, error) {
	c, err := m.Cell(id)
	if err != nil {
		return nil, err
	}
	return c.Neighbors(), nil
}

// Defects returns the boundary repairs made by the last successful load.
func (m *Maze) Defects() []Defect {
	out := make([]Defect, len(m.defects))
	copy(out, m.defects)
	return out
}

// NextUnvisitedNeighbor scans the neighbours of cell id in insertion order
// and returns the first whose visited flag is false. Calling it again
// without changing any visited flag returns the same answer.
// Neighbour entries outside the arena are skipped.
func (m *Maze) NextUnvisitedNeighbor(id int) (int, bool) {
	if !m.contains(id) {
		return NoCell, false
	}
	for _, n := range m.cells[id].neighbors {
		if m.contains(n) && !m.cells[n].visited {
			return n, true
		}
	}
	return NoCell, false
}

// ResetSearch clears the visited flag and parent link of every cell.
func (m *Maze) ResetSearch() {
	for i := range m.cells {
		m.cells[i].UnsetVisited()
		m.cells[i].ClearParent()
	}
}

// WallCode recomputes the effective walls code of cell id from its adjacency:
// a face is open only when the cell lists the neighbour across it. Boundary
// faces are always walled.
func (m *Maze) WallCode(id int) (gridgraph.WallCode, error) {
	c, err := m.Cell(id)
	if err != nil {
		return 0, err
	}
	code := gridgraph.Closed
	for _, d := range gridgraph.Directions {
		if n, ok := m.grid.Step(id, d); ok && c.IsNeighbor(n) {
			code = code.Without(d)
		}
	}
	return code, nil
}

// Clone returns a deep copy of m, including search state and options.
// Clones share nothing, so each can be solved independently.
func (m *Maze) Clone() *Maze {
	out := *m
	out.cells = m.Cells()
	if m.defects != nil {
		out.defects = m.Defects()
	}
	return &out
}

// Components returns the connected components of the adjacency graph.
// Components are listed in order of their lowest cell index; cells within a
// component are in breadth-first discovery order.
// On an inconsistent maze the result follows neighbour lists as stored.
// Time: O(N). Memory: O(N).
func (m *Maze) Components() [][]int {
	seen := make([]bool, len(m.cells))
	var comps [][]int

	for i0 := range m.cells {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range m.cells[queue[qi]].neighbors {
				if m.contains(v) && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether b is reachable from a by following neighbour
// lists. Time: O(N).
func (m *Maze) Connected(a, b int) bool {
	if !m.contains(a) || !m.contains(b) {
		return false
	}
	seen := make([]bool, len(m.cells))
	queue := []int{a}
	seen[a] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, v := range m.cells[u].neighbors {
			if m.contains(v) && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

func (m *Maze) contains(id int) bool {
	return id >= 0 && id < len(m.cells)
}
