package maze

// Cell is one maze location. Its neighbour list and parent link are indices
// into the owning Maze's arena. A Cell never owns another Cell.
type Cell struct {
	id        int
	neighbors []int
	visited   bool
	parent    int
}

// newCell returns a cell with identity id and no search state.
func newCell(id int) Cell {
	return Cell{id: id, parent: NoCell}
}

// ID returns the row-major index of the cell.
func (c *Cell) ID() int {
	return c.id
}

// AddNeighbor appends id to the neighbour list. Duplicates are not checked;
// keeping the list free of them is the graph's job.
func (c *Cell) AddNeighbor(id int) {
	c.neighbors = append(c.neighbors, id)
}

// Neighbors returns a copy of the neighbour ids in insertion order.
func (c *Cell) Neighbors() []int {
	out := make([]int, len(c.neighbors))
	copy(out, c.neighbors)
	return out
}

// Degree returns the number of neighbour entries.
func (c *Cell) Degree() int {
	return len(c.neighbors)
}

// IsNeighbor reports whether id appears in the neighbour list.
// Complexity: O(degree).
func (c *Cell) IsNeighbor(id int) bool {
	for _, n := range c.neighbors {
		if n == id {
			return true
		}
	}
	return false
}

// Visited reports the search flag.
func (c *Cell) Visited() bool {
	return c.visited
}

// SetVisited marks the cell as reached by the current search.
func (c *Cell) SetVisited() {
	c.visited = true
}

// UnsetVisited clears the search flag.
func (c *Cell) UnsetVisited() {
	c.visited = false
}

// Parent returns the backtrack link. The boolean is false for the start cell
// and for cells the search has not reached.
func (c *Cell) Parent() (int, bool) {
	return c.parent, c.parent != NoCell
}

// SetParent records the cell that first discovered this one.
func (c *Cell) SetParent(id int) {
	c.parent = id
}

// ClearParent removes the backtrack link.
func (c *Cell) ClearParent() {
	c.parent = NoCell
}

// Clear resets identity, neighbours and search state.
func (c *Cell) Clear() {
	c.id = 0
	c.neighbors = nil
	c.visited = false
	c.parent = NoCell
}

// clone returns a deep copy of c.
func (c *Cell) clone() Cell {
	out := *c
	if c.neighbors != nil {
		out.neighbors = make([]int, len(c.neighbors))
		copy(out.neighbors, c.neighbors)
	}
	return out
}
