package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// LoadFile clears m and loads it from the named file.
// See Load for the format and failure semantics; an unreadable or missing
// file fails with ErrOpen.
func (m *Maze) LoadFile(path string) error {
	m.Clear()
	f, err := os.Open(path)
	if err != nil {
		return m.fail(&LoadError{Source: path, Position: -1, Err: ErrOpen, Cause: err})
	}
	defer f.Close()

	return m.load(f, path)
}

// Load clears m and rebuilds it from r.
//
// r holds whitespace-delimited unsigned integers: rows, cols, then rows*cols
// walls codes in row-major order, then the start and goal indices. Trailing
// tokens are ignored.
//
// On any failure m is left empty and a *LoadError is returned. Boundary faces
// left open by a walls code are not failures: each is recorded as a Defect,
// logged, and treated as walled.
//
// rows*cols is capped at DefaultMaxCells (16 777 216) unless the maze was
// built with WithMaxCells. A header above the cap fails with ErrTooLarge
// before any cell is allocated, so a 5000×5000 maze needs WithMaxCells(0),
// which lifts the cap and keeps only the int overflow check.
// Complexity: O(rows*cols).
func (m *Maze) Load(r io.Reader) error {
	m.Clear()
	return m.load(r, "")
}

func (m *Maze) load(r io.Reader, source string) error {
	tokens := newTokenReader(r)

	rows, err := tokens.next()
	if err != nil {
		return m.fail(&LoadError{Source: source, Position: -1, Err: ErrSize, Cause: err})
	}
	cols, err := tokens.next()
	if err != nil {
		return m.fail(&LoadError{Source: source, Position: -1, Err: ErrSize, Cause: err})
	}
	grid, err := gridgraph.New(rows, cols)
	if err != nil {
		return m.fail(&LoadError{Source: source, Position: -1, Err: ErrTooLarge, Cause: err})
	}
	size := grid.Size()
	if m.maxCells > 0 && size > m.maxCells {
		return m.fail(&LoadError{
			Source:   source,
			Position: -1,
			Err:      ErrTooLarge,
			Cause:    fmt.Errorf("%d×%d cells, limit %d", rows, cols, m.maxCells),
		})
	}

	cells := make([]Cell, size)
	var defects []Defect
	for n := 0; n < size; n++ {
		v, err := tokens.next()
		if errors.Is(err, strconv.ErrRange) {
			return m.fail(&LoadError{Source: source, Position: n, Err: ErrWallCodeRange, Cause: err})
		}
		if err != nil {
			return m.fail(&LoadError{Source: source, Position: n, Err: ErrWallCode, Cause: err})
		}
		if v > int(gridgraph.MaxWallCode) {
			return m.fail(&LoadError{Source: source, Position: n, Err: ErrWallCodeRange, Cause: fmt.Errorf("code %d", v)})
		}
		code := gridgraph.WallCode(v)

		cells[n] = newCell(n)
		for _, d := range gridgraph.Directions {
			if grid.OnBoundary(n, d) {
				if code.Open(d) {
					defect := Defect{Index: n, Face: d, Code: code}
					defects = append(defects, defect)
					m.log.Info("walls code repaired at maze boundary",
						"index", n, "face", d.String(), "code", int(code), "source", source)
				}
				continue
			}
			if code.Open(d) {
				nb, _ := grid.Step(n, d)
				cells[n].AddNeighbor(nb)
			}
		}
	}

	start, err := tokens.next()
	if err != nil {
		return m.fail(&LoadError{Source: source, Position: -1, Err: ErrEndpoints, Cause: err})
	}
	goal, err := tokens.next()
	if err != nil {
		return m.fail(&LoadError{Source: source, Position: -1, Err: ErrEndpoints, Cause: err})
	}
	if start >= size || goal >= size {
		return m.fail(&LoadError{
			Source:   source,
			Position: -1,
			Err:      ErrEndpointRange,
			Cause:    fmt.Errorf("start %d, goal %d, cells %d", start, goal, size),
		})
	}

	m.grid = grid
	m.cells = cells
	m.start = start
	m.goal = goal
	m.defects = defects
	m.log.V(1).Info("maze loaded",
		"rows", rows, "cols", cols, "start", start, "goal", goal, "defects", len(defects), "source", source)

	return nil
}

// fail resets m, logs err and returns it.
func (m *Maze) fail(err *LoadError) error {
	m.Clear()
	m.log.Error(err, "maze load failed", "source", err.Source)
	return err
}

// tokenReader yields whitespace-delimited unsigned integers.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next parses the next token as a non-negative int. Running out of input
// yields io.ErrUnexpectedEOF.
func (t *tokenReader) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseUint(t.sc.Text(), 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
