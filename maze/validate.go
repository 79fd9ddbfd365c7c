package maze

import (
	"errors"

	"go.uber.org/multierr"
)

// Validate checks that adjacency is symmetric: whenever cell A lists B, B
// lists A. Every offending pair is reported as an *AsymmetryError; the
// result combines them with multierr (use multierr.Errors to split it).
// A neighbour entry outside the arena counts as an asymmetry.
// Validate is read-only and is never run by Load or by a solve.
// Complexity: O(N·d²) with d ≤ 4.
func (m *Maze) Validate() error {
	var err error
	for i := range m.cells {
		for _, n := range m.cells[i].neighbors {
			if !m.contains(n) || !m.cells[n].IsNeighbor(i) {
				err = multierr.Append(err, &AsymmetryError{From: i, To: n})
			}
		}
	}
	return err
}

// IsConsistent runs Validate, logs each asymmetric pair, and reports
// whether none were found.
func (m *Maze) IsConsistent() bool {
	err := m.Validate()
	for _, e := range multierr.Errors(err) {
		var asym *AsymmetryError
		if errors.As(e, &asym) {
			m.log.Info("neighbor asymmetry", "from", asym.From, "to", asym.To)
		}
	}
	return err == nil
}
