package app

import (
	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// Point is a cell with its coordinates.
type Point struct {
	ID  int `yaml:"id"`
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Report is the structured outcome of one run.
type Report struct {
	Maze        string   `yaml:"maze"`
	Rows        int      `yaml:"rows"`
	Cols        int      `yaml:"cols"`
	Start       Point    `yaml:"start,flow"`
	Goal        Point    `yaml:"goal,flow"`
	Found       bool     `yaml:"found"`
	Length      int      `yaml:"length"`
	Path        []int    `yaml:"path,flow"`
	Expanded    int      `yaml:"expanded"`
	Components  int      `yaml:"components"`
	Loops       int      `yaml:"loops"`
	Perfect     bool     `yaml:"perfect"`
	Defects     []string `yaml:"defects,omitempty"`
	Consistent  *bool    `yaml:"consistent,omitempty"`
	Asymmetries []string `yaml:"asymmetries,omitempty"`
}

func newPoint(g gridgraph.Grid, id int) Point {
	r, c := g.Coordinate(id)
	return Point{ID: id, Row: r, Col: c}
}

// newReport summarizes a solved maze. asym is nil unless validation ran.
func newReport(path string, m *maze.Maze, res *bfs.Result, asym []error) Report {
	g := m.Grid()
	start, _ := m.Start()
	goal, _ := m.Goal()
	rep := Report{
		Maze:       path,
		Rows:       m.Rows(),
		Cols:       m.Cols(),
		Start:      newPoint(g, start),
		Goal:       newPoint(g, goal),
		Found:      res.Found,
		Length:     res.Len(),
		Path:       res.Path,
		Expanded:   len(res.Order),
		Components: len(m.Components()),
	}
	if loops, err := dfs.Loops(m); err == nil {
		rep.Loops = len(loops)
		rep.Perfect = !m.Empty() && rep.Components == 1 && rep.Loops == 0
	}
	if rep.Path == nil {
		rep.Path = []int{}
	}
	for _, d := range m.Defects() {
		rep.Defects = append(rep.Defects, d.String())
	}
	if asym != nil {
		ok := len(asym) == 0
		rep.Consistent = &ok
		for _, e := range asym {
			rep.Asymmetries = append(rep.Asymmetries, e.Error())
		}
	}
	return rep
}

// dumpView is the value handed to spew for -dump.
type dumpView struct {
	Rows, Cols  int
	Start, Goal int
	Cells       []maze.Cell
	Defects     []maze.Defect
}

func newDumpView(m *maze.Maze) dumpView {
	start, _ := m.Start()
	goal, _ := m.Goal()
	return dumpView{
		Rows:    m.Rows(),
		Cols:    m.Cols(),
		Start:   start,
		Goal:    goal,
		Cells:   m.Cells(),
		Defects: m.Defects(),
	}
}
