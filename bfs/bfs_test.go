package bfs_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/internal/mazetest"
	"github.com/katalvlaran/lvmaze/maze"
)

const fixtures = "../maze/testdata/"

// load reads a fixture from the maze package's testdata.
func load(t *testing.T, name string, opts ...maze.Option) *maze.Maze {
	t.Helper()
	m := maze.New(opts...)
	require.NoError(t, m.LoadFile(fixtures+name))
	return m
}

// oracleDistance computes the edge distance between two cells with gonum,
// independently of this package. Unreachable pairs return +Inf.
func oracleDistance(t *testing.T, m *maze.Maze, from, to int) float64 {
	t.Helper()
	g := simple.NewUndirectedGraph()
	for i := 0; i < m.Size(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < m.Size(); i++ {
		nbrs, err := m.Neighbors(i)
		require.NoError(t, err)
		for _, n := range nbrs {
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(n)})
		}
	}
	return path.DijkstraFrom(simple.Node(from), g).WeightTo(int64(to))
}

// SolveSuite exercises Solve on the shared fixtures.
type SolveSuite struct {
	suite.Suite
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestErrors verifies nil and unloaded mazes are rejected distinctly.
func (s *SolveSuite) TestErrors() {
	_, err := bfs.Solve(nil)
	s.Require().ErrorIs(err, bfs.ErrGraphNil)

	var lines []string
	log := funcr.New(func(_, args string) { lines = append(lines, args) }, funcr.Options{})
	res, err := bfs.Solve(maze.New(maze.WithLogger(log)))
	s.Require().ErrorIs(err, bfs.ErrInvalidStart)
	s.Require().Empty(res.Path)
	s.Require().False(res.Found)
	s.Require().Equal(-1, res.Len())
	s.Require().Contains(strings.Join(lines, "\n"), "no solution -- invalid start")
}

// TestInvalidStartAfterFailedLoad checks that a failed load leaves no start.
func (s *SolveSuite) TestInvalidStartAfterFailedLoad() {
	m := load(s.T(), "maze2x2.txt")
	s.Require().Error(m.Load(strings.NewReader("2 2 9 3")))
	_, err := bfs.Solve(m)
	s.Require().ErrorIs(err, bfs.ErrInvalidStart)
}

// TestTwoByTwo solves the [9 3 12 6] maze: East is scanned before South.
func (s *SolveSuite) TestTwoByTwo() {
	m := load(s.T(), "maze2x2.txt")
	res, err := bfs.Solve(m)
	s.Require().NoError(err)
	s.Require().True(res.Found)
	s.Require().Equal([]int{0, 1, 3}, res.Path)
	s.Require().Equal(2, res.Len())
	s.Require().Equal([][2]int{{0, 0}, {0, 1}, {1, 1}}, res.Coordinates(m.Grid()))
	s.Require().Equal([]int{0, 1, 2, 3}, res.Order)
}

// TestFixturePaths pins the path found in the larger fixtures.
func (s *SolveSuite) TestFixturePaths() {
	cases := []struct {
		file string
		want []int
	}{
		{"maze4x4.txt", []int{0, 1, 5, 4, 8, 9, 10, 11, 15, 14}},
		{"maze5x6.txt", []int{0, 6, 7, 8, 14, 20, 19, 25, 26, 27, 21, 22, 28, 29}},
		{"defect2x2.txt", []int{0, 1, 3}},
	}
	for _, tc := range cases {
		res, err := bfs.Solve(load(s.T(), tc.file))
		s.Require().NoError(err, tc.file)
		s.Require().Equal(tc.want, res.Path, tc.file)
	}
}

// TestUnreachable returns an empty path and no error.
func (s *SolveSuite) TestUnreachable() {
	m := load(s.T(), "disconnected3x3.txt")
	res, err := bfs.Solve(m)
	s.Require().NoError(err)
	s.Require().False(res.Found)
	s.Require().Empty(res.Path)
	s.Require().Equal(-1, res.Depth[8])
	s.Require().ElementsMatch([]int{0, 3, 6}, res.Order)
}

// TestStartIsGoal yields the single-cell path.
func (s *SolveSuite) TestStartIsGoal() {
	m := load(s.T(), "maze4x4.txt")
	s.Require().NoError(m.SetGoal(0))
	res, err := bfs.Solve(m)
	s.Require().NoError(err)
	s.Require().Equal([]int{0}, res.Path)
	s.Require().Zero(res.Len())
}

// TestShortestAgainstOracle compares every start/goal pair with gonum.
func (s *SolveSuite) TestShortestAgainstOracle() {
	for _, f := range []string{"maze4x4.txt", "maze5x6.txt", "disconnected3x3.txt"} {
		m := load(s.T(), f)
		for from := 0; from < m.Size(); from++ {
			for to := 0; to < m.Size(); to++ {
				s.Require().NoError(m.SetStart(from))
				s.Require().NoError(m.SetGoal(to))
				res, err := bfs.Solve(m)
				s.Require().NoError(err)

				want := oracleDistance(s.T(), m, from, to)
				if math.IsInf(want, 1) {
					s.Require().False(res.Found, "%s %d→%d", f, from, to)
					continue
				}
				s.Require().True(res.Found, "%s %d→%d", f, from, to)
				s.Require().Equal(int(want), res.Len(), "%s %d→%d", f, from, to)
				s.requireWalk(m, res.Path, from, to)
			}
		}
	}
}

// TestGeneratedAgainstOracle solves braided mazes from several seeds.
func (s *SolveSuite) TestGeneratedAgainstOracle() {
	for seed := int64(1); seed <= 5; seed++ {
		l, err := mazetest.BuildMaze(6, 7, []mazetest.BuilderOption{mazetest.WithSeed(seed)},
			mazetest.Backtracker(), mazetest.Braid(0.2))
		s.Require().NoError(err)
		m, err := l.Maze()
		s.Require().NoError(err)

		for to := 0; to < m.Size(); to++ {
			s.Require().NoError(m.SetGoal(to))
			res, err := bfs.Solve(m, bfs.WithDetachedState())
			s.Require().NoError(err)
			s.Require().True(res.Found, "seed %d goal %d", seed, to)
			s.Require().Equal(int(oracleDistance(s.T(), m, 0, to)), res.Len(), "seed %d goal %d", seed, to)
			s.requireWalk(m, res.Path, 0, to)
		}
	}
}

// requireWalk checks that consecutive path cells are neighbours.
func (s *SolveSuite) requireWalk(m *maze.Maze, p []int, from, to int) {
	s.Require().Equal(from, p[0])
	s.Require().Equal(to, p[len(p)-1])
	for i := 1; i < len(p); i++ {
		c, err := m.Cell(p[i-1])
		s.Require().NoError(err)
		s.Require().True(c.IsNeighbor(p[i]), "%d→%d is not an edge", p[i-1], p[i])
	}
}

// TestDeterminism solves the same maze repeatedly.
func (s *SolveSuite) TestDeterminism() {
	m := load(s.T(), "maze5x6.txt")
	first, err := bfs.Solve(m)
	s.Require().NoError(err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Solve(m)
		s.Require().NoError(err)
		if diff := cmp.Diff(first, again); diff != "" {
			s.T().Fatalf("solve %d differs (-first +again):\n%s", i, diff)
		}
	}
}

// TestBacktrackChain inspects the parent links left on the cells.
func (s *SolveSuite) TestBacktrackChain() {
	m := load(s.T(), "maze4x4.txt")
	res, err := bfs.Solve(m)
	s.Require().NoError(err)

	var chain []int
	for cur, ok := res.Path[len(res.Path)-1], true; ok; {
		chain = append([]int{cur}, chain...)
		c, err := m.Cell(cur)
		s.Require().NoError(err)
		s.Require().True(c.Visited())
		cur, ok = c.Parent()
	}
	s.Require().Equal(res.Path, chain)

	for id := 0; id < m.Size(); id++ {
		c, _ := m.Cell(id)
		s.Require().Equal(res.Depth[id] >= 0, c.Visited(), "cell %d", id)
		p, _ := c.Parent()
		s.Require().Equal(res.Parent[id], p, "cell %d", id)
	}
}

// TestResetBetweenSolves checks stale visited flags never leak.
func (s *SolveSuite) TestResetBetweenSolves() {
	m := load(s.T(), "maze4x4.txt")
	_, err := bfs.Solve(m)
	s.Require().NoError(err)

	s.Require().NoError(m.SetGoal(1))
	res, err := bfs.Solve(m)
	s.Require().NoError(err)
	s.Require().Equal([]int{0, 1}, res.Path)

	c14, _ := m.Cell(14)
	s.Require().False(c14.Visited(), "cell 14 was only visited by the previous solve")
	_, ok := c14.Parent()
	s.Require().False(ok)
}

// TestDetachedState leaves the maze untouched and agrees with in-place solving.
func (s *SolveSuite) TestDetachedState() {
	m := load(s.T(), "maze5x6.txt")
	before := m.Cells()

	detached, err := bfs.Solve(m, bfs.WithDetachedState())
	s.Require().NoError(err)
	if diff := cmp.Diff(before, m.Cells(), cmp.AllowUnexported(maze.Cell{})); diff != "" {
		s.T().Fatalf("detached solve mutated cells:\n%s", diff)
	}

	inPlace, err := bfs.Solve(m)
	s.Require().NoError(err)
	if diff := cmp.Diff(inPlace, detached); diff != "" {
		s.T().Fatalf("results differ (-in-place +detached):\n%s", diff)
	}
}

// TestHooks asserts BFS layering: depths never decrease and no cell is
// enqueued twice.
func (s *SolveSuite) TestHooks() {
	m := load(s.T(), "maze5x6.txt")
	s.Require().NoError(m.SetGoal(5))

	var enq, deq []int
	last := 0
	seen := map[int]bool{}
	res, err := bfs.Solve(m,
		bfs.WithOnEnqueue(func(id, d int) {
			s.Require().False(seen[id], "cell %d enqueued twice", id)
			seen[id] = true
			s.Require().GreaterOrEqual(d, last)
			last = d
			enq = append(enq, id)
		}),
		bfs.WithOnDequeue(func(id, d int) { deq = append(deq, id) }),
	)
	s.Require().NoError(err)
	s.Require().Equal(res.Order, deq)
	s.Require().Equal(deq, enq[:len(deq)], "frontier is FIFO")
	for i := 1; i < len(res.Order); i++ {
		s.Require().LessOrEqual(res.Depth[res.Order[i-1]], res.Depth[res.Order[i]])
	}
}

// TestContextCancelled aborts before the first expansion.
func (s *SolveSuite) TestContextCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.Solve(load(s.T(), "maze4x4.txt"), bfs.WithContext(ctx))
	s.Require().True(errors.Is(err, context.Canceled))
	s.Require().False(res.Found)
	s.Require().Empty(res.Path)
}

// TestPathTo rebuilds intermediate paths from the result.
func (s *SolveSuite) TestPathTo() {
	res, err := bfs.Solve(load(s.T(), "maze4x4.txt"))
	s.Require().NoError(err)

	p, err := res.PathTo(8)
	s.Require().NoError(err)
	s.Require().Equal([]int{0, 1, 5, 4, 8}, p)

	p, err = res.PathTo(0)
	s.Require().NoError(err)
	s.Require().Equal([]int{0}, p)

	_, err = res.PathTo(-3)
	s.Require().ErrorIs(err, bfs.ErrNotReached)

	res, err = bfs.Solve(load(s.T(), "disconnected3x3.txt"))
	s.Require().NoError(err)
	_, err = res.PathTo(8)
	s.Require().ErrorIs(err, bfs.ErrNotReached)
}
