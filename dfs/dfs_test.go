package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/internal/mazetest"
	"github.com/katalvlaran/lvmaze/maze"
)

func load(t testing.TB, src string) *maze.Maze {
	t.Helper()
	m := maze.New()
	require.NoError(t, m.Load(strings.NewReader(src)))
	return m
}

func loadFile(t testing.TB, name string) *maze.Maze {
	t.Helper()
	m := maze.New()
	require.NoError(t, m.LoadFile("../maze/testdata/"+name))
	return m
}

// ring is a 3×3 loop around a sealed centre cell.
const ring = "3 3  9 5 3  10 15 10  12 5 6  0 8"

func TestWalk_NilMaze(t *testing.T) {
	res, err := dfs.Walk(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestWalk_StartNotFound(t *testing.T) {
	m := load(t, ring)
	for _, start := range []int{-1, 9} {
		res, err := dfs.Walk(m, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	}
}

// TestWalk_Orders follows N, E, S, W adjacency order.
func TestWalk_Orders(t *testing.T) {
	m := loadFile(t, "maze4x4.txt")

	res, err := dfs.Walk(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 7, 6, 5, 4, 8, 9, 10, 11, 15, 14, 13, 12}, res.Order)
	assert.Equal(t, []int{14, 15, 11, 10, 12, 13, 9, 8, 4, 5, 6, 7, 3, 2, 1, 0}, res.PostOrder)
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, 11, res.Depth[12])
	assert.Equal(t, maze.NoCell, res.Parent[0])
	assert.Equal(t, 13, res.Parent[12])
}

// TestWalk_LeavesSearchState keeps cell flags untouched.
func TestWalk_LeavesSearchState(t *testing.T) {
	m := load(t, ring)
	_, err := dfs.Walk(m, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	for _, c := range m.Cells() {
		assert.False(t, c.Visited(), "cell %d", c.ID())
		_, ok := c.Parent()
		assert.False(t, ok, "cell %d", c.ID())
	}
}

// TestWalk_SingleComponent skips cells not reachable from start.
func TestWalk_SingleComponent(t *testing.T) {
	m := loadFile(t, "disconnected3x3.txt")

	res, err := dfs.Walk(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6}, res.Order)
	assert.False(t, res.Visited(1))
	assert.False(t, res.Visited(99))
	assert.Equal(t, -1, res.Depth[8])
}

// TestWalk_FullTraversal covers every component.
func TestWalk_FullTraversal(t *testing.T) {
	m := load(t, ring)

	res, err := dfs.Walk(m, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8, 7, 6, 3, 4}, res.Order)
	assert.Equal(t, []int{3, 6, 7, 8, 5, 2, 1, 0, 4}, res.PostOrder)
	assert.Equal(t, 0, res.Depth[4], "sealed cell is its own root")
	assert.Equal(t, maze.NoCell, res.Parent[4])
}

func TestWalk_MaxDepth(t *testing.T) {
	m := load(t, ring)

	res, err := dfs.Walk(m, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)

	res, err = dfs.Walk(m, 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 6}, res.Order)
}

func TestWalk_Hooks(t *testing.T) {
	m := load(t, "1 3  13 5 7  0 2")

	var pre, post []int
	res, err := dfs.Walk(m, 1,
		dfs.WithOnVisit(func(id int) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id int) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, pre)
	assert.Equal(t, res.PostOrder, post)
	assert.Equal(t, []int{1, 2, 0}, pre)

	boom := errors.New("boom")
	_, err = dfs.Walk(m, 0, dfs.WithOnVisit(func(id int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.Walk(m, 0, dfs.WithOnExit(func(int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestWalk_Canceled(t *testing.T) {
	m := loadFile(t, "maze5x6.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.Walk(m, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestLoops reports exactly the edges outside the spanning forest.
func TestLoops(t *testing.T) {
	cases := []struct {
		name string
		m    *maze.Maze
		want []dfs.Edge
	}{
		{"Ring", load(t, ring), []dfs.Edge{{From: 0, To: 3}}},
		{"TwoByTwo", loadFile(t, "maze2x2.txt"), []dfs.Edge{{From: 0, To: 2}}},
		{"FourByFour", loadFile(t, "maze4x4.txt"), []dfs.Edge{{From: 1, To: 5}}},
		{"FiveBySix", loadFile(t, "maze5x6.txt"), []dfs.Edge{{From: 14, To: 20}}},
		{"Disconnected", loadFile(t, "disconnected3x3.txt"), []dfs.Edge{{From: 1, To: 4}}},
		{"Corridor", load(t, "1 3  13 5 7  0 2"), nil},
		{"Empty", maze.New(), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.Loops(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := dfs.Loops(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestLoops_CycleRank matches E - V + C on every fixture.
func TestLoops_CycleRank(t *testing.T) {
	mazes := map[string]*maze.Maze{}
	for _, name := range []string{"maze2x2.txt", "maze4x4.txt", "maze5x6.txt", "disconnected3x3.txt"} {
		mazes[name] = loadFile(t, name)
	}
	for seed := int64(1); seed <= 4; seed++ {
		l, err := mazetest.BuildMaze(9, 7, []mazetest.BuilderOption{mazetest.WithSeed(seed)},
			mazetest.Kruskal(), mazetest.Braid(0.25))
		require.NoError(t, err)
		m, err := l.Maze()
		require.NoError(t, err)
		mazes[fmt.Sprintf("braided seed %d", seed)] = m
	}

	for name, m := range mazes {
		edges := 0
		for id := 0; id < m.Size(); id++ {
			nbrs, err := m.Neighbors(id)
			require.NoError(t, err)
			edges += len(nbrs)
		}
		edges /= 2

		loops, err := dfs.Loops(m)
		require.NoError(t, err)
		assert.Equal(t, edges-m.Size()+len(m.Components()), len(loops), name)
	}
}

func TestIsPerfect(t *testing.T) {
	assert.True(t, dfs.IsPerfect(load(t, "1 3  13 5 7  0 2")))
	assert.True(t, dfs.IsPerfect(load(t, "1 1  15  0 0")))
	assert.False(t, dfs.IsPerfect(load(t, ring)), "loop and sealed cell")
	assert.False(t, dfs.IsPerfect(loadFile(t, "maze4x4.txt")), "one loop")
	assert.False(t, dfs.IsPerfect(load(t, "1 2  15 15  0 1")), "two components")
	assert.False(t, dfs.IsPerfect(maze.New()))
	assert.False(t, dfs.IsPerfect(nil))
}
