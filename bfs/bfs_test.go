package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/testgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBFS_Errors verifies that invalid options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(testgraph.Diamond(), "A", "D", bfs.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Diamond covers the canonical two-route scenario.
func TestBFS_Diamond(t *testing.T) {
	path, err := bfs.BFS(testgraph.Diamond(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "D"}, path)
}

// TestBFS_GoalNotExpanded checks the hook sees every expanded node but not
// the goal, which is returned on dequeue.
func TestBFS_GoalNotExpanded(t *testing.T) {
	var order []string
	path, err := bfs.BFS(testgraph.Diamond(), "A", "D",
		bfs.WithOnExpand(func(id string, _ int) { order = append(order, id) }))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "D"}, path)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestBFS_StartIsGoal returns [start] without expanding anything.
func TestBFS_StartIsGoal(t *testing.T) {
	expanded := 0
	path, err := bfs.BFS(testgraph.Diamond(), "A", "A",
		bfs.WithOnExpand(func(string, int) { expanded++ }))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A"}, path)
	assert.Zero(t, expanded)

	// also for a node the graph has never heard of
	path, err = bfs.BFS(nil, "Z", "Z")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"Z"}, path)
}

// TestBFS_NoPath covers an absent goal, a nil graph and a one-way edge.
func TestBFS_NoPath(t *testing.T) {
	cases := []struct {
		name        string
		g           core.Graph
		start, goal string
	}{
		{"absent goal", testgraph.Diamond(), "A", "Z"},
		{"nil graph", nil, "A", "B"},
		{"against direction", testgraph.Diamond(), "D", "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := bfs.BFS(tc.g, tc.start, tc.goal)
			assert.ErrorIs(t, err, core.ErrNoPath)
			assert.Nil(t, path)
		})
	}
}

// TestBFS_Cycle terminates on a cyclic graph and still finds the goal.
func TestBFS_Cycle(t *testing.T) {
	g := testgraph.Cycle(6)
	path, err := bfs.BFS(g, "v2", "v1")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"v2", "v3", "v4", "v5", "v0", "v1"}, path)

	g["v0"] = append(g["v0"], "v0") // self-loop
	_, err = bfs.BFS(g, "v0", "missing")
	assert.ErrorIs(t, err, core.ErrNoPath)
}

// TestBFS_ShortestProperty compares against a brute-force oracle.
func TestBFS_ShortestProperty(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := testgraph.Random(seed, 7, 0.3).Unweighted()
		for _, goal := range []string{"v3", "v6"} {
			want := testgraph.ShortestLen(g, "v0", goal)
			path, err := bfs.BFS(g, "v0", goal)
			if want < 0 {
				assert.ErrorIs(t, err, core.ErrNoPath, "seed %d goal %s", seed, goal)
				continue
			}
			require.NoError(t, err, "seed %d goal %s", seed, goal)
			assert.True(t, g.IsPath(path), "seed %d: %v is not a path", seed, path)
			assert.Equal(t, "v0", path.Start())
			assert.Equal(t, goal, path.End())
			assert.Equal(t, want, path.Len(), "seed %d goal %s", seed, goal)
		}
	}
}

// TestBFS_DuplicateEnqueue shows a node reached twice before its dequeue
// is still expanded only once.
func TestBFS_DuplicateEnqueue(t *testing.T) {
	g := core.Graph{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E"},
	}
	seen := map[string]int{}
	_, err := bfs.BFS(g, "A", "missing",
		bfs.WithOnExpand(func(id string, _ int) { seen[id]++ }))
	require.ErrorIs(t, err, core.ErrNoPath)
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1, "E": 1}, seen)
}

// TestBFS_Idempotent runs the same query twice on the same graph.
func TestBFS_Idempotent(t *testing.T) {
	g := testgraph.Random(3, 8, 0.35).Unweighted()
	first, err1 := bfs.BFS(g, "v0", "v7")
	second, err2 := bfs.BFS(g, "v0", "v7")
	assert.Equal(t, first, second)
	assert.Equal(t, err1, err2)
}

// TestBFS_LongChain exercises queue compaction on a long chain.
func TestBFS_LongChain(t *testing.T) {
	const n = 5000
	path, err := bfs.BFS(testgraph.Chain(n), "v0", testgraph.Name(n-1))
	require.NoError(t, err)
	assert.Len(t, path, n)
}

// TestBFS_MaxExpansions stops a search that needs more expansions.
func TestBFS_MaxExpansions(t *testing.T) {
	g := testgraph.Chain(10)
	_, err := bfs.BFS(g, "v0", "v9", bfs.WithMaxExpansions(3))
	assert.ErrorIs(t, err, bfs.ErrExpansionLimit)

	path, err := bfs.BFS(g, "v0", "v3", bfs.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.Len(t, path, 4)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(testgraph.Chain(100), "v0", "v99", bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

// TestBFS_ConcurrentSafety runs many searches over one shared graph.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := testgraph.Random(11, 9, 0.3).Unweighted()
	want, wantErr := bfs.BFS(g, "v0", "v8")

	type result struct {
		path core.Path
		err  error
	}
	results := make(chan result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			p, err := bfs.BFS(g, "v0", "v8")
			results <- result{p, err}
		}()
	}
	for i := 0; i < 8; i++ {
		r := <-results
		assert.Equal(t, want, r.path, fmt.Sprintf("run %d", i))
		assert.Equal(t, wantErr, r.err)
	}
}
