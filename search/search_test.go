package search_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/testgraph"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamondGraphs() search.Graphs {
	return search.Graphs{
		Unweighted: testgraph.Diamond(),
		Weighted:   testgraph.WeightedDiamond(),
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range search.Algorithms() {
		got, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := search.ParseAlgorithm("  BIDIR ")
	require.NoError(t, err)
	assert.Equal(t, search.Bidirectional, got)

	_, err = search.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	assert.Equal(t, "Algorithm(42)", search.Algorithm(42).String())
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(search.Query{Algorithm: search.IDDFS, Start: "A", Goal: "B", Depth: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"iddfs","start":"A","goal":"B","depth":3}`, string(b))

	var q search.Query
	require.NoError(t, json.Unmarshal(b, &q))
	assert.Equal(t, search.IDDFS, q.Algorithm)

	_, err = json.Marshal(search.Query{Algorithm: -1})
	assert.Error(t, err)
}

// TestRun_Diamond runs every algorithm on the canonical scenario.
func TestRun_Diamond(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		algo search.Algorithm
		path core.Path
		cost float64
	}{
		{search.BFS, core.Path{"A", "B", "D"}, 2},
		{search.DFS, core.Path{"A", "B", "D"}, 2},
		{search.UCS, core.Path{"A", "C", "D"}, 2},
		{search.DLS, core.Path{"A", "B", "D"}, 2},
		{search.IDDFS, core.Path{"A", "B", "D"}, 2},
		{search.Bidirectional, core.Path{"A", "B", "D"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.algo.String(), func(t *testing.T) {
			out, err := search.Run(ctx, diamondGraphs(), search.Query{Algorithm: tc.algo, Start: "A", Goal: "D", Depth: 3})
			require.NoError(t, err)
			assert.True(t, out.Found)
			assert.Equal(t, tc.path, out.Path)
			assert.Equal(t, tc.cost, out.Cost)
		})
	}
}

// TestRun_StartIsGoalAndNoPath checks the two edge cases for every algorithm.
func TestRun_StartIsGoalAndNoPath(t *testing.T) {
	ctx := context.Background()
	for _, a := range search.Algorithms() {
		out, err := search.Run(ctx, diamondGraphs(), search.Query{Algorithm: a, Start: "B", Goal: "B"})
		require.NoError(t, err, a.String())
		assert.True(t, out.Found, a.String())
		assert.Equal(t, core.Path{"B"}, out.Path, a.String())

		out, err = search.Run(ctx, diamondGraphs(), search.Query{Algorithm: a, Start: "A", Goal: "Z", Depth: 4})
		require.NoError(t, err, a.String())
		assert.False(t, out.Found, a.String())
		assert.Nil(t, out.Path, a.String())
	}
}

func TestRun_BidirectionalFields(t *testing.T) {
	out, err := search.Run(context.Background(), diamondGraphs(),
		search.Query{Algorithm: search.Bidirectional, Start: "A", Goal: "D"})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Meeting)
	assert.Equal(t, core.Path{"A", "B"}, out.Forward)
	assert.Equal(t, core.Path{"B", "D"}, out.Backward)
}

func TestRun_DerivesMissingView(t *testing.T) {
	ctx := context.Background()
	onlyEdges := search.Graphs{Unweighted: testgraph.Diamond()}
	out, err := search.Run(ctx, onlyEdges, search.Query{Algorithm: search.UCS, Start: "A", Goal: "D"})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, 2.0, out.Cost, "unit weights")

	onlyWeighted := search.Graphs{Weighted: testgraph.WeightedDiamond()}
	for _, a := range search.Algorithms() {
		out, err := search.Run(ctx, onlyWeighted, search.Query{Algorithm: a, Start: "A", Goal: "D", Depth: 2})
		require.NoError(t, err, a.String())
		assert.True(t, out.Found, a.String())
		assert.Equal(t, a.Weighted(), a == search.UCS)
	}

	qs := []search.Query{
		{Algorithm: search.Bidirectional, Start: "A", Goal: "D"},
		{Algorithm: search.Bidirectional, Start: "B", Goal: "D"},
	}
	outs, err := search.RunBatch(ctx, onlyWeighted, qs, 2)
	require.NoError(t, err)
	for _, out := range outs {
		assert.True(t, out.Found, out.Query.Start)
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := search.Run(ctx, diamondGraphs(), search.Query{Algorithm: search.DLS, Start: "A", Goal: "D", Depth: -1})
	assert.ErrorIs(t, err, core.ErrNegativeDepth)

	neg := search.Graphs{Weighted: core.WeightedGraph{"A": {{To: "B", Weight: -1}}}}
	_, err = search.Run(ctx, neg, search.Query{Algorithm: search.UCS, Start: "A", Goal: "B"})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = search.Run(ctx, diamondGraphs(), search.Query{Algorithm: search.Algorithm(99)})
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRunBatch_OrderAndConsistency(t *testing.T) {
	wg := testgraph.Random(21, 9, 0.3)
	graphs := search.Graphs{Unweighted: wg.Unweighted(), Weighted: wg}

	var queries []search.Query
	for i := 0; i < 40; i++ {
		queries = append(queries, search.Query{
			Algorithm: search.Algorithms()[i%6],
			Start:     "v0",
			Goal:      testgraph.Name(i % 9),
			Depth:     8,
		})
	}

	outs, err := search.RunBatch(context.Background(), graphs, queries, 4)
	require.NoError(t, err)
	require.Len(t, outs, len(queries))
	for i, out := range outs {
		assert.Equal(t, queries[i], out.Query, "outcome %d out of order", i)

		solo, err := search.Run(context.Background(), graphs, queries[i])
		require.NoError(t, err)
		assert.Equal(t, solo.Found, out.Found, fmt.Sprintf("query %d", i))
		assert.Equal(t, solo.Path, out.Path, fmt.Sprintf("query %d", i))
	}
}

func TestRunBatch_FirstErrorWins(t *testing.T) {
	queries := []search.Query{
		{Algorithm: search.BFS, Start: "A", Goal: "D"},
		{Algorithm: search.DLS, Start: "A", Goal: "D", Depth: -3},
	}
	outs, err := search.RunBatch(context.Background(), diamondGraphs(), queries, 0)
	assert.ErrorIs(t, err, core.ErrNegativeDepth)
	assert.ErrorContains(t, err, "query 1")
	assert.Nil(t, outs)
}

func TestRunBatch_Empty(t *testing.T) {
	outs, err := search.RunBatch(context.Background(), diamondGraphs(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, outs)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.RunBatch(ctx, diamondGraphs(), []search.Query{{Algorithm: search.BFS, Start: "A", Goal: "D"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
