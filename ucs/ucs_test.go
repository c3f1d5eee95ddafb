package ucs_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/testgraph"
	"github.com/katalvlaran/lvsearch/ucs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUCS_Diamond(t *testing.T) {
	res, err := ucs.UCS(testgraph.WeightedDiamond(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "C", "D"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

func TestUCS_StartIsGoal(t *testing.T) {
	res, err := ucs.UCS(testgraph.WeightedDiamond(), "B", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"B"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestUCS_NoPath(t *testing.T) {
	_, err := ucs.UCS(testgraph.WeightedDiamond(), "A", "Z")
	assert.ErrorIs(t, err, core.ErrNoPath)

	res, err := ucs.UCS(nil, "A", "B")
	assert.ErrorIs(t, err, core.ErrNoPath)
	assert.Nil(t, res)
}

func TestUCS_Errors(t *testing.T) {
	neg := core.WeightedGraph{"A": {{To: "B", Weight: 1}}, "B": {{To: "C", Weight: -3}}}
	_, err := ucs.UCS(neg, "A", "C")
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	nan := core.WeightedGraph{"A": {{To: "B", Weight: math.NaN()}}}
	_, err = ucs.UCS(nan, "A", "B")
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = ucs.UCS(testgraph.WeightedDiamond(), "A", "D", ucs.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, ucs.ErrOptionViolation)
}

// TestUCS_CheaperLongerRoute prefers more hops when they are cheaper, and
// handles a node reached twice before it is settled.
func TestUCS_CheaperLongerRoute(t *testing.T) {
	wg := core.WeightedGraph{
		"S": {{To: "G", Weight: 10}, {To: "A", Weight: 1}},
		"A": {{To: "B", Weight: 1}, {To: "G", Weight: 9}},
		"B": {{To: "C", Weight: 1}},
		"C": {{To: "G", Weight: 1}},
	}
	settled := map[string]int{}
	res, err := ucs.UCS(wg, "S", "G", ucs.WithOnExpand(func(id string, _ float64) { settled[id]++ }))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "A", "B", "C", "G"}, res.Path)
	assert.Equal(t, 4.0, res.Cost)
	for id, n := range settled {
		assert.Equal(t, 1, n, "%s expanded more than once", id)
	}
}

// TestUCS_ZeroWeights keeps working with zero-cost arcs and cycles.
func TestUCS_ZeroWeights(t *testing.T) {
	wg := core.WeightedGraph{
		"A": {{To: "B", Weight: 0}},
		"B": {{To: "A", Weight: 0}, {To: "C", Weight: 0}},
	}
	res, err := ucs.UCS(wg, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C"}, res.Path)
	assert.Zero(t, res.Cost)
}

// TestUCS_OptimalityProperty compares against a brute-force oracle.
func TestUCS_OptimalityProperty(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		wg := testgraph.Random(seed, 7, 0.35)
		want := testgraph.MinCost(wg, "v0", "v6")
		res, err := ucs.UCS(wg, "v0", "v6")
		if math.IsInf(want, 1) {
			assert.ErrorIs(t, err, core.ErrNoPath, "seed %d", seed)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, want, res.Cost, "seed %d", seed)

		cost, err := wg.Cost(res.Path)
		require.NoError(t, err)
		assert.Equal(t, res.Cost, cost, "reported cost matches the path")
	}
}

func TestUCS_MaxExpansions(t *testing.T) {
	wg := testgraph.Chain(10).Weighted(1)
	_, err := ucs.UCS(wg, "v0", "v9", ucs.WithMaxExpansions(2))
	assert.ErrorIs(t, err, ucs.ErrExpansionLimit)
}

func TestUCS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ucs.UCS(testgraph.WeightedDiamond(), "A", "D", ucs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUCS_Idempotent(t *testing.T) {
	wg := testgraph.Random(9, 8, 0.3)
	r1, e1 := ucs.UCS(wg, "v0", "v7")
	r2, e2 := ucs.UCS(wg, "v0", "v7")
	assert.Equal(t, r1, r2)
	assert.Equal(t, e1, e2)
}
