package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/varelim/graph"
	"github.com/avolokh/varelim/order"
)

// build constructs a graph over n vertices with the given edges.
func build(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestMinDegree_Path eliminates the 3-vertex path: lowest degree first,
// lowest index on ties.
func TestMinDegree_Path(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}, {1, 2}})

	got, err := order.MinDegree(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

// TestMinDegree_Star verifies leaves go before the hub, in index order.
func TestMinDegree_Star(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	got, err := order.MinDegree(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0}, got)
}

// fixtureK4Pendant is K4 on {0,1,2,3} plus vertex 4 linked to 1 and 2.
// Vertex 4 has the lowest degree but vertex 0 has zero fill, so the two
// heuristics disagree on the first pick.
func fixtureK4Pendant(t *testing.T) *graph.Graph {
	return build(t, 5, [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3}, {2, 3},
		{4, 1}, {4, 2},
	})
}

// TestMinDegree_PrefersLowDegree checks the degree-driven pick on the
// K4-plus-pendant fixture.
func TestMinDegree_PrefersLowDegree(t *testing.T) {
	got, err := order.MinDegree(fixtureK4Pendant(t))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 1, 2, 3}, got)
}

// TestMinFill_PrefersZeroFill checks the fill-driven pick on the same
// fixture: vertex 0's neighborhood is already a clique.
func TestMinFill_PrefersZeroFill(t *testing.T) {
	got, err := order.MinFill(fixtureK4Pendant(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2, 4}, got)
}

// TestHeuristics_PermutationAndDeterminism verifies both heuristics return
// a permutation of the vertices and reproduce themselves exactly.
func TestHeuristics_PermutationAndDeterminism(t *testing.T) {
	g := build(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {1, 4}})

	for name, heuristic := range map[string]func(*graph.Graph) ([]int, error){
		"MinDegree": order.MinDegree,
		"MinFill":   order.MinFill,
	} {
		first, err := heuristic(g)
		require.NoError(t, err, name)
		require.Len(t, first, 6, name)

		seen := make(map[int]bool, 6)
		for _, v := range first {
			assert.False(t, seen[v], "%s: vertex %d repeated", name, v)
			assert.GreaterOrEqual(t, v, 0, name)
			assert.Less(t, v, 6, name)
			seen[v] = true
		}

		second, err := heuristic(g)
		require.NoError(t, err, name)
		assert.Equal(t, first, second, "%s must be deterministic", name)
	}
}

// TestHeuristics_InputUntouched verifies the scratch elimination never
// leaks into the caller's graph.
func TestHeuristics_InputUntouched(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	snapshot := g.Clone()

	_, err := order.MinDegree(g)
	require.NoError(t, err)
	_, err = order.MinFill(g)
	require.NoError(t, err)

	assert.True(t, graph.Equal(g, snapshot))
}

// TestInducedWidth_Path distinguishes a good order (width 1) from a bad
// one that eliminates the middle vertex first (width 2, fill edge 0—2).
func TestInducedWidth_Path(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}, {1, 2}})

	w, err := order.InducedWidth(g, []int{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, w)

	w, err = order.InducedWidth(g, []int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, w)
}

// TestInducedWidth_Cycle verifies the 4-cycle has induced width 2 along
// the natural order.
func TestInducedWidth_Cycle(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	w, err := order.InducedWidth(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, w)
}

// TestInducedWidth_BadOrder covers every malformed-permutation shape.
func TestInducedWidth_BadOrder(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}})

	_, err := order.InducedWidth(g, []int{0, 1})
	assert.ErrorIs(t, err, order.ErrBadOrder, "wrong length")
	_, err = order.InducedWidth(g, []int{0, 1, 1})
	assert.ErrorIs(t, err, order.ErrBadOrder, "repeated vertex")
	_, err = order.InducedWidth(g, []int{0, 1, 3})
	assert.ErrorIs(t, err, order.ErrBadOrder, "vertex out of range")
}

// TestNilGraph verifies all entry points reject nil graphs.
func TestNilGraph(t *testing.T) {
	_, err := order.MinDegree(nil)
	assert.ErrorIs(t, err, order.ErrNilGraph)
	_, err = order.MinFill(nil)
	assert.ErrorIs(t, err, order.ErrNilGraph)
	_, err = order.InducedWidth(nil, nil)
	assert.ErrorIs(t, err, order.ErrNilGraph)
}
