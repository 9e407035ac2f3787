package order

import (
	"errors"
	"fmt"

	"github.com/avolokh/varelim/graph"
)

// Sentinel errors for elimination-order computation.
var (
	// ErrNilGraph indicates a nil *graph.Graph input.
	ErrNilGraph = errors.New("order: graph is nil")

	// ErrBadOrder indicates a candidate order that is not a permutation of
	// the graph's vertex indices.
	ErrBadOrder = errors.New("order: not a permutation of the graph's vertices")
)

// MinDegree returns a greedy elimination order picking, at every step, the
// surviving vertex with the fewest surviving neighbors (lowest index on
// ties). The input graph is not mutated.
// Complexity: O(V·(V+E')) with E' counting fill edges.
func MinDegree(g *graph.Graph) ([]int, error) {
	return eliminate(g, func(sc scratch, v int) int {
		return len(sc[v])
	})
}

// MinFill returns a greedy elimination order picking, at every step, the
// vertex whose elimination adds the fewest fill edges — missing edges
// among its surviving neighbors (lowest index on ties). The input graph is
// not mutated.
// Complexity: O(V·(V + Σ deg²)) in the worst case.
func MinFill(g *graph.Graph) ([]int, error) {
	return eliminate(g, fillCost)
}

// InducedWidth returns the width of eliminating g along the given order:
// the largest surviving neighborhood observed at an elimination step.
// Returns ErrBadOrder unless order is a permutation of 0..NumVertices()-1.
// Complexity: O(V + E') with E' counting fill edges.
func InducedWidth(g *graph.Graph, order []int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.NumVertices()
	if len(order) != n {
		return 0, fmt.Errorf("%w: got %d vertices for a %d-vertex graph", ErrBadOrder, len(order), n)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return 0, fmt.Errorf("%w: vertex %d repeated or out of range", ErrBadOrder, v)
		}
		seen[v] = true
	}

	sc, err := buildScratch(g)
	if err != nil {
		return 0, err
	}
	width := 0
	for _, v := range order {
		if len(sc[v]) > width {
			width = len(sc[v])
		}
		sc.eliminate(v)
	}

	return width, nil
}

// scratch is the mutable adjacency-set view the heuristics eliminate on.
// scratch[v] == nil marks an eliminated vertex.
type scratch []map[int]struct{}

// buildScratch snapshots g's adjacency into neighbor sets.
func buildScratch(g *graph.Graph) (scratch, error) {
	n := g.NumVertices()
	sc := make(scratch, n)
	for v := 0; v < n; v++ {
		ns, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		sc[v] = make(map[int]struct{}, len(ns))
		for _, u := range ns {
			sc[v][u] = struct{}{}
		}
	}

	return sc, nil
}

// eliminate removes v from the scratch graph, first connecting all pairs
// of its surviving neighbors (fill edges).
func (sc scratch) eliminate(v int) {
	ns := make([]int, 0, len(sc[v]))
	for u := range sc[v] {
		ns = append(ns, u)
	}
	for i, a := range ns {
		delete(sc[a], v)
		for _, b := range ns[i+1:] {
			sc[a][b] = struct{}{}
			sc[b][a] = struct{}{}
		}
	}
	sc[v] = nil
}

// fillCost counts the missing edges among v's surviving neighbors.
func fillCost(sc scratch, v int) int {
	ns := make([]int, 0, len(sc[v]))
	for u := range sc[v] {
		ns = append(ns, u)
	}
	missing := 0
	for i, a := range ns {
		for _, b := range ns[i+1:] {
			if _, ok := sc[a][b]; !ok {
				missing++
			}
		}
	}

	return missing
}

// eliminate runs the shared greedy loop with a per-vertex cost function,
// scanning surviving vertices in index order so ties always resolve to
// the lowest index.
func eliminate(g *graph.Graph, cost func(scratch, int) int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	sc, err := buildScratch(g)
	if err != nil {
		return nil, err
	}

	n := g.NumVertices()
	out := make([]int, 0, n)
	for step := 0; step < n; step++ {
		best, bestCost := -1, 0
		for v := 0; v < n; v++ {
			if sc[v] == nil {
				continue
			}
			c := cost(sc, v)
			if best == -1 || c < bestCost {
				best, bestCost = v, c
			}
		}
		out = append(out, best)
		sc.eliminate(best)
	}

	return out, nil
}
