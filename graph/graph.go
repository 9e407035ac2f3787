package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertexCount indicates New was given a negative vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index ≥ NumVertices().
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("graph: self-loops not allowed")

	// ErrDuplicateEdge indicates the edge is already present in the graph.
	ErrDuplicateEdge = errors.New("graph: edge already present")
)

// Graph is an undirected adjacency structure over vertices 0..n-1.
//
// The vertex count is fixed at construction; only edges are mutable.
// adj[v] holds v's neighbors in insertion order; edgeSet mirrors adj for
// O(1) duplicate detection, keyed by the normalized (min,max) pair.
type Graph struct {
	adj     [][]int
	edgeSet map[[2]int]struct{}
}

// New creates a Graph with numVertices vertices and no edges.
// Returns ErrBadVertexCount if numVertices < 0.
// Complexity: O(V).
func New(numVertices int) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, numVertices)
	}

	return &Graph{
		adj:     make([][]int, numVertices),
		edgeSet: make(map[[2]int]struct{}),
	}, nil
}

// NumVertices returns the fixed vertex count.
// Complexity: O(1).
func (g *Graph) NumVertices() int { return len(g.adj) }

// EdgeCount returns the number of (undirected) edges inserted so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edgeSet) }

// checkVertex validates a single vertex index against the fixed count.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: vertex %d, numVertices %d", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v}, appending each endpoint to
// the other's adjacency list. All validation happens before any mutation,
// so a failed insertion leaves the graph untouched and a successful one
// is visible on both endpoints at once.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, NumVertices()).
//   - ErrSelfLoop if u == v.
//   - ErrDuplicateEdge if {u, v} was inserted before.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}
	key := edgeKey(u, v)
	if _, ok := g.edgeSet[key]; ok {
		return fmt.Errorf("%w: {%d,%d}", ErrDuplicateEdge, u, v)
	}

	// Both directions recorded together; no partially-inserted state.
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edgeSet[key] = struct{}{}

	return nil
}

// HasEdge reports whether the undirected edge {u, v} is present.
// Out-of-range or coincident endpoints simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v || g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return false
	}
	_, ok := g.edgeSet[edgeKey(u, v)]

	return ok
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Neighbors returns v's neighbors in insertion order.
// The slice is freshly allocated; callers may retain and mutate it, and
// repeated calls always reproduce the same sequence.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Clone returns a deep copy of g. The copy shares no state with the
// original, so either side may keep inserting edges independently.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:     make([][]int, len(g.adj)),
		edgeSet: make(map[[2]int]struct{}, len(g.edgeSet)),
	}
	for v, ns := range g.adj {
		if len(ns) == 0 {
			continue
		}
		c.adj[v] = make([]int, len(ns))
		copy(c.adj[v], ns)
	}
	for k := range g.edgeSet {
		c.edgeSet[k] = struct{}{}
	}

	return c
}

// Equal reports order-sensitive structural equality: same vertex count
// and, for every vertex, the same neighbor sequence in the same order.
// This is stricter than set-equality of edges — it distinguishes graphs
// built from the same edges inserted in different orders.
// Complexity: O(V + E).
func Equal(g1, g2 *Graph) bool {
	if g1 == nil || g2 == nil {
		return g1 == g2
	}
	if len(g1.adj) != len(g2.adj) {
		return false
	}
	for v := range g1.adj {
		if len(g1.adj[v]) != len(g2.adj[v]) {
			return false
		}
		for i, n := range g1.adj[v] {
			if g2.adj[v][i] != n {
				return false
			}
		}
	}

	return true
}

// String renders a diagnostic dump of the adjacency structure, listing
// every directed arc <v,neighbor> in vertex-then-insertion order. The
// format is for logs and test failures only, not a compatibility surface.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Graph(")
	first := true
	for v, ns := range g.adj {
		for _, n := range ns {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			fmt.Fprintf(&sb, "<%d,%d>", v, n)
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

// edgeKey normalizes an undirected edge to its (min,max) representation.
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
