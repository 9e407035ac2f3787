// Package order computes variable elimination orders from an interaction
// graph — the processing sequences that an elimination or junction-tree
// driver consumes before touching any factor tables.
//
// Two classic greedy heuristics are provided:
//
//   - MinDegree: at each step eliminate the surviving vertex with the
//     fewest surviving neighbors.
//   - MinFill: at each step eliminate the vertex whose elimination adds
//     the fewest fill edges (missing edges among its neighbors).
//
// Both simulate elimination on a scratch copy of the adjacency structure:
// eliminating v connects all pairs of v's surviving neighbors (the fill
// edges) and removes v. The input graph is never mutated. Both heuristics
// are fully deterministic — ties go to the lowest vertex index — so the
// same graph always yields the same order.
//
// InducedWidth evaluates any candidate order: the width is the largest
// surviving neighborhood at the moment of elimination, an upper bound on
// the treewidth reachable with that order and the direct driver of
// elimination cost (factor sizes are exponential in the width).
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrNilGraph if the input graph is nil.
//	– ErrBadOrder if a candidate order is not a permutation of the
//	    graph's vertices.
//
// Complexity: both heuristics run in O(V · (V + E')) where E' counts
// edges including fill; InducedWidth is O(V + E') for one pass.
package order
