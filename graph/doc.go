// Package graph provides the undirected interaction graph over a fixed set
// of variable indices that underpins elimination-order construction and
// junction-tree building in discrete graphical models.
//
// A Graph is created with a fixed vertex count and mutated only by edge
// insertion. Vertices are plain non-negative ints (variable indices into
// the model's variable universe); the graph stores no variable metadata —
// domain sizes live with the factor tables.
//
// Guarantees:
//
//   - Symmetry: AddEdge(u, v) updates both endpoints' adjacency lists, or
//     neither — there is no observable state with only one direction set.
//   - No self-loops: AddEdge(v, v) is rejected with ErrSelfLoop.
//   - Stable neighbor order: Neighbors(v) always yields v's neighbors in
//     insertion order, so iteration is restartable and reproducible.
//   - Order-sensitive equality: Equal(g1, g2) holds iff both graphs have
//     the same vertex count and every vertex has the same neighbor
//     sequence in the same order. Two graphs built from the same edge
//     sequence always compare equal; the same edge set inserted in a
//     different order may not.
//
// A Graph is intended to be built by a single owner (the model loader)
// and then shared read-only across any number of consumers; none of the
// query methods mutate state.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrBadVertexCount  if New is given a negative vertex count.
//	– ErrVertexOutOfRange if a vertex index is ≥ NumVertices().
//	– ErrSelfLoop         if AddEdge endpoints coincide.
//	– ErrDuplicateEdge    if the edge is already present.
//
// Complexity: AddEdge and HasEdge are O(1) amortized; Degree is O(1);
// Neighbors is O(deg(v)) for the copy; Equal is O(V + E).
package graph
