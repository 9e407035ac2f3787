// Package table implements dense factor tables over discrete variables,
// addressed by a mixed-radix (strided) scheme: each participating variable
// carries a step size, and the flat offset of an assignment (a₁,…,aₖ) is
// Σ aᵢ·stepᵢ. A table owns exactly one flat value buffer of length
// Π domSizeᵢ — the tight product form, no padding — so every valid
// assignment maps to exactly one cell and every cell is reachable by
// exactly one assignment.
//
// Addressing:
//
//	Strides are derived from the declared variable order at construction:
//	the first declared variable is the least significant (step 1), and
//	each subsequent variable's step is the previous step times the
//	previous domain size. Incrementing one variable's value by 1 moves
//	the flat offset by exactly that variable's step.
//
//	Example: vars [(idx=0,dom=2), (idx=1,dom=3)] yield steps [1, 2],
//	size 6, and assignment (var0=1, var1=2) → offset 1·1 + 2·2 = 5.
//
// Algebra:
//
//	Combine(a, b, op) produces a table over the union of both schemas
//	(sorted by variable index), each cell op(aᵥ, bᵥ) of the broadcast
//	source cells. Marginalize(t, varIndex, reduce) folds one variable out
//	of the schema by reducing across its domain (min, sum, … — the
//	reduction is caller-supplied; the package never interprets Y beyond
//	==). Both are pure: errors never leave a partially-built result.
//
// Equality is exact — schemas and entire value sequences must match with
// no floating-point tolerance; EqualFunc lets a caller opt into one.
//
// A Table is built by a single owner and safe to share read-only once
// construction and mutation are done.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrBadDomain, ErrBadVarIndex, ErrDuplicateVar, ErrValueCount
//	    malformed construction parameters, surfaced before any state exists.
//	– ErrArityMismatch, ErrValueOutOfRange, ErrOffsetOutOfRange
//	    invalid addressing, never silently clamped.
//	– ErrDomainMismatch
//	    the same variable index declared with different domain sizes in
//	    two tables being combined.
//	– ErrVarNotFound, ErrNilOp, ErrNilTable
//	    invalid algebra arguments.
//
// Complexity: Offset/At/Set are O(k) for k schema variables; Combine is
// O(result size · k); Marginalize is O(source size).
package table
