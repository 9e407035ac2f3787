// Package solution provides the bounded top-K minimum-cost assignment
// tracker that a search or elimination driver feeds candidates into:
// MinSolution, a single evaluated variable assignment, and MinSolutionSet,
// a capacity-capped collection of the best (lowest-value) candidates seen.
//
// A MinSolutionSet is created with a fixed capacity before search begins
// and never resized. Insert is called once per discovered candidate, in
// arbitrary discovery order; after search, Solutions() yields the retained
// candidates sorted ascending by value. The set realizes bounded best-K
// selection: memory stays O(K) no matter how many candidates the search
// produces.
//
// Determinism:
//
//	Given the same sequence of Insert calls, Solutions() is identical
//	across runs and implementations. Candidates with equal values keep
//	their insertion order (stable tie-break), and the retained set equals
//	the K smallest-value candidates regardless of arrival order.
//
// Concurrency:
//
//	Insert performs a compare-and-possibly-mutate sequence, so the set
//	guards itself with a sync.Mutex — parallel search branches may feed
//	one MinSolutionSet directly. Reads take the same lock and return
//	fresh copies.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrBadCapacity if the requested capacity is not positive.
//
// Complexity: Insert is O(log K) to locate the slot plus O(K) to shift;
// Solutions is O(K·n) for the deep copy of K assignments of n variables.
package solution
