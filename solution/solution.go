package solution

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrBadCapacity indicates a MinSolutionSet was requested with a
// non-positive capacity.
var ErrBadCapacity = errors.New("solution: maxSolutions must be positive")

// MinSolution is one complete (or scope-complete) variable assignment with
// its evaluated objective value. Treat it as immutable once constructed:
// NewMinSolution copies the assignment, and the set copies again on both
// insertion and read-out.
type MinSolution[Y cmp.Ordered] struct {
	// Value is the objective cost of the assignment.
	Value Y

	// Assignment holds one value per variable of the scope the solution
	// was produced for, indexed in scope order.
	Assignment []int
}

// NewMinSolution builds a MinSolution owning a private copy of the
// assignment.
// Complexity: O(n).
func NewMinSolution[Y cmp.Ordered](value Y, assignment []int) MinSolution[Y] {
	buf := make([]int, len(assignment))
	copy(buf, assignment)

	return MinSolution[Y]{Value: value, Assignment: buf}
}

// String renders MinSolution(value=… solution=[…]) for logs and test
// failures; not a compatibility surface.
func (s MinSolution[Y]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MinSolution(value=%v solution=[", s.Value)
	for i, a := range s.Assignment {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, a)
	}
	sb.WriteString("])")

	return sb.String()
}

// MinSolutionSet retains the maxSolutions lowest-value candidates inserted
// so far, sorted ascending by value with stable insertion-order ties.
// Safe for concurrent Insert/Solutions calls.
type MinSolutionSet[Y cmp.Ordered] struct {
	mu           sync.Mutex
	maxSolutions int
	solutions    []MinSolution[Y]
}

// NewMinSolutionSet creates an empty set with the given fixed capacity.
// Returns ErrBadCapacity if maxSolutions ≤ 0.
// Complexity: O(1).
func NewMinSolutionSet[Y cmp.Ordered](maxSolutions int) (*MinSolutionSet[Y], error) {
	if maxSolutions <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, maxSolutions)
	}

	return &MinSolutionSet[Y]{
		maxSolutions: maxSolutions,
		solutions:    make([]MinSolution[Y], 0, maxSolutions),
	}, nil
}

// MaxSolutions returns the fixed capacity.
// Complexity: O(1).
func (s *MinSolutionSet[Y]) MaxSolutions() int { return s.maxSolutions }

// Len returns the number of currently retained solutions (≤ capacity).
// Complexity: O(1).
func (s *MinSolutionSet[Y]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.solutions)
}

// Insert offers a candidate to the set and reports whether it was
// retained. A full set discards candidates whose value is no better than
// the current worst retained element; otherwise the candidate lands at its
// sorted position (after any equal-value elements, keeping ties stable)
// and, if the set overflowed, the worst element is evicted.
//
// The candidate's assignment is copied; the caller keeps ownership of the
// slice it passed.
//
// Complexity: O(log K + K) — binary search plus shift.
func (s *MinSolutionSet[Y]) Insert(candidate MinSolution[Y]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := len(s.solutions) == s.maxSolutions
	if full && !(candidate.Value < s.solutions[len(s.solutions)-1].Value) {
		// No better than the current worst: a no-op, by contract.
		return false
	}

	// Upper-bound position: after every retained element with an equal
	// value, so equal-value candidates keep insertion order.
	pos := sort.Search(len(s.solutions), func(i int) bool {
		return candidate.Value < s.solutions[i].Value
	})

	retained := NewMinSolution(candidate.Value, candidate.Assignment)
	s.solutions = append(s.solutions, MinSolution[Y]{})
	copy(s.solutions[pos+1:], s.solutions[pos:])
	s.solutions[pos] = retained

	if len(s.solutions) > s.maxSolutions {
		// Evict the worst; shrink without freeing the backing array.
		s.solutions[len(s.solutions)-1] = MinSolution[Y]{}
		s.solutions = s.solutions[:s.maxSolutions]
	}

	return true
}

// Solutions returns the retained candidates, ascending by value, as a deep
// copy — callers may hold and mutate the result freely.
// Complexity: O(K·n).
func (s *MinSolutionSet[Y]) Solutions() []MinSolution[Y] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]MinSolution[Y], len(s.solutions))
	for i, sol := range s.solutions {
		out[i] = NewMinSolution(sol.Value, sol.Assignment)
	}

	return out
}

// Worst returns the highest-value retained solution, or false when the set
// is still empty. Useful as a pruning bound for the search driver.
// Complexity: O(n) for the copy.
func (s *MinSolutionSet[Y]) Worst() (MinSolution[Y], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.solutions) == 0 {
		var zero MinSolution[Y]
		return zero, false
	}
	last := s.solutions[len(s.solutions)-1]

	return NewMinSolution(last.Value, last.Assignment), true
}

// String renders MinSolutionSet(maxSolutions=… solutions=[…;…]) for logs
// and test failures; not a compatibility surface.
func (s *MinSolutionSet[Y]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "MinSolutionSet(maxSolutions=%d solutions=[", s.maxSolutions)
	for i, sol := range s.solutions {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(sol.String())
	}
	sb.WriteString("])")

	return sb.String()
}
