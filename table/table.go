package table

import (
	"fmt"
	"strings"
)

// Table is a dense factor over the Cartesian product of its schema
// variables' domains. Y is the numeric payload (cost, probability, …);
// the package relies on nothing about Y beyond comparability.
type Table[Y comparable] struct {
	vars   []Var
	values []Y
}

// New creates a Table over the declared variables with default-initialized
// (zero) values. Strides are derived from declaration order: the first
// declared variable is least significant.
//
// Errors: ErrBadVarIndex, ErrBadDomain, ErrDuplicateVar — surfaced before
// any state is allocated.
//
// Complexity: O(k² + Π domSize) for k declared variables.
func New[Y comparable](vars []VarSpec) (*Table[Y], error) {
	schema, size, err := buildSchema(vars)
	if err != nil {
		return nil, err
	}

	return &Table[Y]{vars: schema, values: make([]Y, size)}, nil
}

// NewWithValues creates a Table with explicit initial values. The value
// slice is copied; its length must equal Π domSize exactly (ErrValueCount).
func NewWithValues[Y comparable](vars []VarSpec, values []Y) (*Table[Y], error) {
	schema, size, err := buildSchema(vars)
	if err != nil {
		return nil, err
	}
	if len(values) != size {
		return nil, fmt.Errorf("%w: got %d values, size %d", ErrValueCount, len(values), size)
	}
	buf := make([]Y, size)
	copy(buf, values)

	return &Table[Y]{vars: schema, values: buf}, nil
}

// buildSchema validates the declared variables and derives strides.
// A table over zero variables is a scalar: size 1, one cell.
func buildSchema(vars []VarSpec) ([]Var, int, error) {
	schema := make([]Var, len(vars))
	seen := make(map[int]struct{}, len(vars))
	step := 1
	for i, v := range vars {
		if v.Index < 0 {
			return nil, 0, fmt.Errorf("%w: got %d", ErrBadVarIndex, v.Index)
		}
		if v.DomSize < 1 {
			return nil, 0, fmt.Errorf("%w: variable %d has domSize %d", ErrBadDomain, v.Index, v.DomSize)
		}
		if _, dup := seen[v.Index]; dup {
			return nil, 0, fmt.Errorf("%w: variable %d", ErrDuplicateVar, v.Index)
		}
		seen[v.Index] = struct{}{}
		schema[i] = Var{Index: v.Index, DomSize: v.DomSize, StepSize: step}
		step *= v.DomSize
	}

	// step has accumulated Π domSize — the tight table size, no padding.
	return schema, step, nil
}

// Vars returns a read-only view (fresh copy) of the variable/stride schema
// in declaration order.
// Complexity: O(k).
func (t *Table[Y]) Vars() []Var {
	out := make([]Var, len(t.vars))
	copy(out, t.vars)

	return out
}

// NumVars returns the number of schema variables.
// Complexity: O(1).
func (t *Table[Y]) NumVars() int { return len(t.vars) }

// Size returns the number of cells, Π domSize.
// Complexity: O(1).
func (t *Table[Y]) Size() int { return len(t.values) }

// Values returns the dense value sequence in flat-offset order as a fresh
// slice — the canonical traversal used by equality, dumps, and algebra.
// Complexity: O(size).
func (t *Table[Y]) Values() []Y {
	out := make([]Y, len(t.values))
	copy(out, t.values)

	return out
}

// Value returns the cell at the given flat offset.
// Returns ErrOffsetOutOfRange if offset ∉ [0, Size()).
// Complexity: O(1).
func (t *Table[Y]) Value(offset int) (Y, error) {
	if offset < 0 || offset >= len(t.values) {
		var zero Y
		return zero, fmt.Errorf("%w: offset %d, size %d", ErrOffsetOutOfRange, offset, len(t.values))
	}

	return t.values[offset], nil
}

// Offset computes the flat offset of a full assignment to the schema
// variables, in declaration order: Σ assignment[i]·StepSize[i].
//
// Errors:
//   - ErrArityMismatch if len(assignment) ≠ NumVars().
//   - ErrValueOutOfRange if any value is negative or ≥ its DomSize.
//
// Complexity: O(k).
func (t *Table[Y]) Offset(assignment []int) (int, error) {
	if len(assignment) != len(t.vars) {
		return 0, fmt.Errorf("%w: got %d values for %d variables", ErrArityMismatch, len(assignment), len(t.vars))
	}
	off := 0
	for i, a := range assignment {
		if a < 0 || a >= t.vars[i].DomSize {
			return 0, fmt.Errorf("%w: variable %d value %d, domSize %d",
				ErrValueOutOfRange, t.vars[i].Index, a, t.vars[i].DomSize)
		}
		off += a * t.vars[i].StepSize
	}

	return off, nil
}

// At returns the cell addressed by a full assignment.
// Complexity: O(k).
func (t *Table[Y]) At(assignment []int) (Y, error) {
	off, err := t.Offset(assignment)
	if err != nil {
		var zero Y
		return zero, err
	}

	return t.values[off], nil
}

// Set writes the cell addressed by a full assignment.
// Complexity: O(k).
func (t *Table[Y]) Set(assignment []int, v Y) error {
	off, err := t.Offset(assignment)
	if err != nil {
		return err
	}
	t.values[off] = v

	return nil
}

// SetValues replaces the entire value sequence. The slice is copied and
// must match the table size exactly (ErrValueCount).
// Complexity: O(size).
func (t *Table[Y]) SetValues(values []Y) error {
	if len(values) != len(t.values) {
		return fmt.Errorf("%w: got %d values, size %d", ErrValueCount, len(values), len(t.values))
	}
	copy(t.values, values)

	return nil
}

// Clone returns a deep copy sharing no state with the original.
// Complexity: O(k + size).
func (t *Table[Y]) Clone() *Table[Y] {
	c := &Table[Y]{
		vars:   make([]Var, len(t.vars)),
		values: make([]Y, len(t.values)),
	}
	copy(c.vars, t.vars)
	copy(c.values, t.values)

	return c
}

// Equal reports exact equality: identical schemas (index, domain, stride,
// in the same order) and identical value sequences. No tolerance is
// applied — callers wanting one use EqualFunc.
// Complexity: O(k + size).
func Equal[Y comparable](a, b *Table[Y]) bool {
	return EqualFunc(a, b, func(x, y Y) bool { return x == y })
}

// EqualFunc reports equality with a caller-supplied value predicate
// (e.g. an epsilon comparison for floating-point payloads). Schemas are
// still compared exactly.
func EqualFunc[Y comparable](a, b *Table[Y], eq func(Y, Y) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.vars) != len(b.vars) || len(a.values) != len(b.values) {
		return false
	}
	for i, v := range a.vars {
		if b.vars[i] != v {
			return false
		}
	}
	for i, x := range a.values {
		if !eq(x, b.values[i]) {
			return false
		}
	}

	return true
}

// String renders a diagnostic dump of the schema and value sequence:
// Table(vars:<index,domSize,stepSize>… values=[…]). For logs and test
// failures only; the exact format is not a compatibility surface.
func (t *Table[Y]) String() string {
	var sb strings.Builder
	sb.WriteString("Table(vars:")
	for _, v := range t.vars {
		fmt.Fprintf(&sb, "<%d,%d,%d>", v.Index, v.DomSize, v.StepSize)
	}
	sb.WriteString(" values=[")
	for i, v := range t.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("])")

	return sb.String()
}
