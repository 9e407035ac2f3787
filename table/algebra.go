package table

import (
	"fmt"
	"sort"
)

// Combine builds the factor product of a and b over the union of their
// schemas, combining broadcast cells pointwise with op. The result schema
// is sorted ascending by variable index, so combination order does not
// affect the layout of the result (Combine(a,b) and Combine(b,a) agree up
// to op's own symmetry).
//
// op receives (cell of a, cell of b) and its result is stored verbatim;
// the package never interprets Y. Typical ops: addition of log-costs,
// multiplication of probabilities.
//
// Errors:
//   - ErrNilTable / ErrNilOp for missing operands.
//   - ErrDomainMismatch if a shared variable index carries different
//     domain sizes. No partial result is produced on any error.
//
// Complexity: O(Π unionDomSize · k) time, O(Π unionDomSize) space.
func Combine[Y comparable](a, b *Table[Y], op func(Y, Y) Y) (*Table[Y], error) {
	if a == nil || b == nil {
		return nil, ErrNilTable
	}
	if op == nil {
		return nil, ErrNilOp
	}

	// Union schema, sorted ascending by variable index, with the shared
	// indices checked for domain agreement before anything is allocated.
	domByIndex := make(map[int]int, len(a.vars)+len(b.vars))
	for _, v := range a.vars {
		domByIndex[v.Index] = v.DomSize
	}
	for _, v := range b.vars {
		if dom, shared := domByIndex[v.Index]; shared && dom != v.DomSize {
			return nil, fmt.Errorf("%w: variable %d has domSize %d vs %d",
				ErrDomainMismatch, v.Index, dom, v.DomSize)
		}
		domByIndex[v.Index] = v.DomSize
	}
	indices := make([]int, 0, len(domByIndex))
	for idx := range domByIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	specs := make([]VarSpec, len(indices))
	for i, idx := range indices {
		specs[i] = VarSpec{Index: idx, DomSize: domByIndex[idx]}
	}
	out, err := New[Y](specs)
	if err != nil {
		return nil, err
	}

	// Per union variable: its stride inside a and b (0 when absent — the
	// source cell is then broadcast across that dimension).
	stepA := sourceSteps(out.vars, a.vars)
	stepB := sourceSteps(out.vars, b.vars)

	// Odometer walk of the result in flat-offset order. The first declared
	// (least significant) digit advances first, so the result offset is
	// simply the iteration counter; source offsets track incrementally.
	digits := make([]int, len(out.vars))
	offA, offB := 0, 0
	for cell := 0; cell < len(out.values); cell++ {
		out.values[cell] = op(a.values[offA], b.values[offB])

		for i := range out.vars {
			digits[i]++
			offA += stepA[i]
			offB += stepB[i]
			if digits[i] < out.vars[i].DomSize {
				break
			}
			digits[i] = 0
			offA -= stepA[i] * out.vars[i].DomSize
			offB -= stepB[i] * out.vars[i].DomSize
		}
	}

	return out, nil
}

// Marginalize folds varIndex out of t's schema, reducing across its domain
// with the caller-supplied reduce (min for optimization, sum for
// partition-function style marginals, …). The fold seeds with the
// variable's value 0 cell, so no identity element is required of Y.
// Remaining variables keep their relative declaration order.
//
// Errors:
//   - ErrNilTable / ErrNilOp for missing operands.
//   - ErrVarNotFound if varIndex is not part of t's schema.
//
// Complexity: O(Size()) time, O(Size()/domSize) space.
func Marginalize[Y comparable](t *Table[Y], varIndex int, reduce func(Y, Y) Y) (*Table[Y], error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if reduce == nil {
		return nil, ErrNilOp
	}
	pos := -1
	for i, v := range t.vars {
		if v.Index == varIndex {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil, fmt.Errorf("%w: variable %d", ErrVarNotFound, varIndex)
	}
	elimStep := t.vars[pos].StepSize
	elimDom := t.vars[pos].DomSize

	// Remaining schema in original relative order, with the eliminated
	// variable's original strides remembered for source addressing.
	specs := make([]VarSpec, 0, len(t.vars)-1)
	srcStep := make([]int, 0, len(t.vars)-1)
	for i, v := range t.vars {
		if i == pos {
			continue
		}
		specs = append(specs, VarSpec{Index: v.Index, DomSize: v.DomSize})
		srcStep = append(srcStep, v.StepSize)
	}
	out, err := New[Y](specs)
	if err != nil {
		return nil, err
	}

	// Odometer over the remaining variables: the result offset is the
	// iteration counter, the source base offset tracks incrementally.
	digits := make([]int, len(out.vars))
	srcBase := 0
	for cell := 0; cell < len(out.values); cell++ {
		acc := t.values[srcBase]
		for a := 1; a < elimDom; a++ {
			acc = reduce(acc, t.values[srcBase+a*elimStep])
		}
		out.values[cell] = acc

		for i := range out.vars {
			digits[i]++
			srcBase += srcStep[i]
			if digits[i] < out.vars[i].DomSize {
				break
			}
			digits[i] = 0
			srcBase -= srcStep[i] * out.vars[i].DomSize
		}
	}

	return out, nil
}

// sourceSteps maps each union variable to its stride in one source schema,
// or 0 when the source does not carry that variable (broadcast dimension).
func sourceSteps(union, source []Var) []int {
	steps := make([]int, len(union))
	for i, u := range union {
		for _, s := range source {
			if s.Index == u.Index {
				steps[i] = s.StepSize
				break
			}
		}
	}

	return steps
}
