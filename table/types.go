package table

import "errors"

// Sentinel errors for table construction, addressing, and algebra.
var (
	// ErrBadDomain indicates a declared domain size < 1.
	ErrBadDomain = errors.New("table: domain size must be ≥ 1")

	// ErrBadVarIndex indicates a negative variable index.
	ErrBadVarIndex = errors.New("table: variable index must be non-negative")

	// ErrDuplicateVar indicates the same variable index declared twice in
	// one schema.
	ErrDuplicateVar = errors.New("table: duplicate variable index")

	// ErrValueCount indicates an initial-value slice whose length does not
	// match the table size Π domSize.
	ErrValueCount = errors.New("table: value count does not match table size")

	// ErrArityMismatch indicates an assignment with a value count different
	// from the schema's variable count.
	ErrArityMismatch = errors.New("table: assignment arity does not match schema")

	// ErrValueOutOfRange indicates a variable value ≥ its domain size
	// (or negative).
	ErrValueOutOfRange = errors.New("table: variable value out of domain range")

	// ErrOffsetOutOfRange indicates a flat offset outside [0, Size()).
	ErrOffsetOutOfRange = errors.New("table: flat offset out of range")

	// ErrDomainMismatch indicates the same variable index carries different
	// domain sizes in two tables being combined.
	ErrDomainMismatch = errors.New("table: variable domain sizes disagree between schemas")

	// ErrVarNotFound indicates the variable to marginalize out is not part
	// of the table's schema.
	ErrVarNotFound = errors.New("table: variable not in schema")

	// ErrNilOp indicates a nil combine/reduce operation.
	ErrNilOp = errors.New("table: operation must be non-nil")

	// ErrNilTable indicates a nil *Table operand.
	ErrNilTable = errors.New("table: table must be non-nil")
)

// Var is one entry of a table's schema: a variable index, its domain
// cardinality, and its multiplicative stride in the flat value buffer.
// The ordered Var sequence of a table defines its mixed-radix addressing.
type Var struct {
	// Index is the variable's id in the model's variable universe.
	Index int

	// DomSize is the cardinality of the variable's discrete domain (≥ 1).
	DomSize int

	// StepSize is the offset contribution of one unit of this variable's
	// value; derived at construction, never mutated afterwards.
	StepSize int
}

// VarSpec declares one variable of a table under construction. It carries
// no StepSize: the table derives strides from declaration order.
type VarSpec struct {
	Index   int
	DomSize int
}
