package labstat

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySample is returned when a statistic is requested over zero
	// qualifying values.
	ErrEmptySample = errors.New("labstat: no qualifying samples")

	// ErrUnknownOperator is returned for anything other than + - * /
	ErrUnknownOperator = errors.New("labstat: unknown operator")

	// ErrLowExpected is returned by chi-square tests when an expected count
	// is too small for the chi-square approximation to hold.
	ErrLowExpected = errors.New("labstat: expected count below 5")
)

// TypeMismatchError is returned when an arithmetic combination is attempted
// against an operand that is not a measurement series.
type TypeMismatchError struct {
	Operator string
	Operand  interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("unsupported operand type(s) for %s: 'Series' and '%T'", e.Operator, e.Operand)
}

// UnitMismatchError is returned when two series with different units are
// added or subtracted.
type UnitMismatchError struct {
	Left  string
	Right string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("the units of the two data are not the same: '%s' and '%s'", e.Left, e.Right)
}

// LengthMismatchError is returned when paired sequences differ in length.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("paired sequences must have the same length, got %d and %d", e.Left, e.Right)
}

// DomainError reports a value outside of the domain of a logarithm or a
// division.
type DomainError struct {
	Op    string
	Index int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: invalid input %g at index %d", e.Op, e.Value, e.Index)
}

// ArityError is returned when a unit combination is requested with anything
// other than two operands.
type ArityError struct {
	N int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("units can only be combined two at a time, got %d", e.N)
}
