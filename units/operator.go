package units

import (
	"fmt"

	"github.com/carbocation/labstat"
)

// Operator is one of the four arithmetic operations a series or a unit can be
// combined with.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// ParseOperator accepts "+", "-", "*" (or "x") and "/".
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-":
		return Sub, nil
	case "*", "x":
		return Mul, nil
	case "/":
		return Div, nil
	}

	return 0, fmt.Errorf("%w: %q", labstat.ErrUnknownOperator, s)
}

func (o Operator) String() string {
	return string(o)
}

// Valid reports whether o is one of the four known operators.
func (o Operator) Valid() bool {
	switch o {
	case Add, Sub, Mul, Div:
		return true
	}
	return false
}

// Apply computes x o y. Division by zero follows IEEE rules; callers that
// care must check the divisor first.
func (o Operator) Apply(x, y float64) float64 {
	switch o {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	}

	panic(fmt.Sprintf("units: invalid operator %q", byte(o)))
}
