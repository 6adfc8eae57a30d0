package units

import (
	"fmt"
	"strings"

	"github.com/carbocation/labstat"
)

const (
	// ProductSeparator joins tokens that are multiplied together, e.g. "g.mL".
	ProductSeparator = "."

	// QuotientSeparator separates the numerator from the denominator.
	QuotientSeparator = "/"
)

// group is a parsed unit string: the tokens above and below the fraction bar.
type group struct {
	num []string
	den []string
}

// parse splits "a.b/c.d" into its tokens. A literal "1" or an empty string
// on either side of the bar contributes no tokens.
func parse(unit string) group {
	parts := strings.SplitN(unit, QuotientSeparator, 2)

	g := group{num: tokens(parts[0])}
	if len(parts) == 2 {
		g.den = tokens(parts[1])
	}

	return g
}

func tokens(s string) []string {
	out := make([]string, 0)
	for _, t := range strings.Split(s, ProductSeparator) {
		t = strings.TrimSpace(t)
		if t == "" || t == "1" {
			continue
		}
		out = append(out, t)
	}

	return out
}

func (g group) invert() group {
	return group{num: g.den, den: g.num}
}

func (g group) String() string {
	switch {
	case len(g.num) == 0 && len(g.den) == 0:
		return ""
	case len(g.den) == 0:
		return strings.Join(g.num, ProductSeparator)
	case len(g.num) == 0:
		return "1" + QuotientSeparator + strings.Join(g.den, ProductSeparator)
	}

	return strings.Join(g.num, ProductSeparator) + QuotientSeparator + strings.Join(g.den, ProductSeparator)
}

// Combine returns the unit that results from applying op to exactly two unit
// strings. Units are only combined pairwise; a chain is built by feeding each
// result into the next call.
//
// Adding or subtracting keeps the first unit: checking that both match is the
// caller's job. Multiplying concatenates the numerators with "." and merges
// the denominators, then cancels any token of one operand's numerator that
// also sits in the other operand's denominator. Dividing inverts the second
// unit and then cancels equal tokens across the whole fraction.
//
// Tokens are opaque. "mL" and "cm3" never cancel.
func Combine(units []string, op Operator) (string, error) {
	if len(units) != 2 {
		return "", &labstat.ArityError{N: len(units)}
	}

	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", labstat.ErrUnknownOperator, byte(op))
	}

	switch op {
	case Add, Sub:
		return units[0], nil
	}

	a, b := parse(units[0]), parse(units[1])

	if op == Div {
		return divide(a, b).String(), nil
	}

	return multiply(a, b).String(), nil
}

// CombinePair is Combine for the usual two-operand case.
func CombinePair(a, b string, op Operator) (string, error) {
	return Combine([]string{a, b}, op)
}

func multiply(a, b group) group {
	aNum, bDen := cancel(a.num, b.den)
	bNum, aDen := cancel(b.num, a.den)

	return group{
		num: append(aNum, bNum...),
		den: append(aDen, bDen...),
	}
}

func divide(a, b group) group {
	b = b.invert()

	num := append(append([]string{}, a.num...), b.num...)
	den := append(append([]string{}, a.den...), b.den...)

	num, den = cancel(num, den)

	return group{num: num, den: den}
}

// cancel removes tokens that appear on both sides, one occurrence at a time,
// and returns fresh slices in their original order.
func cancel(num, den []string) ([]string, []string) {
	remaining := make(map[string]int, len(den))
	for _, t := range den {
		remaining[t]++
	}

	cancelled := make(map[string]int)
	outNum := make([]string, 0, len(num))
	for _, t := range num {
		if remaining[t] > 0 {
			remaining[t]--
			cancelled[t]++
			continue
		}
		outNum = append(outNum, t)
	}

	outDen := make([]string, 0, len(den))
	for _, t := range den {
		if cancelled[t] > 0 {
			cancelled[t]--
			continue
		}
		outDen = append(outDen, t)
	}

	return outNum, outDen
}
