// Package series implements a named sequence of measurements with a unit,
// whose descriptive statistics are kept in step with its data. Series combine
// element-wise with + - * / and carry their unit through the combination.
package series

import (
	"fmt"
	"math"
	"strings"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/describe"
	"github.com/carbocation/labstat/units"
)

// Series is a measurement series. Its Summary is computed from the data when
// the series is built and never updated afterwards: combinations return a new
// Series rather than mutating the receiver, so a Series can be shared freely.
// The data is only reachable through copies (Values) and At.
type Series struct {
	Name     string
	Unit     string
	Discrete bool

	describe.Summary

	data []float64
}

// New copies data and computes its derived statistics.
func New(name string, data []float64, unit string, discrete bool) (Series, error) {
	out := Series{
		Name:     name,
		data:     append([]float64(nil), data...),
		Unit:     unit,
		Discrete: discrete,
	}

	summary, err := describe.Summarize(out.data)
	if err != nil {
		return Series{}, err
	}
	out.Summary = summary

	return out, nil
}

// Values returns a copy of the measurements.
func (s Series) Values() []float64 {
	return append([]float64(nil), s.data...)
}

func (s Series) Len() int {
	return len(s.data)
}

func (s Series) At(i int) float64 {
	return s.data[i]
}

func (s Series) Contains(v float64) bool {
	for _, d := range s.data {
		if d == v {
			return true
		}
	}
	return false
}

// StandardError of the mean.
func (s Series) StandardError() float64 {
	return s.StdDev / math.Sqrt(float64(len(s.data)))
}

// Combine applies op element-wise to s and other and returns the result as a
// new Series named after s. Nothing is computed until every precondition has
// been checked: both series must be the same length, + and - require equal
// units, and / rejects zero divisors. For * and / the unit is derived with
// units.Combine; for + and - it is kept.
func (s Series) Combine(other Series, op units.Operator) (Series, error) {
	if !op.Valid() {
		return Series{}, fmt.Errorf("%w: %q", labstat.ErrUnknownOperator, byte(op))
	}

	if len(s.data) != len(other.data) {
		return Series{}, &labstat.LengthMismatchError{Left: len(s.data), Right: len(other.data)}
	}

	unit := s.Unit
	switch op {
	case units.Add, units.Sub:
		if s.Unit != other.Unit {
			return Series{}, &labstat.UnitMismatchError{Left: s.Unit, Right: other.Unit}
		}
	case units.Div:
		for i, v := range other.data {
			if v == 0 {
				return Series{}, &labstat.DomainError{Op: "divide", Index: i, Value: v}
			}
		}
		fallthrough
	case units.Mul:
		var err error
		if unit, err = units.CombinePair(s.Unit, other.Unit, op); err != nil {
			return Series{}, err
		}
	}

	data := make([]float64, len(s.data))
	for i := range s.data {
		data[i] = op.Apply(s.data[i], other.data[i])
	}

	return New(s.Name, data, unit, s.Discrete)
}

// Apply combines s with an operand of unknown type. Only a Series (or a
// pointer to one) can be combined; anything else is a TypeMismatchError.
func (s Series) Apply(op units.Operator, operand interface{}) (Series, error) {
	switch o := operand.(type) {
	case Series:
		return s.Combine(o, op)
	case *Series:
		if o != nil {
			return s.Combine(*o, op)
		}
	}

	return Series{}, &labstat.TypeMismatchError{Operator: op.String(), Operand: operand}
}

func (s Series) Add(other Series) (Series, error) { return s.Combine(other, units.Add) }
func (s Series) Sub(other Series) (Series, error) { return s.Combine(other, units.Sub) }
func (s Series) Mul(other Series) (Series, error) { return s.Combine(other, units.Mul) }
func (s Series) Div(other Series) (Series, error) { return s.Combine(other, units.Div) }

func (s Series) String() string {
	header := fmt.Sprintf("---------- %s ----------", s.Name)
	unit := ""
	if s.Unit != "" {
		unit = " " + s.Unit
	}

	outliers := make([]string, 0, len(s.Outliers))
	for _, v := range s.Outliers {
		outliers = append(outliers, describe.Prettify(v, 3))
	}

	b := strings.Builder{}
	b.WriteString("\n" + header)
	fmt.Fprintf(&b, "\n| - Value: %.3f ± %.3f%s", s.Mean, s.StdDev, unit)
	fmt.Fprintf(&b, "\n| - Median: %.3f%s", s.Median, unit)
	fmt.Fprintf(&b, "\n| - First Quartile: %.3f%s", s.FirstQuartile, unit)
	fmt.Fprintf(&b, "\n| - Third Quartile: %.3f%s", s.ThirdQuartile, unit)
	fmt.Fprintf(&b, "\n| - Interquartile Range: %.3f%s", s.IQR, unit)
	fmt.Fprintf(&b, "\n| - Outliers: %s", strings.Join(outliers, ", "))
	if r, err := describe.Dispersion(s.data); err == nil {
		fmt.Fprintf(&b, "\n| - Dispersion: %s%s", r, unit)
	}
	if r, err := describe.Dispersion(s.WithoutOutliers); err == nil {
		fmt.Fprintf(&b, "\n| - Dispersion without outliers: %s%s", r, unit)
	}
	fmt.Fprintf(&b, "\n| - Standard error: %.3f%s", s.StandardError(), unit)
	b.WriteString("\n|")
	if s.Discrete {
		b.WriteString(s.FrequencyReport())
	}
	b.WriteString(strings.Repeat("-", len([]rune(header))))

	return b.String()
}
