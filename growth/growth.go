// Package growth derives per-interval growth rates and doubling times from a
// time series of a positive quantity (optical density, cell count, biomass).
package growth

import (
	"fmt"
	"math"
	"strings"

	"github.com/carbocation/labstat"
	"gopkg.in/guregu/null.v3"
)

// Monitor holds a growth curve and everything derived from it. Rates,
// DoublingTimes, Times and Quantities always have the same length.
type Monitor struct {
	Name       string
	Times      []float64
	Quantities []float64

	// Rates[i] is the specific growth rate µ over (Times[i-1], Times[i]].
	// Rates[0] is always 0. A decline is reported as 0, never as a negative
	// rate.
	Rates []float64

	// DoublingTimes[i] is ln(2)/Rates[i]. It is null wherever no growth was
	// observed.
	DoublingTimes []null.Float
}

// Point is one (time, quantity) sample.
type Point struct {
	Time     float64
	Quantity float64
}

// New computes the growth rates and doubling times of quantities sampled at
// times. Quantities must be strictly positive and times strictly increasing.
func New(name string, quantities, times []float64) (*Monitor, error) {
	if len(quantities) != len(times) {
		return nil, &labstat.LengthMismatchError{Left: len(quantities), Right: len(times)}
	}
	if len(quantities) == 0 {
		return nil, labstat.ErrEmptySample
	}

	for i, q := range quantities {
		if !(q > 0) || math.IsInf(q, 0) {
			return nil, &labstat.DomainError{Op: "log", Index: i, Value: q}
		}
		if i > 0 && !(times[i] > times[i-1]) {
			return nil, &labstat.DomainError{Op: "time delta", Index: i, Value: times[i] - times[i-1]}
		}
	}

	m := &Monitor{
		Name:          name,
		Times:         append([]float64(nil), times...),
		Quantities:    append([]float64(nil), quantities...),
		Rates:         make([]float64, len(quantities)),
		DoublingTimes: make([]null.Float, len(quantities)),
	}

	for i := 1; i < len(quantities); i++ {
		mu := (math.Log(quantities[i]) - math.Log(quantities[i-1])) / (times[i] - times[i-1])
		if mu < 0 {
			mu = 0
		}
		m.Rates[i] = mu
	}

	for i, mu := range m.Rates {
		m.DoublingTimes[i] = doublingTime(mu)
	}

	return m, nil
}

func doublingTime(mu float64) null.Float {
	if mu == 0 {
		return null.Float{}
	}

	return null.FloatFrom(math.Ln2 / mu)
}

func (m *Monitor) Len() int {
	return len(m.Quantities)
}

// Points returns the samples in time order.
func (m *Monitor) Points() []Point {
	out := make([]Point, 0, len(m.Times))
	for i, t := range m.Times {
		out = append(out, Point{Time: t, Quantity: m.Quantities[i]})
	}

	return out
}

// String renders one line per sample, with µ in %/min and Td in minutes.
func (m *Monitor) String() string {
	header := fmt.Sprintf("---------- %s ----------", m.Name)

	b := strings.Builder{}
	b.WriteString("\n" + header)
	for i, t := range m.Times {
		td := "-"
		if m.DoublingTimes[i].Valid {
			td = fmt.Sprintf("%.0f min", m.DoublingTimes[i].Float64)
		}
		fmt.Fprintf(&b, "\n| - %s: µ=%.3e %%/min and Td=%s", FormatMinutes(t), m.Rates[i]*100, td)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len([]rune(header))))

	return b.String()
}

// FormatMinutes renders a time in minutes as "45 min" or "2h15 min".
func FormatMinutes(t float64) string {
	h := math.Floor(t / 60)
	rest := t - 60*h

	if h == 0 {
		return fmt.Sprintf("%g min", rest)
	}

	return fmt.Sprintf("%gh%g min", h, rest)
}
