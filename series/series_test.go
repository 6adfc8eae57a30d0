package series

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/plot"
	"github.com/carbocation/labstat/units"
)

func mustNew(t *testing.T, name string, data []float64, unit string) Series {
	t.Helper()

	s, err := New(name, data, unit, false)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewComputesSummary(t *testing.T) {
	s := mustNew(t, "Mass", []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}, "g")

	if s.Mean <= s.Median {
		t.Errorf("a right-skewed sample should have mean (%f) > median (%f)", s.Mean, s.Median)
	}
	if s.Median != 5 || s.IQR != 5 {
		t.Errorf("unexpected summary %+v", s.Summary)
	}
	if len(s.Outliers) != 1 || s.Outliers[0] != 100 {
		t.Errorf("got outliers %v", s.Outliers)
	}
	if !s.Contains(100) || s.Contains(9) {
		t.Error("Contains is wrong")
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New("empty", nil, "g", false); !errors.Is(err, labstat.ErrEmptySample) {
		t.Errorf("expected ErrEmptySample, got %v", err)
	}
}

func TestAddMatchingUnits(t *testing.T) {
	a := mustNew(t, "a", []float64{1, 2, 3}, "g")
	b := mustNew(t, "b", []float64{10, 20, 30}, "g")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}

	for i, expected := range []float64{11, 22, 33} {
		if sum.At(i) != expected {
			t.Errorf("index %d: got %f, expected %f", i, sum.At(i), expected)
		}
	}
	if sum.Unit != "g" {
		t.Errorf("got unit %q, expected g", sum.Unit)
	}
	if sum.Mean != 22 {
		t.Errorf("statistics were not recomputed: mean %f", sum.Mean)
	}

	// The receiver is left untouched.
	if a.At(0) != 1 || a.Mean != 2 {
		t.Errorf("receiver was mutated: %v", a.Values())
	}
}

func TestAddMismatchedUnits(t *testing.T) {
	a := mustNew(t, "a", []float64{1, 2, 3}, "g")
	b := mustNew(t, "b", []float64{1, 2, 3}, "mL")

	for _, op := range []units.Operator{units.Add, units.Sub} {
		_, err := a.Combine(b, op)

		var mismatch *labstat.UnitMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("%s: expected a UnitMismatchError, got %v", op, err)
		}
		if mismatch.Left != "g" || mismatch.Right != "mL" {
			t.Errorf("got %+v", mismatch)
		}
	}
}

func TestMultiplyAndDivideUnits(t *testing.T) {
	mass := mustNew(t, "mass", []float64{2, 4, 6}, "g")
	volume := mustNew(t, "volume", []float64{1, 2, 4}, "mL")

	product, err := mass.Mul(volume)
	if err != nil {
		t.Fatal(err)
	}
	if product.Unit != "g.mL" {
		t.Errorf("got unit %q, expected g.mL", product.Unit)
	}
	if product.At(2) != 24 {
		t.Errorf("got %f, expected 24", product.At(2))
	}

	density, err := mass.Div(volume)
	if err != nil {
		t.Fatal(err)
	}
	if density.Unit != "g/mL" {
		t.Errorf("got unit %q, expected g/mL", density.Unit)
	}
	if density.At(2) != 1.5 {
		t.Errorf("got %f, expected 1.5", density.At(2))
	}

	back, err := density.Mul(volume)
	if err != nil {
		t.Fatal(err)
	}
	if back.Unit != "g" {
		t.Errorf("got unit %q, expected g", back.Unit)
	}
}

func TestDivideByZero(t *testing.T) {
	a := mustNew(t, "a", []float64{1, 2, 3}, "g")
	b := mustNew(t, "b", []float64{1, 0, 3}, "mL")

	_, err := a.Div(b)

	var domain *labstat.DomainError
	if !errors.As(err, &domain) {
		t.Fatalf("expected a DomainError, got %v", err)
	}
	if domain.Index != 1 {
		t.Errorf("got index %d, expected 1", domain.Index)
	}
}

func TestLengthMismatch(t *testing.T) {
	a := mustNew(t, "a", []float64{1, 2, 3}, "g")
	b := mustNew(t, "b", []float64{1, 2}, "g")

	var mismatch *labstat.LengthMismatchError
	if _, err := a.Add(b); !errors.As(err, &mismatch) {
		t.Fatalf("expected a LengthMismatchError, got %v", err)
	}
}

func TestApplyTypeMismatch(t *testing.T) {
	a := mustNew(t, "a", []float64{1, 2, 3}, "g")

	for _, operand := range []interface{}{2.0, "g", []float64{1, 2, 3}, (*Series)(nil)} {
		_, err := a.Apply(units.Mul, operand)

		var mismatch *labstat.TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("%T: expected a TypeMismatchError, got %v", operand, err)
		}
	}

	b := mustNew(t, "b", []float64{1, 1, 1}, "s")
	if out, err := a.Apply(units.Div, &b); err != nil || out.Unit != "g/s" {
		t.Errorf("got %q, %v", out.Unit, err)
	}
}

func TestFrequencies(t *testing.T) {
	s, err := New("Dice", []float64{3, 1, 3, 6, 1, 3}, "", true)
	if err != nil {
		t.Fatal(err)
	}

	freq := s.Frequencies()
	if freq[3] != 3 || freq[1] != 2 || freq[6] != 1 || len(freq) != 3 {
		t.Errorf("got %v", freq)
	}

	mods := s.Modalities()
	if len(mods) != 3 || mods[0] != 3 || mods[1] != 1 || mods[2] != 6 {
		t.Errorf("modalities should be in first-seen order, got %v", mods)
	}

	report := s.FrequencyReport()
	if !strings.Contains(report, "| - 3 : 3 -> 50.00%") {
		t.Errorf("unexpected report: %s", report)
	}

	if !strings.Contains(s.String(), "Number of modalities: 3") {
		t.Errorf("a discrete series should include its frequency table:\n%s", s)
	}
}

type recordingSink struct {
	series [][]float64
	labels []string
	opts   plot.Options
}

func (r *recordingSink) Render(series [][]float64, labels []string, opts plot.Options) error {
	r.series, r.labels, r.opts = series, labels, opts
	return nil
}

func TestPlot(t *testing.T) {
	dice, err := New("Dice", []float64{1, 2, 2, 6, 6, 6}, "", true)
	if err != nil {
		t.Fatal(err)
	}

	sink := &recordingSink{}
	var freq bytes.Buffer
	if err := dice.Plot(sink, &freq); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(freq.Bytes(), []byte("\x89PNG")) {
		t.Error("frequency plot is not a PNG")
	}
	if len(sink.series) != 1 || sink.labels[0] != "Dice" || len(sink.series[0]) != 6 {
		t.Errorf("sink received %v %v", sink.series, sink.labels)
	}
}

func TestPlotAllKeepsOrder(t *testing.T) {
	a := mustNew(t, "a", []float64{1, 2, 3}, "g")
	b := mustNew(t, "b", []float64{4, 5, 6, 7}, "g")

	sink := &recordingSink{}
	if err := PlotAll(sink, a, b); err != nil {
		t.Fatal(err)
	}

	if len(sink.labels) != 2 || sink.labels[0] != "a" || sink.labels[1] != "b" {
		t.Errorf("got labels %v", sink.labels)
	}
	if sink.opts.YLabel != "g" {
		t.Errorf("got y label %q", sink.opts.YLabel)
	}
}

func TestValuesIsACopy(t *testing.T) {
	s := mustNew(t, "mass", []float64{1, 2, 3}, "g")

	values := s.Values()
	values[0] = 100

	if s.At(0) != 1 {
		t.Errorf("series data changed through Values: got %f", s.At(0))
	}
	if s.Mean != 2 {
		t.Errorf("got mean %f, expected 2", s.Mean)
	}

	input := []float64{4, 5, 6}
	s, err := New("volume", input, "mL", false)
	if err != nil {
		t.Fatal(err)
	}
	input[0] = 100
	if s.At(0) != 4 {
		t.Errorf("series data changed through its input slice: got %f", s.At(0))
	}
}
