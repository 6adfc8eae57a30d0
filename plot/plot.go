// Package plot renders lab data as PNG charts (go-chart) or as plain text
// histograms for the terminal (uniplot). Nothing in the numeric packages
// depends on plotting; they hand their final values to a Sink.
package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// Options control the look of a chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// Sink receives one or more numeric sequences with their labels and renders
// them somewhere. The return value only reports rendering failures.
type Sink interface {
	Render(series [][]float64, labels []string, opts Options) error
}

// paddedRange returns a y range covering all values. A flat sequence still
// gets a non-zero range so that go-chart can place ticks.
func paddedRange(values ...[]float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}

	if math.IsInf(lo, 1) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}

	if lo == hi {
		pad := math.Abs(lo) * 0.1
		if pad == 0 {
			pad = 1
		}
		return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}

	return &chart.ContinuousRange{Min: lo, Max: hi}
}
