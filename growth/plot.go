package growth

import (
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/labstat/plot"
)

// PlotOptions configure Monitor.Plot.
type PlotOptions struct {
	Smoothing SmoothOptions
	Title     bool
	Width     int
	Height    int
}

// Plot renders µ (left axis) and Td (right axis) against time as a PNG.
// Intervals without growth are drawn at Td=0.
func (m *Monitor) Plot(w io.Writer, opts PlotOptions) error {
	mu, err := Smooth(m.Rates, opts.Smoothing)
	if err != nil {
		return err
	}

	td := make([]float64, len(m.DoublingTimes))
	for i, v := range m.DoublingTimes {
		td[i] = v.ValueOrZero()
	}
	if td, err = Smooth(td, opts.Smoothing); err != nil {
		return err
	}

	po := plot.Options{
		XLabel: "time (min)",
		Width:  opts.Width,
		Height: opts.Height,
	}
	if opts.Title {
		po.Title = fmt.Sprintf("Growth rate and doubling time of %s over time", strings.ToLower(m.Name))
	}

	return plot.TwinAxis(w, m.Times,
		plot.Line{Name: "µ", Unit: "min⁻¹", Y: mu},
		plot.Line{Name: "Td", Unit: "min", Y: td},
		po)
}
