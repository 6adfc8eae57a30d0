package plot

import (
	"io"
	"math"

	"github.com/carbocation/labstat"
	"github.com/wcharczuk/go-chart/v2"
)

// Bars draws a bar chart, one bar per label.
func Bars(w io.Writer, labels []string, values []float64, opts Options) error {
	if len(labels) != len(values) {
		return &labstat.LengthMismatchError{Left: len(labels), Right: len(values)}
	}
	if len(values) == 0 {
		return labstat.ErrEmptySample
	}

	width, height := opts.size()

	bars := make([]chart.Value, 0, len(values))
	top := 0.0
	for i, v := range values {
		bars = append(bars, chart.Value{Label: labels[i], Value: v})
		top = math.Max(top, v)
	}
	if top == 0 {
		top = 1
	}

	graph := chart.BarChart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		YAxis: chart.YAxis{
			Name:  opts.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
