package plot

import (
	"io"

	"github.com/carbocation/labstat"
	"github.com/wcharczuk/go-chart/v2"
)

// Line is one named y sequence of a TwinAxis chart.
type Line struct {
	Name string
	Unit string
	Y    []float64
}

// TwinAxis draws left against the primary y axis and right against the
// secondary one, sharing x.
func TwinAxis(w io.Writer, x []float64, left, right Line, opts Options) error {
	if len(left.Y) != len(x) {
		return &labstat.LengthMismatchError{Left: len(x), Right: len(left.Y)}
	}
	if len(right.Y) != len(x) {
		return &labstat.LengthMismatchError{Left: len(x), Right: len(right.Y)}
	}

	width, height := opts.size()

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: opts.XLabel,
		},
		YAxis: chart.YAxis{
			Name:  left.Unit,
			Range: paddedRange(left.Y),
		},
		YAxisSecondary: chart.YAxis{
			Name:  right.Unit,
			Range: paddedRange(right.Y),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    left.Name,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
				XValues: x,
				YValues: left.Y,
			},
			chart.ContinuousSeries{
				Name:    right.Name,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
				YAxis:   chart.YAxisSecondary,
				XValues: x,
				YValues: right.Y,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
