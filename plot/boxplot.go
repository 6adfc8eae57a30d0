package plot

import (
	"io"

	"github.com/carbocation/labstat/describe"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const boxHalfWidth = 0.25

// BoxPlot draws one Tukey box per sequence: the box spans Q1 to Q3 with a bar
// at the median, whiskers reach the most extreme values inside the 1.5 IQR
// fences, and values beyond the fences are drawn as dots unless hideOutliers
// is set.
func BoxPlot(w io.Writer, data [][]float64, names []string, hideOutliers bool, opts Options) error {
	width, height := opts.size()

	series := make([]chart.Series, 0, 5*len(data))
	ticks := make([]chart.Tick, 0, len(data)+2)
	ticks = append(ticks, chart.Tick{Value: 0.5})

	for i, values := range data {
		x := float64(i + 1)
		color := chart.GetDefaultColor(i)

		s, err := describe.Summarize(values)
		if err != nil {
			return err
		}

		lo, hi := whiskers(values, s)
		lineStyle := chart.Style{StrokeColor: color, StrokeWidth: 2}

		series = append(series,
			chart.ContinuousSeries{
				Style:   lineStyle,
				XValues: []float64{x - boxHalfWidth, x + boxHalfWidth, x + boxHalfWidth, x - boxHalfWidth, x - boxHalfWidth},
				YValues: []float64{s.FirstQuartile, s.FirstQuartile, s.ThirdQuartile, s.ThirdQuartile, s.FirstQuartile},
			},
			chart.ContinuousSeries{
				Style:   lineStyle,
				XValues: []float64{x - boxHalfWidth, x + boxHalfWidth},
				YValues: []float64{s.Median, s.Median},
			},
			chart.ContinuousSeries{
				Style:   lineStyle,
				XValues: []float64{x, x},
				YValues: []float64{s.ThirdQuartile, hi},
			},
			chart.ContinuousSeries{
				Style:   lineStyle,
				XValues: []float64{x, x},
				YValues: []float64{s.FirstQuartile, lo},
			},
		)

		if !hideOutliers && len(s.Outliers) > 0 {
			xs := make([]float64, len(s.Outliers))
			for j := range xs {
				xs[j] = x
			}
			series = append(series, chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColor:    drawing.ColorBlack,
				},
				XValues: xs,
				YValues: s.Outliers,
			})
		}

		label := ""
		if i < len(names) {
			label = names[i]
		}
		ticks = append(ticks, chart.Tick{Value: x, Label: label})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(data)) + 0.5})

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  opts.XLabel,
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  opts.YLabel,
			Range: paddedRange(data...),
		},
		Series: series,
	}

	return graph.Render(chart.PNG, w)
}

func whiskers(values []float64, s describe.Summary) (lo, hi float64) {
	lo, hi = s.FirstQuartile, s.ThirdQuartile
	for _, v := range s.WithoutOutliers {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
