package series

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/carbocation/labstat/describe"
	"github.com/carbocation/labstat/plot"
)

// Plot draws the series. If freq is non-nil, a frequency chart is written to
// it first: one bar per modality for discrete data, Sturges classes for
// continuous data. The box plot is then handed to sink.
func (s Series) Plot(sink plot.Sink, freq io.Writer) error {
	if freq != nil {
		if err := s.FrequencyPlot(freq); err != nil {
			return err
		}
	}

	return PlotAll(sink, s)
}

// FrequencyPlot writes a PNG of the distribution of the series. Continuous
// data has no meaningful modalities, so it is binned into classes and a
// warning is logged.
func (s Series) FrequencyPlot(w io.Writer) error {
	opts := plot.Options{
		Title:  fmt.Sprintf("Frequencies of %s", s.Name),
		XLabel: s.Unit,
	}

	if !s.Discrete {
		log.Printf("Warning: %s holds continuous data, plotting its classes instead of its modalities\n", s.Name)
		return plot.ClassChart(w, s.data, opts)
	}

	freq := s.Frequencies()
	modalities := s.Modalities()
	sort.Float64s(modalities)

	labels := make([]string, 0, len(modalities))
	shares := make([]float64, 0, len(modalities))
	for _, v := range modalities {
		labels = append(labels, describe.Prettify(v, 3))
		shares = append(shares, float64(freq[v])/float64(len(s.data))*100)
	}

	opts.YLabel = "Frequency (%)"

	return plot.Bars(w, labels, shares, opts)
}

// PlotAll renders several series side by side in one box plot. The y axis is
// labelled with the unit of the first series.
func PlotAll(sink plot.Sink, all ...Series) error {
	if len(all) == 0 {
		return nil
	}

	data := make([][]float64, 0, len(all))
	names := make([]string, 0, len(all))
	for _, s := range all {
		data = append(data, s.Values())
		names = append(names, s.Name)
	}

	return sink.Render(data, names, plot.Options{YLabel: all[0].Unit})
}
