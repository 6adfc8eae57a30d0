package plot

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/labstat"
)

// Class is one bin of a frequency distribution.
type Class struct {
	Lo    float64
	Hi    float64
	Count int
}

func (c Class) String() string {
	return fmt.Sprintf("[%.2f, %.2f[", c.Lo, c.Hi)
}

// SturgesClasses is the number of classes used for n continuous values,
// 1 + ln(n), truncated.
func SturgesClasses(n int) int {
	if n < 1 {
		return 1
	}
	return int(1 + math.Log(float64(n)))
}

// Classes bins continuous data into SturgesClasses equal-width classes. Each
// class is half open except the last, which also holds the maximum.
func Classes(data []float64) ([]Class, error) {
	if len(data) == 0 {
		return nil, labstat.ErrEmptySample
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]

	if lo == hi {
		return []Class{{Lo: lo, Hi: hi, Count: len(data)}}, nil
	}

	k := SturgesClasses(len(data))
	step := (hi - lo) / float64(k)

	out := make([]Class, k)
	for i := range out {
		out[i].Lo = lo + step*float64(i)
		out[i].Hi = lo + step*float64(i+1)
	}

	for _, v := range sorted {
		i := int((v - lo) / step)
		if i >= k {
			i = k - 1
		}
		out[i].Count++
	}

	return out, nil
}

// ClassChart draws the share of values falling in each class.
func ClassChart(w io.Writer, data []float64, opts Options) error {
	classes, err := Classes(data)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(classes))
	shares := make([]float64, 0, len(classes))
	for _, c := range classes {
		labels = append(labels, c.String())
		shares = append(shares, float64(c.Count)/float64(len(data))*100)
	}

	if opts.YLabel == "" {
		opts.YLabel = "Frequency (%)"
	}

	return Bars(w, labels, shares, opts)
}

// TextHistogram prints a histogram of data with the given number of bins to
// w, scaled to 40 columns.
func TextHistogram(w io.Writer, data []float64, bins int) error {
	if len(data) == 0 {
		return labstat.ErrEmptySample
	}
	if bins < 1 {
		bins = SturgesClasses(len(data))
	}

	hist := histogram.Hist(bins, data)

	return histogram.Fprint(w, hist, histogram.Linear(40))
}
