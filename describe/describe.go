// Package describe provides the numeric reductions used throughout labstat:
// central tendency, spread, quartiles and Tukey outliers. Means and standard
// deviations come from gonum; quartile based statistics come from
// montanaflynn/stats so that Q1 and Q3 are the medians of the lower and upper
// halves, which is what bench scientists expect from a box plot.
package describe

import (
	"math"
	"sort"

	"github.com/carbocation/labstat"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Mean is the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), labstat.ErrEmptySample
	}

	return stat.Mean(x, nil), nil
}

// StdDev is the sample (n-1) standard deviation of x. A single value has no
// spread to estimate and yields NaN.
func StdDev(x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), labstat.ErrEmptySample
	}
	if len(x) == 1 {
		return math.NaN(), nil
	}

	return stat.StdDev(x, nil), nil
}

// MeanStdDev returns both at once.
func MeanStdDev(x []float64) (mean, std float64, err error) {
	if mean, err = Mean(x); err != nil {
		return
	}
	std, err = StdDev(x)
	return
}

func Median(x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), labstat.ErrEmptySample
	}

	return stats.Median(x)
}

// Quartiles returns Q1, Q2 and Q3.
func Quartiles(x []float64) (stats.Quartiles, error) {
	if len(x) == 0 {
		return stats.Quartiles{}, labstat.ErrEmptySample
	}

	// With a single value there are no halves to take the median of.
	if len(x) == 1 {
		return stats.Quartiles{Q1: x[0], Q2: x[0], Q3: x[0]}, nil
	}

	return stats.Quartile(x)
}

func FirstQuartile(x []float64) (float64, error) {
	q, err := Quartiles(x)
	return q.Q1, err
}

func ThirdQuartile(x []float64) (float64, error) {
	q, err := Quartiles(x)
	return q.Q3, err
}

// IQR is the interquartile range, Q3-Q1.
func IQR(x []float64) (float64, error) {
	q, err := Quartiles(x)
	if err != nil {
		return math.NaN(), err
	}

	return q.Q3 - q.Q1, nil
}

// Outliers returns the values beyond the Tukey inner fences (Q1 - 1.5 IQR,
// Q3 + 1.5 IQR), mild and extreme alike, in ascending order.
func Outliers(x []float64) ([]float64, error) {
	lo, hi, err := fences(x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0)
	for _, v := range sortedCopy(x) {
		if v < lo || v > hi {
			out = append(out, v)
		}
	}

	return out, nil
}

// RemoveOutliers returns x without the values reported by Outliers. The
// original order is kept.
func RemoveOutliers(x []float64) ([]float64, error) {
	lo, hi, err := fences(x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(x))
	for _, v := range x {
		if v < lo || v > hi {
			continue
		}
		out = append(out, v)
	}

	return out, nil
}

func fences(x []float64) (lo, hi float64, err error) {
	q, err := Quartiles(x)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	iqr := q.Q3 - q.Q1

	return q.Q1 - 1.5*iqr, q.Q3 + 1.5*iqr, nil
}

// StandardError is the standard error of the mean, s/sqrt(n).
func StandardError(x []float64) (float64, error) {
	s, err := StdDev(x)
	if err != nil {
		return math.NaN(), err
	}

	return s / math.Sqrt(float64(len(x))), nil
}

func sortedCopy(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	sort.Float64s(out)

	return out
}
