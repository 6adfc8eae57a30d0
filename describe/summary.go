package describe

import (
	"fmt"

	"github.com/carbocation/labstat"
	"github.com/carbocation/pfx"
)

// Summary holds every derived statistic of a sample. It is always computed in
// one go by Summarize so that no field can go stale relative to the others.
type Summary struct {
	N               int
	Mean            float64
	StdDev          float64
	Median          float64
	FirstQuartile   float64
	ThirdQuartile   float64
	IQR             float64
	Outliers        []float64
	WithoutOutliers []float64
}

// Summarize computes all derived statistics of x.
func Summarize(x []float64) (Summary, error) {
	out := Summary{N: len(x)}

	var err error
	if out.Mean, out.StdDev, err = MeanStdDev(x); err != nil {
		return out, err
	}

	if out.Median, err = Median(x); err != nil {
		return out, pfx.Err(err)
	}

	q, err := Quartiles(x)
	if err != nil {
		return out, pfx.Err(err)
	}
	out.FirstQuartile, out.ThirdQuartile = q.Q1, q.Q3
	out.IQR = q.Q3 - q.Q1

	if out.Outliers, err = Outliers(x); err != nil {
		return out, err
	}

	if out.WithoutOutliers, err = RemoveOutliers(x); err != nil {
		return out, err
	}

	return out, nil
}

// Range is the [min ; max] dispersion of a sample.
type Range struct {
	Min float64
	Max float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%s ; %s]", Prettify(r.Min, 3), Prettify(r.Max, 3))
}

// Width is Max-Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Dispersion returns the smallest and largest values of x.
func Dispersion(x []float64) (Range, error) {
	if len(x) == 0 {
		return Range{}, labstat.ErrEmptySample
	}

	out := Range{Min: x[0], Max: x[0]}
	for _, v := range x[1:] {
		if v < out.Min {
			out.Min = v
		}
		if v > out.Max {
			out.Max = v
		}
	}

	return out, nil
}
