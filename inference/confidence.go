package inference

import (
	"fmt"
	"math"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/describe"
)

// U95 is the standard normal quantile of a two-sided 95% interval.
const U95 = 1.96

// Interval is a closed confidence interval.
type Interval struct {
	Lo float64
	Hi float64
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s ; %s]", describe.Prettify(i.Lo, 3), describe.Prettify(i.Hi, 3))
}

func (i Interval) Contains(v float64) bool {
	return v >= i.Lo && v <= i.Hi
}

// QuantitativeConfidence is the interval center ± u*sqrt(variance/n) for the
// mean of n measurements.
func QuantitativeConfidence(center, variance float64, n int, u float64) (Interval, error) {
	if n < 1 {
		return Interval{}, labstat.ErrEmptySample
	}
	if variance < 0 {
		return Interval{}, &labstat.DomainError{Op: "variance", Value: variance}
	}

	half := u * math.Sqrt(variance/float64(n))

	return Interval{Lo: center - half, Hi: center + half}, nil
}

// ProbabilisticConfidence is the interval p ± u*sqrt(p(1-p)/n) for a
// proportion p observed over n trials.
func ProbabilisticConfidence(p float64, n int, u float64) (Interval, error) {
	if n < 1 {
		return Interval{}, labstat.ErrEmptySample
	}
	if p < 0 || p > 1 {
		return Interval{}, &labstat.DomainError{Op: "proportion", Value: p}
	}

	half := u * math.Sqrt(p*(1-p)/float64(n))

	return Interval{Lo: p - half, Hi: p + half}, nil
}
