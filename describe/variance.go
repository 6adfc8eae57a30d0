package describe

import (
	"math"

	"github.com/carbocation/labstat"
	"gonum.org/v1/gonum/stat"
)

// UnbiasedVariance is the n-1 variance of an unweighted sample.
func UnbiasedVariance(x []float64) (float64, error) {
	if len(x) < 2 {
		if len(x) == 0 {
			return math.NaN(), labstat.ErrEmptySample
		}
		return math.NaN(), nil
	}

	return stat.Variance(x, nil), nil
}

// WeightedVariance is the variance of x around its weighted mean. When
// unbiased is set the sum of squares is divided by sum(w)-1 (frequency
// weights), otherwise by sum(w).
func WeightedVariance(x, w []float64, unbiased bool) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), labstat.ErrEmptySample
	}
	if len(w) != len(x) {
		return math.NaN(), &labstat.LengthMismatchError{Left: len(x), Right: len(w)}
	}

	if unbiased {
		return stat.Variance(x, w), nil
	}

	return stat.PopVariance(x, w), nil
}
