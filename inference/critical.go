package inference

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxDDoF is the largest number of degrees of freedom in the critical table.
const MaxDDoF = 30

// Alphas are the risk levels of the critical table.
var Alphas = []float64{0.9, 0.7, 0.5, 0.3, 0.2, 0.1, 0.05, 0.02, 0.01, 0.001}

// criticalTable[alpha][ddof] is the chi-square value exceeded with
// probability alpha. It is filled once and only read afterwards.
var criticalTable = buildCriticalTable()

func buildCriticalTable() map[float64][]float64 {
	out := make(map[float64][]float64, len(Alphas))
	for _, alpha := range Alphas {
		row := make([]float64, MaxDDoF+1)
		for ddof := 1; ddof <= MaxDDoF; ddof++ {
			row[ddof] = distuv.ChiSquared{K: float64(ddof)}.Quantile(1 - alpha)
		}
		out[alpha] = row
	}

	return out
}

// Critical returns the tabulated chi-square critical value. alpha must be one
// of Alphas and ddof within [1, MaxDDoF].
func Critical(alpha float64, ddof int) (float64, error) {
	row, exists := criticalTable[alpha]
	if !exists {
		alphas := make([]string, 0, len(Alphas))
		sorted := append([]float64(nil), Alphas...)
		sort.Float64s(sorted)
		for _, a := range sorted {
			alphas = append(alphas, fmt.Sprint(a))
		}
		return 0, fmt.Errorf("alpha must be in %s, got %v", strings.Join(alphas, ", "), alpha)
	}

	if ddof < 1 || ddof > MaxDDoF {
		return 0, fmt.Errorf("ddof must be an integer between 1 and %d, got %d", MaxDDoF, ddof)
	}

	return row[ddof], nil
}

// Check reports whether x2 stays at or below the critical value, ie whether
// the null hypothesis is kept at risk alpha.
func Check(alpha float64, ddof int, x2 float64) (bool, error) {
	crit, err := Critical(alpha, ddof)
	if err != nil {
		return false, err
	}

	return crit >= x2, nil
}
