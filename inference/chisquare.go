package inference

import (
	"fmt"
	"math"
	"strings"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/describe"
)

// MinExpected is the smallest expected count for which the chi-square
// approximation is trusted.
const MinExpected = 5

// LowExpectedError lists the expected counts that fell below MinExpected.
type LowExpectedError struct {
	Expected []float64
}

func (e *LowExpectedError) Error() string {
	vals := make([]string, 0, len(e.Expected))
	for _, v := range e.Expected {
		vals = append(vals, describe.Prettify(v, 3))
	}
	return fmt.Sprintf("np_i < %d for %s", MinExpected, strings.Join(vals, ", "))
}

func (e *LowExpectedError) Unwrap() error {
	return labstat.ErrLowExpected
}

// Positioning is the chi-square goodness of fit of observed counts against
// theoretical counts, sum((obs-theo)^2/theo). Every theoretical count must be
// at least MinExpected.
func Positioning(obs, theo []float64) (float64, error) {
	if len(obs) != len(theo) {
		return 0, &labstat.LengthMismatchError{Left: len(obs), Right: len(theo)}
	}
	if len(obs) == 0 {
		return 0, labstat.ErrEmptySample
	}

	low := make([]float64, 0)
	for _, t := range theo {
		if t < MinExpected {
			low = append(low, t)
		}
	}
	if len(low) > 0 {
		return 0, &LowExpectedError{Expected: low}
	}

	x2 := 0.0
	for i := range obs {
		x2 += math.Pow(obs[i]-theo[i], 2) / theo[i]
	}

	return x2, nil
}

// Contingency runs a chi-square test of independence on a table of observed
// counts. The expected count of each cell is row total * column total /
// grand total. It returns the statistic, its degrees of freedom
// (rows-1)*(cols-1) and the table of expected counts.
func Contingency(obs [][]float64) (x2 float64, ddof int, theo [][]float64, err error) {
	if len(obs) == 0 || len(obs[0]) == 0 {
		return 0, 0, nil, labstat.ErrEmptySample
	}

	nCols := len(obs[0])
	rows := make([]float64, len(obs))
	cols := make([]float64, nCols)
	total := 0.0
	for i, row := range obs {
		if len(row) != nCols {
			return 0, 0, nil, &labstat.LengthMismatchError{Left: nCols, Right: len(row)}
		}
		for j, v := range row {
			rows[i] += v
			cols[j] += v
			total += v
		}
	}

	for i, r := range rows {
		if r == 0 {
			return 0, 0, nil, &labstat.DomainError{Op: "row total", Index: i, Value: r}
		}
	}
	for j, c := range cols {
		if c == 0 {
			return 0, 0, nil, &labstat.DomainError{Op: "column total", Index: j, Value: c}
		}
	}

	theo = make([][]float64, len(obs))
	for i := range obs {
		theo[i] = make([]float64, nCols)
		for j := range obs[i] {
			theo[i][j] = rows[i] * cols[j] / total
			x2 += math.Pow(obs[i][j]-theo[i][j], 2) / theo[i][j]
		}
	}

	return x2, (len(obs) - 1) * (nCols - 1), theo, nil
}
