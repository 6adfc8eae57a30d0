package inference

import (
	"math"

	"github.com/carbocation/labstat"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PolyFit returns the least squares coefficients of a polynomial of the
// given degree, lowest order first.
func PolyFit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, &labstat.LengthMismatchError{Left: len(x), Right: len(y)}
	}
	if degree < 0 {
		return nil, &labstat.DomainError{Op: "polynomial degree", Value: float64(degree)}
	}
	if len(x) <= degree {
		return nil, &labstat.DomainError{Op: "polynomial fit needs more points than its degree", Index: degree, Value: float64(len(x))}
	}

	vander := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		for j := 0; j <= degree; j++ {
			vander.Set(i, j, math.Pow(xi, float64(j)))
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(vander, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]float64, degree+1)
	for j := range out {
		out[j] = coef.AtVec(j)
	}

	return out, nil
}

// Polynomial evaluates coef (lowest order first) at x.
func Polynomial(coef []float64, x float64) float64 {
	y := 0.0
	for j := len(coef) - 1; j >= 0; j-- {
		y = y*x + coef[j]
	}
	return y
}

// RSquared fits a polynomial of the given degree to (x, y) and returns the
// share of the variance of y explained by the fit.
func RSquared(x, y []float64, degree int) (float64, error) {
	coef, err := PolyFit(x, y, degree)
	if err != nil {
		return 0, err
	}

	ybar := stat.Mean(y, nil)

	ssreg, sstot := 0.0, 0.0
	for i, xi := range x {
		ssreg += math.Pow(Polynomial(coef, xi)-ybar, 2)
		sstot += math.Pow(y[i]-ybar, 2)
	}

	if sstot == 0 {
		return 0, &labstat.DomainError{Op: "r squared of a constant", Value: ybar}
	}

	return ssreg / sstot, nil
}
