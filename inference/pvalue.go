package inference

import (
	"math"

	"github.com/BenLubar/memoize"
	fet "github.com/glycerine/golang-fisher-exact"
	"github.com/tokenme/probab/dst"
)

var memoizedPValue = memoize.Memoize(PValue)

// PValue is the upper tail probability of a chi-square statistic. The CDF
// panics on some degenerate inputs, in which case NaN is returned.
func PValue(x2 float64, ddof int) (p float64) {
	p = math.NaN()
	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(int64(ddof))(x2)

	return
}

// FisherExact is the two-sided p-value of Fisher's exact test on the 2x2
// table
//
//	a b
//	c d
func FisherExact(a, b, c, d int) float64 {
	_, _, _, two := fet.FisherExactTest(a, b, c, d)
	return two
}

// Independence tests a 2x2 table of counts for independence. The chi-square
// approximation is used when every expected count is at least MinExpected;
// otherwise the exact test is run instead and exact is true.
func Independence(a, b, c, d int) (p float64, exact bool, err error) {
	x2, ddof, theo, err := Contingency([][]float64{
		{float64(a), float64(b)},
		{float64(c), float64(d)},
	})
	if err != nil {
		return 0, false, err
	}

	for _, row := range theo {
		for _, v := range row {
			if v < MinExpected {
				return FisherExact(a, b, c, d), true, nil
			}
		}
	}

	return memoizedPValue.(func(float64, int) float64)(x2, ddof), false, nil
}
