package describe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatUncertainty renders "mean ± std" with a shared power of ten, taken
// from whichever of the two has the larger exponent:
//
//	FormatUncertainty(35400000, 1200000) == "(3.540 ± 0.120)e7"
//
// A NaN std (a single measurement) renders the mean alone.
func FormatUncertainty(mean, std float64) string {
	e := exponent(mean)

	if math.IsNaN(std) {
		return fmt.Sprintf("(%.3f)e%d", mean*math.Pow10(-e), e)
	}

	if es := exponent(std); es > e {
		e = es
	}

	return fmt.Sprintf("(%.3f ± %.3f)e%d", mean*math.Pow10(-e), std*math.Pow10(-e), e)
}

// exponent is the power of ten in the 3-digit scientific rendering of v.
func exponent(v float64) int {
	txt := strconv.FormatFloat(v, 'e', 3, 64)
	idx := strings.IndexByte(txt, 'e')
	if idx < 0 {
		return 0
	}

	e, err := strconv.Atoi(txt[idx+1:])
	if err != nil {
		return 0
	}

	return e
}

// Prettify renders v plainly, rounded to r decimals with trailing zeros
// dropped, as long as its magnitude stays within r powers of ten. Anything
// bigger or smaller is rendered in scientific notation with r digits.
func Prettify(v float64, r int) string {
	if v == 0 {
		return "0"
	}

	e := exponent(v)
	if e < 0 {
		e = -e
	}

	if e > r {
		return strconv.FormatFloat(v, 'e', r, 64)
	}

	msg := strconv.FormatFloat(v, 'f', r, 64)
	if strings.Contains(msg, ".") {
		msg = strings.TrimRight(msg, "0")
		msg = strings.TrimSuffix(msg, ".")
	}

	return msg
}
