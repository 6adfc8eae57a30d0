package inference

import (
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
	"github.com/carbocation/labstat"
)

// The returned *big.Int is shared between callers and must not be modified.
var memoizedFactorial = memoize.Memoize(factorial)

// factorial is the product of the integers in [a, b], 1 when the range is
// empty.
func factorial(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}

func fact(a, b int64) *big.Int {
	return memoizedFactorial.(func(int64, int64) *big.Int)(a, b)
}

// Poisson evaluates the Poisson law of the given mean at each key,
// exp(-mean) * mean^k / k!.
func Poisson(keys []int, mean float64) (map[int]float64, error) {
	if mean < 0 || math.IsNaN(mean) {
		return nil, &labstat.DomainError{Op: "poisson mean", Value: mean}
	}

	out := make(map[int]float64, len(keys))
	for i, k := range keys {
		if k < 0 {
			return nil, &labstat.DomainError{Op: "poisson key", Index: i, Value: float64(k)}
		}

		num := big.NewFloat(1)
		m := big.NewFloat(mean)
		for j := 0; j < k; j++ {
			num.Mul(num, m)
		}
		ratio, _ := num.Quo(num, new(big.Float).SetInt(fact(1, int64(k)))).Float64()

		out[k] = math.Exp(-mean) * ratio
	}

	return out, nil
}

// Binomial is the probability of exactly x successes in n Bernoulli trials of
// probability p.
func Binomial(x, n int, p float64) (float64, error) {
	if x < 0 || x > n {
		return 0, &labstat.DomainError{Op: "binomial successes", Index: n, Value: float64(x)}
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, &labstat.DomainError{Op: "binomial probability", Value: p}
	}

	// n! / ((n-x)! x!) == (n-x+1)...n / x!
	comb := new(big.Rat).SetFrac(fact(int64(n-x+1), int64(n)), fact(1, int64(x)))
	c, _ := comb.Float64()

	return c * math.Pow(p, float64(x)) * math.Pow(1-p, float64(n-x)), nil
}
