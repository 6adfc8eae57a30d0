package growth

import (
	"fmt"
	"sort"

	"github.com/jfcg/butter"
)

type Smoothing byte

const (
	NoSmoothing Smoothing = iota

	// TrimmedMedian replaces each value with the median of its neighborhood
	// (Window samples on each side), after discarding the Discard most
	// extreme values at each end of that neighborhood.
	TrimmedMedian

	// LowPass runs a first order Butterworth low-pass filter forwards and
	// then backwards so that the smoothed curve is not shifted in time.
	LowPass
)

// SmoothOptions configure Smooth. Cutoff is the normalized angular cutoff
// frequency used by LowPass and must lie in (0.0001, π).
type SmoothOptions struct {
	Method  Smoothing
	Window  int
	Discard int
	Cutoff  float64
}

// DefaultSmoothing looks two samples either side and drops the single most
// extreme value at each end.
var DefaultSmoothing = SmoothOptions{Method: TrimmedMedian, Window: 2, Discard: 1}

// Smooth returns a smoothed copy of values.
func Smooth(values []float64, opts SmoothOptions) ([]float64, error) {
	switch opts.Method {
	case NoSmoothing:
		return append([]float64(nil), values...), nil
	case TrimmedMedian:
		return trimmedMedian(values, opts.Window, opts.Discard)
	case LowPass:
		return lowPass(values, opts.Cutoff)
	}

	return nil, fmt.Errorf("unknown smoothing method %d", opts.Method)
}

// trimmedMedian drops fewer extremes where the neighborhood is too small to
// lose Discard values at each end, as at the edges of a short curve. A window
// of one or two values is reduced to its plain median.
func trimmedMedian(values []float64, window, discard int) ([]float64, error) {
	if window < 0 || discard < 0 {
		return nil, fmt.Errorf("window (%d) and discard (%d) must not be negative", window, discard)
	}

	out := make([]float64, len(values))

	for i := range values {
		lo, hi := i-window, i+window+1
		if lo < 0 {
			lo = 0
		}
		if hi > len(values) {
			hi = len(values)
		}

		adj := append([]float64(nil), values[lo:hi]...)
		d := discard
		for d > 0 && 2*d >= len(adj) {
			d--
		}
		kept, err := discardExtremes(adj, d)
		if err != nil {
			return nil, err
		}

		out[i] = median(kept)
	}

	return out, nil
}

func discardExtremes(values []float64, discardN int) ([]float64, error) {
	if 2*discardN >= len(values) {
		return nil, fmt.Errorf("Tried to discard %d from each end but only have %d", discardN, len(values))
	}

	sort.Float64s(values)

	return values[discardN : len(values)-discardN], nil
}

// median of sorted values.
func median(sorted []float64) float64 {
	mIdx := len(sorted) / 2

	if len(sorted)%2 == 1 {
		return sorted[mIdx]
	}

	return (sorted[mIdx-1] + sorted[mIdx]) / 2.0
}

// primeSamples is how many copies of the first value are fed to a fresh
// filter so that it does not start from zero.
const primeSamples = 64

func lowPass(values []float64, wc float64) ([]float64, error) {
	out := append([]float64(nil), values...)
	if len(out) == 0 {
		return out, nil
	}

	for pass := 0; pass < 2; pass++ {
		filt := butter.NewLowPass1(wc)
		if filt == nil {
			return nil, fmt.Errorf("Invalid low-pass filter (attempted wc=%f, but expect .0001 < wc && wc < 3.1415)", wc)
		}

		for i := 0; i < primeSamples; i++ {
			filt.Next(out[0])
		}
		for i, v := range out {
			out[i] = filt.Next(v)
		}

		reverse(out)
	}

	return out, nil
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
