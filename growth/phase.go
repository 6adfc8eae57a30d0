package growth

import (
	"math"

	"github.com/carbocation/labstat"
	"github.com/carbocation/runningvariance"
)

// Phase summarizes the intervals during which growth was observed.
type Phase struct {
	Start float64
	End   float64

	Intervals int
	MeanRate  float64
	RateSD    float64

	// DoublingTime is ln(2) / MeanRate.
	DoublingTime float64
}

// ExponentialPhase finds the longest run of consecutive intervals with a
// non-zero rate and returns the mean and standard deviation of the rates in
// it. With several runs of equal length the earliest wins.
func (m *Monitor) ExponentialPhase() (Phase, error) {
	bestStart, bestLen := 0, 0
	for i := 1; i < len(m.Rates); {
		if m.Rates[i] == 0 {
			i++
			continue
		}

		j := i
		for j < len(m.Rates) && m.Rates[j] > 0 {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}

	if bestLen == 0 {
		return Phase{}, labstat.ErrEmptySample
	}

	rs := runningvariance.NewRunningStat()
	for i := bestStart; i < bestStart+bestLen; i++ {
		rs.Push(m.Rates[i])
	}

	out := Phase{
		Start:     m.Times[bestStart-1],
		End:       m.Times[bestStart+bestLen-1],
		Intervals: bestLen,
		MeanRate:  rs.Mean(),
		RateSD:    math.NaN(),
	}
	if bestLen > 1 {
		out.RateSD = rs.StandardDeviation()
	}
	out.DoublingTime = math.Ln2 / out.MeanRate

	return out, nil
}
