// Package platecount estimates a microbial concentration (UFC/mL) from colony
// counts on plates seeded with a decimal dilution series.
package platecount

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/describe"
	"gopkg.in/guregu/null.v3"
)

// Only plates with a colony count in [MinCountable, MaxCountable] are
// considered statistically reliable.
const (
	MinCountable = 30
	MaxCountable = 600
)

// Count is a dilution series. Dilutions maps the decimal exponent of each
// dilution (-5 for 10^-5) to its colony count; a null count means the plate
// was not countable (NC).
type Count struct {
	Name      string
	Dilutions map[int]null.Int
}

// Estimate is a concentration in UFC/mL. StdDev is null when it cannot be
// estimated, which is the case when a single plate qualified.
type Estimate struct {
	Mean   float64
	StdDev null.Float
	N      int
}

func (e Estimate) String() string {
	if !e.StdDev.Valid {
		return describe.FormatUncertainty(e.Mean, math.NaN())
	}
	return describe.FormatUncertainty(e.Mean, e.StdDev.Float64)
}

func New(name string, dilutions map[int]null.Int) *Count {
	return &Count{Name: name, Dilutions: dilutions}
}

// Exponents returns the dilution exponents from the least to the most diluted.
func (c *Count) Exponents() []int {
	out := make([]int, 0, len(c.Dilutions))
	for k := range c.Dilutions {
		out = append(out, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

// Countable returns, in Exponents order, the dilutions whose plate has a
// count inside the validity window.
func (c *Count) Countable() []int {
	out := make([]int, 0, len(c.Dilutions))
	for _, d := range c.Exponents() {
		n := c.Dilutions[d]
		if !n.Valid || n.Int64 < MinCountable || n.Int64 > MaxCountable {
			continue
		}
		out = append(out, d)
	}

	return out
}

// Concentration converts every countable plate back to the undiluted sample,
// count * 10^-dilution, and returns the mean and standard deviation of those
// values. If no plate is countable, ErrEmptySample is returned.
func (c *Count) Concentration() (Estimate, error) {
	ufcs := make([]float64, 0, len(c.Dilutions))
	for _, d := range c.Countable() {
		ufcs = append(ufcs, float64(c.Dilutions[d].Int64)*math.Pow10(-d))
	}

	if len(ufcs) == 0 {
		return Estimate{}, labstat.ErrEmptySample
	}

	mean, std, err := describe.MeanStdDev(ufcs)
	if err != nil {
		return Estimate{}, err
	}

	out := Estimate{Mean: mean, N: len(ufcs)}
	if len(ufcs) > 1 {
		out.StdDev = null.FloatFrom(std)
	}

	return out, nil
}

// String renders the dilution series and, when one can be computed, the
// estimated concentration.
func (c *Count) String() string {
	header := fmt.Sprintf("------------- Plate count of %s -------------", c.Name)

	b := strings.Builder{}
	b.WriteString("\n" + header)
	for _, d := range c.Exponents() {
		count := "NC"
		if n := c.Dilutions[d]; n.Valid {
			count = fmt.Sprintf("%d", n.Int64)
		}
		fmt.Fprintf(&b, "\n| - Dilution 10^%d : %s UFC", d, count)
	}

	if est, err := c.Concentration(); err == nil {
		fmt.Fprintf(&b, "\n|\n| - Concentration : %s UFC/mL\n", strings.Replace(est.String(), ")e", ")x10^", 1))
	} else {
		fmt.Fprintf(&b, "\n|\n| - Concentration : no plate between %d and %d colonies\n", MinCountable, MaxCountable)
	}
	b.WriteString(strings.Repeat("-", len([]rune(header))))

	return b.String()
}
