// chi2 runs chi-square tests from the command line: a goodness of fit of
// observed counts against theoretical counts (or against a Poisson law fitted
// to the counts), or a test of independence on a contingency table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/labstat/compileinfo"
	"github.com/carbocation/labstat/inference"
	"github.com/carbocation/pfx"
)

func main() {
	var obs, theo, table string
	var alpha float64
	var ddof int
	var poisson, version bool

	flag.StringVar(&obs, "obs", "", "Comma-separated observed counts for a goodness of fit test")
	flag.StringVar(&theo, "theo", "", "Comma-separated theoretical counts, one per -obs value")
	flag.BoolVar(&poisson, "poisson", false, "Instead of -theo, fit a Poisson law to -obs, read as the number of observations of 0, 1, 2... events")
	flag.StringVar(&table, "table", "", "Contingency table for a test of independence, rows separated by ';' and columns by ',' (e.g. '10,20;30,40')")
	flag.Float64Var(&alpha, "alpha", 0.05, fmt.Sprintf("Risk level, one of %v", inference.Alphas))
	flag.IntVar(&ddof, "ddof", 0, "Degrees of freedom of a goodness of fit test. 0 derives them from the number of classes.")
	flag.BoolVar(&version, "version", false, "Print build information and exit")
	flag.Parse()

	if version {
		fmt.Println(compileinfo.Get())
		return
	}

	var err error
	switch {
	case table != "":
		err = runContingency(table, alpha)
	case obs != "" && (theo != "" || poisson):
		err = runPositioning(obs, theo, poisson, ddof, alpha)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalln(err)
	}
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, pfx.Err(err)
		}
		out = append(out, v)
	}

	return out, nil
}

// poissonExpected fits a Poisson law to counts of 0, 1, 2... events and
// returns the expected count of each class.
func poissonExpected(observed []float64) ([]float64, error) {
	total, events := 0.0, 0.0
	keys := make([]int, len(observed))
	for k, n := range observed {
		keys[k] = k
		total += n
		events += float64(k) * n
	}
	if total == 0 {
		return nil, fmt.Errorf("no observation to fit a Poisson law to")
	}

	law, err := inference.Poisson(keys, events/total)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(observed))
	for k := range observed {
		out[k] = law[k] * total
	}
	log.Printf("Fitted a Poisson law of mean %.3f\n", events/total)

	return out, nil
}

func runPositioning(obsArg, theoArg string, poisson bool, ddof int, alpha float64) error {
	observed, err := parseFloats(obsArg)
	if err != nil {
		return err
	}

	var expected []float64
	if poisson {
		if expected, err = poissonExpected(observed); err != nil {
			return err
		}
	} else if expected, err = parseFloats(theoArg); err != nil {
		return err
	}

	x2, err := inference.Positioning(observed, expected)
	if err != nil {
		return err
	}

	if ddof == 0 {
		// One constraint for the total, and one more for a fitted mean.
		ddof = len(observed) - 1
		if poisson {
			ddof--
		}
	}

	return report(x2, ddof, alpha)
}

func runContingency(tableArg string, alpha float64) error {
	rows := strings.Split(tableArg, ";")
	observed := make([][]float64, 0, len(rows))
	for _, r := range rows {
		row, err := parseFloats(r)
		if err != nil {
			return err
		}
		observed = append(observed, row)
	}

	x2, ddof, theo, err := inference.Contingency(observed)
	if err != nil {
		return err
	}

	fmt.Println("Expected counts:")
	for _, row := range theo {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%.2f", v))
		}
		fmt.Println("\t" + strings.Join(cells, "\t"))
	}

	if len(observed) == 2 && len(observed[0]) == 2 {
		p, exact, err := inference.Independence(int(observed[0][0]), int(observed[0][1]), int(observed[1][0]), int(observed[1][1]))
		if err != nil {
			return err
		}
		method := "chi-square"
		if exact {
			method = "Fisher's exact test"
		}
		fmt.Printf("P (%s): %.4g\n", method, p)
	}

	return report(x2, ddof, alpha)
}

func report(x2 float64, ddof int, alpha float64) error {
	fmt.Printf("X2: %.4f\nDegrees of freedom: %d\nP: %.4g\n", x2, ddof, inference.PValue(x2, ddof))

	critical, err := inference.Critical(alpha, ddof)
	if err != nil {
		return err
	}

	kept, err := inference.Check(alpha, ddof, x2)
	if err != nil {
		return err
	}

	decision := "rejected"
	if kept {
		decision = "kept"
	}
	fmt.Printf("Critical value at alpha=%v: %.4f\nThe null hypothesis is %s\n", alpha, critical, decision)

	return nil
}
