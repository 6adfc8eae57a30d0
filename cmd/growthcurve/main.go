// growthcurve computes the growth rate and doubling time between successive
// samples of a culture, finds its exponential phase and optionally plots µ
// and Td against time.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/labstat/compileinfo"
	"github.com/carbocation/labstat/growth"
	"github.com/carbocation/labstat/labcsv"
	"github.com/carbocation/pfx"
)

func main() {
	var input, name, plotPath, smoothing string
	var window, discard int
	var cutoff float64
	var version bool

	flag.StringVar(&input, "file", "", "Delimited file (local or gs://, optionally compressed) with a header and the columns 'time' (minutes or timestamps) and 'quantity'")
	flag.StringVar(&name, "name", "", "Name of the culture. Defaults to the file name.")
	flag.StringVar(&plotPath, "plot", "", "(Optional) Path of a PNG plot of µ and Td against time")
	flag.StringVar(&smoothing, "smooth", "median", "Smoothing applied to the plotted curves: 'none', 'median' or 'lowpass'")
	flag.IntVar(&window, "window", growth.DefaultSmoothing.Window, "For -smooth=median, number of adjacent samples on each side")
	flag.IntVar(&discard, "discard", growth.DefaultSmoothing.Discard, "For -smooth=median, number of extreme values dropped at each end of the window")
	flag.Float64Var(&cutoff, "cutoff", 0.5, "For -smooth=lowpass, normalized angular cutoff frequency in (0.0001, π)")
	flag.BoolVar(&version, "version", false, "Print build information and exit")
	flag.Parse()

	if version {
		fmt.Println(compileinfo.Get())
		return
	}

	if input == "" {
		flag.Usage()
		os.Exit(1)
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	opts := growth.SmoothOptions{Window: window, Discard: discard, Cutoff: cutoff}
	switch smoothing {
	case "none":
		opts.Method = growth.NoSmoothing
	case "median":
		opts.Method = growth.TrimmedMedian
	case "lowpass":
		opts.Method = growth.LowPass
	default:
		log.Fatalf("Unknown -smooth %q\n", smoothing)
	}

	if err := run(input, name, plotPath, opts); err != nil {
		log.Fatalln(err)
	}
}

func run(input, name, plotPath string, opts growth.SmoothOptions) error {
	ctx := context.Background()

	client, err := labcsv.ClientFor(ctx, input)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	f, err := labcsv.Open(ctx, input, client)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := labcsv.ReadGrowth(name, f)
	if err != nil {
		return pfx.Err(err)
	}
	log.Printf("Loaded %d samples from %s\n", m.Len(), input)

	fmt.Println(m)

	if phase, err := m.ExponentialPhase(); err != nil {
		log.Println("No growth was observed")
	} else {
		sd := "-"
		if !math.IsNaN(phase.RateSD) {
			sd = fmt.Sprintf("%.3f", phase.RateSD*100)
		}
		fmt.Printf("Exponential phase from %s to %s (%d intervals): µ=%.3f ± %s %%/min, Td=%s\n",
			growth.FormatMinutes(phase.Start), growth.FormatMinutes(phase.End), phase.Intervals,
			phase.MeanRate*100, sd, growth.FormatMinutes(math.Round(phase.DoublingTime)))
	}

	if plotPath == "" {
		return nil
	}

	out, err := os.Create(plotPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if err := m.Plot(buf, growth.PlotOptions{Smoothing: opts, Title: true}); err != nil {
		return pfx.Err(err)
	}
	if err := buf.Flush(); err != nil {
		return pfx.Err(err)
	}
	log.Println("Wrote", plotPath)

	return nil
}
