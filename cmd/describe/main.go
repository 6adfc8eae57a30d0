// describe prints the descriptive statistics of every column of a delimited
// file of measurements, optionally combines two columns with + - * / and
// draws box plots, frequency charts or terminal histograms.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/labstat/compileinfo"
	"github.com/carbocation/labstat/labcsv"
	"github.com/carbocation/labstat/plot"
	"github.com/carbocation/labstat/series"
	"github.com/carbocation/labstat/units"
	"github.com/carbocation/pfx"
)

func main() {
	var input, unit, combine, outDir string
	var discrete, terminal, hideOutliers, freq, version bool
	var bins int

	flag.StringVar(&input, "file", "", "Delimited file (local or gs://, optionally compressed) with a header and one numeric column per series")
	flag.StringVar(&unit, "unit", "", "Unit shared by the columns (e.g. g/mL)")
	flag.BoolVar(&discrete, "discrete", false, "Treat the data as discrete and report the frequency of each modality")
	flag.StringVar(&combine, "combine", "", "(Optional) Combine two columns element-wise, written 'left op right' with op one of + - * / (e.g. 'mass / volume')")
	flag.StringVar(&outDir, "outdir", "", "(Optional) Directory where PNG box plots (and frequency charts with -freq) are written")
	flag.BoolVar(&hideOutliers, "hide-outliers", false, "Do not draw outliers on box plots")
	flag.BoolVar(&freq, "freq", false, "With -outdir, also write a frequency chart for each series")
	flag.BoolVar(&terminal, "terminal", false, "Print a text histogram of each series")
	flag.IntVar(&bins, "bins", 0, "Number of bins of the text histograms. 0 picks a number from the sample size.")
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

	sinks := make([]plot.Sink, 0, 2)
	if outDir != "" {
		sinks = append(sinks, plot.FileSink{Dir: outDir, HideOutliers: hideOutliers})
	}
	if terminal {
		sinks = append(sinks, plot.TerminalSink{W: os.Stdout, Bins: bins})
	}

	if freq && outDir == "" {
		log.Fatalln("-freq requires -outdir")
	}

	if err := run(input, unit, discrete, combine, sinks, outDir, freq); err != nil {
		log.Fatalln(err)
	}
}

func load(input, unit string, discrete bool, combine string) ([]series.Series, error) {
	ctx := context.Background()

	client, err := labcsv.ClientFor(ctx, input)
	if err != nil {
		return nil, err
	}
	if client != nil {
		defer client.Close()
	}

	f, err := labcsv.Open(ctx, input, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := labcsv.ReadSeries(f, unit, discrete)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if combine == "" {
		return all, nil
	}

	combined, err := combineColumns(all, combine)
	if err != nil {
		return nil, err
	}

	return append(all, combined), nil
}

func run(input, unit string, discrete bool, combine string, sinks []plot.Sink, outDir string, freq bool) error {
	all, err := load(input, unit, discrete, combine)
	if err != nil {
		return err
	}

	for _, s := range all {
		fmt.Println(s)
	}

	for _, sink := range sinks {
		if err := series.PlotAll(sink, all...); err != nil {
			return err
		}
	}

	if !freq {
		return nil
	}

	for _, s := range all {
		path := filepath.Join(outDir, fmt.Sprintf("Frequencies of %s.png", strings.ToLower(s.Name)))
		if err := writeFrequencies(path, s); err != nil {
			return err
		}
	}

	return nil
}

func writeFrequencies(path string, s series.Series) error {
	out, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if err := s.FrequencyPlot(buf); err != nil {
		return pfx.Err(err)
	}
	if err := buf.Flush(); err != nil {
		return pfx.Err(err)
	}
	log.Println("Wrote", path)

	return nil
}

// combineColumns evaluates "left op right" over the named series.
func combineColumns(all []series.Series, expr string) (series.Series, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return series.Series{}, fmt.Errorf("-combine expects 'left op right' separated by spaces, got %q", expr)
	}

	op, err := units.ParseOperator(fields[1])
	if err != nil {
		return series.Series{}, err
	}

	var left, right *series.Series
	for i := range all {
		switch all[i].Name {
		case fields[0]:
			left = &all[i]
		case fields[2]:
			right = &all[i]
		}
	}
	if fields[0] == fields[2] {
		right = left
	}
	if left == nil || right == nil {
		return series.Series{}, fmt.Errorf("-combine: columns %q and %q must both exist", fields[0], fields[2])
	}

	out, err := left.Apply(op, right)
	if err != nil {
		return series.Series{}, err
	}
	out.Name = expr

	return out, nil
}
