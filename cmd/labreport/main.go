// labreport analyses a whole experiment described by a JSON file: measurement
// series, growth curves, plate counts and contingency tables. The report is
// printed and saved, with its charts, in the output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/labstat/compileinfo"
	"github.com/carbocation/labstat/config"
	"github.com/carbocation/labstat/labcsv"
	"github.com/carbocation/pfx"
)

func main() {
	var configPath string
	var version bool

	flag.StringVar(&configPath, "config", "", "Path to the JSON description of the experiment")
	flag.BoolVar(&version, "version", false, "Print build information and exit")
	flag.Parse()

	if version {
		fmt.Println(compileinfo.Get())
		return
	}

	if configPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.ParseJSONConfigFromPath(configPath)
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config.JSONConfig) error {
	ctx := context.Background()

	client, err := labcsv.ClientFor(ctx, inputPaths(cfg)...)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	out := io.Writer(os.Stdout)
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return pfx.Err(err)
		}

		reportPath := filepath.Join(cfg.OutputDir, "report.txt")
		f, err := os.Create(reportPath)
		if err != nil {
			return pfx.Err(err)
		}
		defer f.Close()
		defer log.Println("Wrote", reportPath)

		out = io.MultiWriter(os.Stdout, f)
	}

	r := &reporter{
		ctx:    ctx,
		client: client,
		cfg:    cfg,
		out:    out,
	}

	if err := r.measurements(); err != nil {
		return err
	}
	if err := r.growth(); err != nil {
		return err
	}
	if err := r.plateCounts(); err != nil {
		return err
	}
	if err := r.contingency(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", compileinfo.Get().Short())

	return nil
}

func inputPaths(cfg config.JSONConfig) []string {
	out := make([]string, 0)
	for _, m := range cfg.Measurements {
		out = append(out, m.File)
	}
	for _, g := range cfg.Growth {
		out = append(out, g.File)
	}
	for _, p := range cfg.PlateCounts {
		out = append(out, p.File)
	}

	return out
}
