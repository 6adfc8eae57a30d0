package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/config"
	"github.com/carbocation/labstat/growth"
	"github.com/carbocation/labstat/inference"
	"github.com/carbocation/labstat/labcsv"
	"github.com/carbocation/labstat/platecount"
	"github.com/carbocation/labstat/plot"
	"github.com/carbocation/labstat/series"
	"github.com/carbocation/pfx"
)

type reporter struct {
	ctx    context.Context
	client *storage.Client
	cfg    config.JSONConfig
	out    io.Writer
}

func (r *reporter) open(path string) (io.ReadCloser, error) {
	return labcsv.Open(r.ctx, path, r.client)
}

// writeChart draws a chart into a file of the output directory. Nothing is
// written when no output directory is configured or the chart cannot be drawn.
func (r *reporter) writeChart(name string, draw func(io.Writer) error) error {
	if r.cfg.OutputDir == "" {
		return nil
	}

	path := filepath.Join(r.cfg.OutputDir, strings.ReplaceAll(name, string(os.PathSeparator), "-"))

	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return pfx.Err(err)
	}
	log.Println("Wrote", path)

	return nil
}

func (r *reporter) measurements() error {
	all := make([]series.Series, 0, len(r.cfg.Measurements))

	for _, m := range r.cfg.Measurements {
		if m.File == "" {
			s, err := series.New(m.Name, m.Data, m.Unit, m.Discrete)
			if err != nil {
				return pfx.Err(fmt.Errorf("%s: %w", m.Name, err))
			}
			all = append(all, s)
			continue
		}

		f, err := r.open(m.File)
		if err != nil {
			return err
		}
		columns, err := labcsv.ReadSeries(f, m.Unit, m.Discrete)
		f.Close()
		if err != nil {
			return pfx.Err(fmt.Errorf("%s: %w", m.File, err))
		}
		for i := range columns {
			columns[i].Name = m.Name + " " + columns[i].Name
		}
		all = append(all, columns...)
	}

	for _, s := range all {
		fmt.Fprintln(r.out, s)

		if ci, err := inference.QuantitativeConfidence(s.Mean, s.StdDev*s.StdDev, s.Len(), inference.U95); err == nil && s.Len() > 1 {
			fmt.Fprintf(r.out, "95%% confidence interval of the mean of %s: %s\n", s.Name, ci)
		}

		if !s.Discrete {
			continue
		}
		if err := r.writeChart(fmt.Sprintf("Frequencies of %s.png", strings.ToLower(s.Name)), s.FrequencyPlot); err != nil {
			return err
		}
	}

	if len(all) == 0 || r.cfg.OutputDir == "" {
		return nil
	}

	return series.PlotAll(plot.FileSink{Dir: r.cfg.OutputDir}, all...)
}

func (r *reporter) growth() error {
	for _, g := range r.cfg.Growth {
		var m *growth.Monitor
		var err error

		if g.File == "" {
			m, err = growth.New(g.Name, g.Quantities, g.Times)
		} else {
			var f io.ReadCloser
			if f, err = r.open(g.File); err != nil {
				return err
			}
			m, err = labcsv.ReadGrowth(g.Name, f)
			f.Close()
		}
		if err != nil {
			return pfx.Err(fmt.Errorf("%s: %w", g.Name, err))
		}

		fmt.Fprintln(r.out, m)

		if phase, err := m.ExponentialPhase(); err == nil {
			fmt.Fprintf(r.out, "Exponential phase of %s: %s to %s, Td=%s\n", m.Name,
				growth.FormatMinutes(phase.Start), growth.FormatMinutes(phase.End), growth.FormatMinutes(math.Round(phase.DoublingTime)))
		} else if errors.Is(err, labstat.ErrEmptySample) {
			fmt.Fprintf(r.out, "No growth was observed for %s\n", m.Name)
		}

		err = r.writeChart(fmt.Sprintf("Growth of %s.png", strings.ToLower(m.Name)), func(w io.Writer) error {
			return m.Plot(w, growth.PlotOptions{Smoothing: growth.DefaultSmoothing, Title: true})
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *reporter) plateCounts() error {
	for _, p := range r.cfg.PlateCounts {
		count := platecount.New(p.Name, p.Dilutions)

		if p.File != "" {
			f, err := r.open(p.File)
			if err != nil {
				return err
			}
			count, err = labcsv.ReadDilutions(p.Name, f)
			f.Close()
			if err != nil {
				return pfx.Err(fmt.Errorf("%s: %w", p.File, err))
			}
		}

		fmt.Fprintln(r.out, count)
	}

	return nil
}

func (r *reporter) contingency() error {
	for _, c := range r.cfg.Contingency {
		x2, ddof, _, err := inference.Contingency(c.Observed)
		if err != nil {
			return pfx.Err(fmt.Errorf("%s: %w", c.Name, err))
		}

		kept, err := inference.Check(r.cfg.Alpha, ddof, x2)
		if err != nil {
			return pfx.Err(fmt.Errorf("%s: %w", c.Name, err))
		}

		decision := "dependent"
		if kept {
			decision = "independent"
		}

		fmt.Fprintf(r.out, "\nIndependence test %s: X2=%.4f, ddof=%d, P=%.4g -> %s at alpha=%v\n",
			c.Name, x2, ddof, inference.PValue(x2, ddof), decision, r.cfg.Alpha)
	}

	return nil
}
