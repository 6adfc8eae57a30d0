// Package config decodes the JSON description of a lab experiment: the
// measurement series, growth curves, plate counts and contingency tables to
// analyse, and where to write the results.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/inference"
	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

const DefaultAlpha = 0.05

type JSONConfig struct {
	ConfigPath   string            `json:"-"`
	OutputDir    string            `json:"output_dir"`
	Alpha        float64           `json:"alpha"`
	Measurements []Measurement     `json:"measurements"`
	Growth       []GrowthCurve     `json:"growth"`
	PlateCounts  []PlateCount      `json:"plate_counts"`
	Contingency  []ContingencyTest `json:"contingency"`
}

// Measurement is either inline Data or a delimited File with one series per
// column.
type Measurement struct {
	Name     string    `json:"name"`
	File     string    `json:"file"`
	Unit     string    `json:"unit"`
	Discrete bool      `json:"discrete"`
	Data     []float64 `json:"data"`
}

// GrowthCurve is either inline Times (minutes) and Quantities or a growth
// monitoring File.
type GrowthCurve struct {
	Name       string    `json:"name"`
	File       string    `json:"file"`
	Times      []float64 `json:"times"`
	Quantities []float64 `json:"quantities"`
}

// PlateCount maps dilution exponents to colony counts, with null for a plate
// that could not be counted, or points to a plate count File.
type PlateCount struct {
	Name      string           `json:"name"`
	File      string           `json:"file"`
	Dilutions map[int]null.Int `json:"dilutions"`
}

type ContingencyTest struct {
	Name     string      `json:"name"`
	Observed [][]float64 `json:"observed"`
}

func ParseJSONConfigFromPath(path string) (JSONConfig, error) {
	out := JSONConfig{ConfigPath: labstat.ExpandHome(path)}

	f, err := os.Open(out.ConfigPath)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}
		return out, pfx.Err(err)
	}

	if out.Alpha == 0 {
		out.Alpha = DefaultAlpha
	}

	// Interpret ~ if present, and read relative paths from the config's
	// directory
	base := filepath.Dir(out.ConfigPath)
	out.OutputDir = resolve(base, out.OutputDir)
	for i := range out.Measurements {
		out.Measurements[i].File = resolve(base, out.Measurements[i].File)
	}
	for i := range out.Growth {
		out.Growth[i].File = resolve(base, out.Growth[i].File)
	}
	for i := range out.PlateCounts {
		out.PlateCounts[i].File = resolve(base, out.PlateCounts[i].File)
	}

	return out, pfx.Err(out.Validate())
}

// Validate checks that every entry is named and holds exactly one source of
// data, and that alpha is tabulated.
func (c JSONConfig) Validate() error {
	if _, err := inference.Critical(c.Alpha, 1); err != nil {
		return err
	}

	for i, m := range c.Measurements {
		if err := oneSource("measurements", i, m.Name, m.File != "", len(m.Data) > 0); err != nil {
			return err
		}
	}

	for i, g := range c.Growth {
		if err := oneSource("growth", i, g.Name, g.File != "", len(g.Times) > 0 || len(g.Quantities) > 0); err != nil {
			return err
		}
		if g.File == "" && len(g.Times) != len(g.Quantities) {
			return fmt.Errorf("growth[%d] %q: %w", i, g.Name, &labstat.LengthMismatchError{Left: len(g.Quantities), Right: len(g.Times)})
		}
	}

	for i, p := range c.PlateCounts {
		if err := oneSource("plate_counts", i, p.Name, p.File != "", len(p.Dilutions) > 0); err != nil {
			return err
		}
	}

	for i, t := range c.Contingency {
		if t.Name == "" {
			return fmt.Errorf("contingency[%d] has no name", i)
		}
	}

	return nil
}

func oneSource(section string, i int, name string, hasFile, hasInline bool) error {
	if name == "" {
		return fmt.Errorf("%s[%d] has no name", section, i)
	}
	if hasFile == hasInline {
		return fmt.Errorf("%s[%d] %q: exactly one of a file or inline data must be given", section, i, name)
	}

	return nil
}

func resolve(base, path string) string {
	if path == "" || strings.HasPrefix(path, "gs://") {
		return path
	}

	path = labstat.ExpandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	return path
}
