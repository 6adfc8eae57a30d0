package labcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/labstat"
	"github.com/carbocation/labstat/series"
	"github.com/carbocation/pfx"
)

// Columns is a delimited file of numeric columns, keyed by header.
type Columns struct {
	Names  []string
	Values map[string][]float64
}

// newCSVReader reads all of r and returns a csv reader over it using the
// delimiter detected from its content.
func newCSVReader(r io.Reader) (*csv.Reader, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = labstat.DetermineDelimiter(bytes.NewReader(content))
	reader.LazyQuotes = true

	return reader, nil
}

// ReadColumns parses a file whose first line is a header and whose other
// lines hold numbers. Empty cells are skipped, so columns may have different
// lengths.
func ReadColumns(r io.Reader) (*Columns, error) {
	reader, err := newCSVReader(r)
	if err != nil {
		return nil, err
	}
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, labstat.ErrEmptySample
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	out := &Columns{
		Names:  make([]string, 0, len(header)),
		Values: make(map[string][]float64, len(header)),
	}
	for _, name := range header {
		name = strings.TrimSpace(name)
		out.Names = append(out.Names, name)
		out.Values[name] = make([]float64, 0)
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" || i >= len(out.Names) {
				continue
			}

			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, pfx.Err(fmt.Errorf("line %d, column %q: %w", line, out.Names[i], err))
			}
			out.Values[out.Names[i]] = append(out.Values[out.Names[i]], v)
		}
	}

	return out, nil
}

// ReadSeries turns every non-empty column of r into a measurement series with
// the given unit.
func ReadSeries(r io.Reader, unit string, discrete bool) ([]series.Series, error) {
	cols, err := ReadColumns(r)
	if err != nil {
		return nil, err
	}

	out := make([]series.Series, 0, len(cols.Names))
	for _, name := range cols.Names {
		if len(cols.Values[name]) == 0 {
			continue
		}

		s, err := series.New(name, cols.Values[name], unit, discrete)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, labstat.ErrEmptySample
	}

	return out, nil
}
