package labcsv

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/carbocation/labstat/growth"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// GrowthRecord is one line of a growth monitoring sheet. Time is either a
// number of minutes or a timestamp.
type GrowthRecord struct {
	Time     string  `csv:"time"`
	Quantity float64 `csv:"quantity"`
}

// ReadGrowth parses a growth monitoring sheet with "time" and "quantity"
// columns into a Monitor.
func ReadGrowth(name string, r io.Reader) (*growth.Monitor, error) {
	reader, err := newCSVReader(r)
	if err != nil {
		return nil, err
	}

	records := []*GrowthRecord{}
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, pfx.Err(err)
	}

	raw := make([]string, 0, len(records))
	quantities := make([]float64, 0, len(records))
	for _, rec := range records {
		raw = append(raw, rec.Time)
		quantities = append(quantities, rec.Quantity)
	}

	times, err := ParseTimes(raw)
	if err != nil {
		return nil, err
	}

	return growth.New(name, quantities, times)
}

// ParseTimes converts sample times to minutes. If every value is a number it
// is taken as minutes already. Otherwise every value must be a timestamp, and
// the result is the number of minutes elapsed since the first one.
func ParseTimes(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))

	numeric := true
	for i, v := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			numeric = false
			break
		}
		out[i] = f
	}
	if numeric {
		return out, nil
	}

	var first time.Time
	for i, v := range raw {
		t, err := dateparse.ParseAny(strings.TrimSpace(v))
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("line %d: %q is neither a number of minutes nor a timestamp: %w", i+2, v, err))
		}
		if i == 0 {
			first = t
		}
		out[i] = t.Sub(first).Minutes()
	}

	return out, nil
}
