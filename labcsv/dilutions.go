package labcsv

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/labstat/platecount"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// CountCell is a colony count that may be marked not countable with "NC",
// "-" or an empty cell.
type CountCell struct {
	null.Int
}

func (c *CountCell) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "", "NC", "-":
		c.Int = null.Int{}
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is neither a colony count nor NC", s)
	}
	if n < 0 {
		return fmt.Errorf("%q is not a colony count: counts cannot be negative", s)
	}
	c.Int = null.IntFrom(n)

	return nil
}

func (c CountCell) MarshalCSV() (string, error) {
	if !c.Valid {
		return "NC", nil
	}
	return strconv.FormatInt(c.Int64, 10), nil
}

// DilutionRecord is one plate of a plate count sheet.
type DilutionRecord struct {
	Dilution string    `csv:"dilution"`
	Count    CountCell `csv:"count"`
}

// ReadDilutions parses a plate count sheet with "dilution" and "count"
// columns. See ParseDilution for the accepted dilution notations.
func ReadDilutions(name string, r io.Reader) (*platecount.Count, error) {
	reader, err := newCSVReader(r)
	if err != nil {
		return nil, err
	}

	records := []*DilutionRecord{}
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, pfx.Err(err)
	}

	dilutions := make(map[int]null.Int, len(records))
	for i, rec := range records {
		exp, err := ParseDilution(rec.Dilution)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("line %d: %w", i+2, err))
		}
		if _, exists := dilutions[exp]; exists {
			return nil, fmt.Errorf("line %d: dilution 10^%d is listed twice", i+2, exp)
		}
		dilutions[exp] = rec.Count.Int
	}

	return platecount.New(name, dilutions), nil
}

// ParseDilution returns the decimal exponent of a dilution written as an
// exponent ("-5"), a power of ten ("10^-5") or a factor ("1e-5", "0.00001").
// Positive integers are factors, so "1" is the undiluted sample.
func ParseDilution(s string) (int, error) {
	s = strings.TrimSpace(s)

	if exp, err := strconv.Atoi(s); err == nil && exp <= 0 {
		return exp, nil
	}

	if rest := strings.TrimPrefix(s, "10^"); rest != s {
		exp, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("invalid dilution %q: %w", s, err)
		}
		return exp, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v > 0) {
		return 0, fmt.Errorf("invalid dilution %q", s)
	}

	exp := math.Round(math.Log10(v))
	if math.Abs(math.Pow(10, exp)-v)/v > 1e-9 {
		return 0, fmt.Errorf("dilution %q is not a power of ten", s)
	}

	return int(exp), nil
}
