package labstat

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// tableDelimiters are the separators written by the plate readers and
// spreadsheets we receive data from, in order of preference on a tie.
const tableDelimiters = ",;\t|"

// DetermineDelimiter guesses which of comma, semicolon, tab or pipe separates
// the columns of a lab table. The detector also proposes characters like ':'
// from timestamps, in no particular order, so only these four are accepted
// from it and the header line breaks ties. A file where the detector finds
// none of them is judged on its header line alone, and one without any
// separator is read as a single comma separated column.
func DetermineDelimiter(r io.Reader) rune {
	content, err := io.ReadAll(r)
	if err != nil || len(content) == 0 {
		return ','
	}

	var accepted []string
	for _, candidate := range detector.New().DetectDelimiter(bytes.NewReader(content), '"') {
		if len(candidate) == 1 && strings.Contains(tableDelimiters, candidate) {
			accepted = append(accepted, candidate)
		}
	}
	if len(accepted) == 1 {
		return rune(accepted[0][0])
	}

	allowed := tableDelimiters
	if len(accepted) > 1 {
		allowed = strings.Join(accepted, "")
	}

	return headerDelimiter(content, allowed)
}

// headerDelimiter returns the allowed delimiter used most often in the first
// line, preferring the earlier one in tableDelimiters on a tie.
func headerDelimiter(content []byte, allowed string) rune {
	header, err := bufio.NewReader(bytes.NewReader(content)).ReadString('\n')
	if err != nil && err != io.EOF {
		return ','
	}

	best, bestN := ',', 0
	for _, d := range tableDelimiters {
		if !strings.ContainsRune(allowed, d) {
			continue
		}
		if n := strings.Count(header, string(d)); n > bestN {
			best, bestN = d, n
		}
	}

	return best
}
