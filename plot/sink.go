package plot

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// FileSink writes a PNG box plot of everything it is given into Dir.
type FileSink struct {
	Dir          string
	HideOutliers bool
}

// Path is where Render will write the chart for these labels.
func (f FileSink) Path(labels []string) string {
	lower := make([]string, 0, len(labels))
	for _, l := range labels {
		lower = append(lower, strings.ToLower(l))
	}

	name := strings.ReplaceAll(fmt.Sprintf("Boxplot of %s.png", strings.Join(lower, ",")), "\n", " ")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "-")

	return filepath.Join(f.Dir, name)
}

func (f FileSink) Render(series [][]float64, labels []string, opts Options) error {
	path := f.Path(labels)

	out, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if err := BoxPlot(buf, series, labels, f.HideOutliers, opts); err != nil {
		return pfx.Err(err)
	}
	if err := buf.Flush(); err != nil {
		return pfx.Err(err)
	}

	log.Println("Wrote", path)

	return nil
}

// TerminalSink prints a text histogram per sequence.
type TerminalSink struct {
	W    io.Writer
	Bins int
}

func (t TerminalSink) Render(series [][]float64, labels []string, opts Options) error {
	if opts.Title != "" {
		fmt.Fprintln(t.W, opts.Title)
	}

	for i, values := range series {
		label := fmt.Sprintf("series %d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		fmt.Fprintf(t.W, "%s (n=%d)\n", label, len(values))

		if err := TextHistogram(t.W, values, t.Bins); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
