// platecount estimates the concentration of a culture in UFC/mL from the
// colony counts of a decimal dilution series.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/labstat/compileinfo"
	"github.com/carbocation/labstat/labcsv"
	"github.com/carbocation/labstat/platecount"
)

func main() {
	var input, name string
	var version bool

	flag.StringVar(&input, "file", "", fmt.Sprintf("Delimited file (local or gs://) with a header and the columns 'dilution' (e.g. -5, 10^-5 or 1e-5) and 'count' (a colony count, or NC). Only plates with %d to %d colonies are used.", platecount.MinCountable, platecount.MaxCountable))
	flag.StringVar(&name, "name", "", "Name of the culture. Defaults to the file name.")
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

	if err := run(input, name); err != nil {
		log.Fatalln(err)
	}
}

func run(input, name string) error {
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

	count, err := labcsv.ReadDilutions(name, f)
	if err != nil {
		return err
	}

	fmt.Println(count)

	if _, err := count.Concentration(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}
