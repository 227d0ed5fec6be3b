// Command fuel prints the fuel needed to launch the modules whose masses
// are listed, one per line, in the given file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/aoc2019/config"
	"github.com/sarchlab/aoc2019/fuel"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <masses file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		atexit.Fatal("missing filename")
	}

	slog.SetDefault(config.NewLogger(config.Default(), os.Stderr))

	filename := flag.Arg(0)
	masses, err := fuel.LoadMasses(filename)
	if err != nil {
		atexit.Fatal(err)
	}

	slog.Debug("Masses loaded", "File", filename, "Count", len(masses))

	direct, includingFuel := fuel.Totals(masses)

	fmt.Printf("Fuel consumption was: %d\n", direct)
	fmt.Printf("Fuel consumption including fuel was: %d\n", includingFuel)

	atexit.Exit(0)
}
