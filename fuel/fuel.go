// Package fuel computes the fuel required to launch spacecraft modules.
package fuel

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Consumption is the fuel a mass needs on its own: a third of the mass,
// rounded down, minus two. Masses too small to need fuel yield zero.
func Consumption(mass int64) int64 {
	f := mass/3 - 2
	if f < 0 {
		return 0
	}

	return f
}

// ConsumptionIncludingFuel also accounts for the mass of the fuel itself,
// adding fuel for the fuel until the extra requirement drops to zero.
func ConsumptionIncludingFuel(mass int64) int64 {
	total := int64(0)

	for f := Consumption(mass); f > 0; f = Consumption(f) {
		total += f
	}

	return total
}

// Totals sums both consumptions over all masses.
func Totals(masses []int64) (direct, includingFuel int64) {
	for _, m := range masses {
		direct += Consumption(m)
		includingFuel += ConsumptionIncludingFuel(m)
	}

	return direct, includingFuel
}

// ReadMasses reads one signed integer per line. Blank lines are skipped.
func ReadMasses(r io.Reader) ([]int64, error) {
	var masses []int64

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		m, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		masses = append(masses, m)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read masses")
	}

	return masses, nil
}

// LoadMasses reads the masses stored at path.
func LoadMasses(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}
	defer f.Close()

	masses, err := ReadMasses(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", path)
	}

	return masses, nil
}
