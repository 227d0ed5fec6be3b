// Command intcode runs a gravity-assist program stored as a comma-separated
// list of integers.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/aoc2019/config"
	"github.com/sarchlab/aoc2019/core"
	"github.com/sarchlab/aoc2019/program"
	"github.com/sarchlab/aoc2019/verify"
)

const searchMax = 99

// options holds the command line flags.
type options struct {
	noun       int64
	verb       int64
	target     int64
	configFile string
	logLevel   string
	dump       bool
	report     string
}

var opts = defaultOptions()

func defaultOptions() options {
	return options{noun: -1, verb: -1, target: -1}
}

func init() {
	flag.Int64Var(&opts.noun, "noun", -1, "value patched into address 1 before running")
	flag.Int64Var(&opts.verb, "verb", -1, "value patched into address 2 before running")
	flag.Int64Var(&opts.target, "target", -1,
		"search nouns and verbs 0..99 for the pair that leaves this value at address 0")
	flag.StringVar(&opts.configFile, "config", "", "TOML or YAML run configuration")
	flag.StringVar(&opts.logLevel, "log-level", "", "overrides log_level (trace, debug, info, warn, error)")
	flag.BoolVar(&opts.dump, "dump", false, "print the final memory as a table")
	flag.StringVar(&opts.report, "verify", "",
		"lint and dry-run the program, writing the report to this file (- for stdout)")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		atexit.Fatal("missing filename")
	}

	if err := opts.validate(); err != nil {
		atexit.Fatal(err)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		atexit.Fatal(err)
	}
	slog.SetDefault(config.NewLogger(cfg, os.Stderr))

	p, err := program.LoadProgramFile(flag.Arg(0))
	if err != nil {
		atexit.Fatal(err)
	}

	if err := execute(os.Stdout, opts, cfg, p); err != nil {
		atexit.Fatal(err)
	}

	atexit.Exit(0)
}

func (o options) validate() error {
	if (o.noun >= 0) != (o.verb >= 0) {
		return errors.New("-noun and -verb must be given together")
	}

	if o.target >= 0 && o.report != "" {
		return errors.New("-target and -verify cannot be combined")
	}

	return nil
}

func (o options) loadConfig() (config.Config, error) {
	cfg := config.Default()

	if o.configFile != "" {
		var err error
		cfg, err = config.Load(o.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

// execute patches p as the options ask, then verifies, searches or runs
// it, writing the outcome to w.
func execute(
	w io.Writer,
	o options,
	cfg config.Config,
	p *program.Program,
) error {
	if err := o.validate(); err != nil {
		return err
	}

	if o.noun >= 0 {
		if err := p.Patch(o.noun, o.verb); err != nil {
			return err
		}
	}

	switch {
	case o.report != "":
		return writeReport(w, p, cfg, o.report)
	case o.target >= 0:
		return search(w, p, cfg, o.target)
	default:
		return run(w, p, cfg, o.dump)
	}
}

func run(w io.Writer, p *program.Program, cfg config.Config, dump bool) error {
	platform := config.MakePlatformBuilder().
		WithConfig(cfg).
		Build("Intcode")

	r, err := platform.Run(p)

	if dump {
		fmt.Fprintln(w, core.RenderMemory(p))
	}

	if err != nil {
		return errors.Wrapf(err, "execution failed after %d steps", r.Steps)
	}

	fmt.Fprintf(w, "Status: %s\n", r.Status)
	fmt.Fprintf(w, "Steps: %d\n", r.Steps)
	fmt.Fprintf(w, "Value at address 0: %d\n", p.Get(0))

	return nil
}

func search(w io.Writer, p *program.Program, cfg config.Config, target int64) error {
	n, v, err := core.FindInputs(p, target, searchMax, searchMax, cfg.StepLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Noun: %d\n", n)
	fmt.Fprintf(w, "Verb: %d\n", v)
	fmt.Fprintf(w, "100 * noun + verb: %d\n", 100*n+v)

	return nil
}

func writeReport(w io.Writer, p *program.Program, cfg config.Config, dest string) error {
	r := verify.GenerateReport(p, cfg.StepLimit)

	if dest == "-" {
		r.WriteReport(w)
		return nil
	}

	if err := r.SaveReportToFile(dest); err != nil {
		return err
	}

	fmt.Fprintf(w, "Report written to %s\n", dest)

	return nil
}
