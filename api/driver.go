// Package api defines the driver API for running programs on a simulated
// core.
package api

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aoc2019/core"
	"github.com/sarchlab/aoc2019/program"
)

var (
	// ErrNoMachine is returned by Run before a machine is registered.
	ErrNoMachine = errors.New("no machine registered")

	// ErrNoProgram is returned by Run before a program is mapped.
	ErrNoProgram = errors.New("no program mapped")
)

// Machine is the part of a core the driver controls.
type Machine interface {
	// MapProgram hands the program to the machine. The machine owns it
	// until the run finishes.
	MapProgram(p *program.Program)

	// Start schedules the machine's first cycle on its engine.
	Start()

	// Result reports how the last run ended.
	Result() core.Result
}

// Driver provides the interface to control a simulated core.
type Driver interface {
	// RegisterMachine registers the machine that runs mapped programs.
	RegisterMachine(m Machine)

	// MapProgram maps the provided program to the registered machine.
	MapProgram(p *program.Program)

	// Run runs the mapped program until it halts or faults. A fault is
	// returned as the error; an unknown opcode is reported in the result
	// only.
	Run() (core.Result, error)
}

type driverImpl struct {
	name    string
	engine  sim.Engine
	machine Machine
	mapped  bool
}

func (d *driverImpl) RegisterMachine(m Machine) {
	d.machine = m
}

func (d *driverImpl) MapProgram(p *program.Program) {
	if d.machine == nil {
		panic("map a program after registering a machine")
	}

	d.machine.MapProgram(p)
	d.mapped = true
}

func (d *driverImpl) Run() (core.Result, error) {
	if d.machine == nil {
		return core.Result{}, ErrNoMachine
	}

	if !d.mapped {
		return core.Result{}, ErrNoProgram
	}

	d.machine.Start()

	if err := d.engine.Run(); err != nil {
		return core.Result{}, errors.Wrapf(err, "%s: engine failed", d.name)
	}

	d.mapped = false

	r := d.machine.Result()
	core.LogState(d.name, r)

	if r.Status == core.Faulted {
		return r, errors.Wrapf(r.Err, "%s: program faulted", d.name)
	}

	slog.Info("Program halted",
		"Driver", d.name,
		"Status", r.Status.String(),
		"Steps", r.Steps,
	)

	return r, nil
}
