package core

import (
	"github.com/sarchlab/aoc2019/program"
)

// Machine runs a program synchronously on the calling goroutine. It owns
// the program's memory for the duration of the run and mutates it in place.
type Machine struct {
	state coreState
	emu   instEmulator
}

// NewMachine creates a machine that runs p from its current instruction
// pointer, with no step limit.
func NewMachine(p *program.Program) *Machine {
	return &Machine{
		state: newCoreState(p, 0),
		emu:   instEmulator{isa: program.DefaultISA},
	}
}

// WithStepLimit bounds the number of instructions the machine decodes. A
// machine that would decode more faults with ErrStepLimitExceeded. Zero
// means no limit.
func (m *Machine) WithStepLimit(limit int) *Machine {
	m.state.StepLimit = limit
	return m
}

// Program returns the program being run.
func (m *Machine) Program() *program.Program {
	return m.state.Prog
}

// Status returns the current state of the machine.
func (m *Machine) Status() Status {
	return m.state.Status
}

// Result returns the status, step count and fault of the machine.
func (m *Machine) Result() Result {
	return m.state.result()
}

// Step executes a single instruction. Once the machine is terminal, Step
// keeps returning the terminal status and error.
func (m *Machine) Step() (Status, error) {
	m.emu.RunInst(&m.state)
	return m.state.Status, m.state.Err
}

// Run steps the machine until it halts or faults. Without a step limit a
// program that never halts never returns.
func (m *Machine) Run() (Status, error) {
	for !m.state.Status.Terminal() {
		m.emu.RunInst(&m.state)
	}

	return m.state.Status, m.state.Err
}

// Execute runs p to completion in place.
func Execute(p *program.Program) (Status, error) {
	return NewMachine(p).Run()
}
