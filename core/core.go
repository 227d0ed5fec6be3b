package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aoc2019/program"
)

// Core is a simulated processor that executes one instruction per cycle.
// It runs the same state machine as Machine, driven by an akita engine.
type Core struct {
	*sim.TickingComponent

	stepLimit int
	state     coreState
	emu       instEmulator
}

// MapProgram sets the program that the core needs to run. The core starts
// over in the Running state.
func (c *Core) MapProgram(p *program.Program) {
	c.state = newCoreState(p, c.stepLimit)

	Trace("MapProgram",
		"Core", c.Name(),
		"Words", p.Len(),
	)
}

// Start schedules a tick at the current time. TickingComponent does not
// tick on its own until something wakes it up.
func (c *Core) Start() {
	c.Engine.Schedule(
		sim.MakeTickEvent(c.TickingComponent, c.Engine.CurrentTime()))
}

// Program returns the mapped program.
func (c *Core) Program() *program.Program {
	return c.state.Prog
}

// Result returns the status, step count and fault of the core.
func (c *Core) Result() Result {
	return c.state.result()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Prog == nil || c.state.Status.Terminal() {
		return false
	}

	ip := c.state.Prog.IP()
	op := c.emu.RunInst(&c.state)

	Trace("Inst",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"Core", c.Name(),
		"IP", ip,
		"OpCode", op.String(),
		"Status", c.state.Status.String(),
	)

	if c.state.Status == Faulted {
		Trace("Fault",
			"Core", c.Name(),
			"IP", ip,
			"Error", c.state.Err.Error(),
		)
	}

	return true
}
