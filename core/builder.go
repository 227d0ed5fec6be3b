package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aoc2019/program"
)

// Builder can create new cores.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	stepLimit int
	isa       *program.ISA
}

// NewBuilder returns a builder with a 1 GHz clock and the default ISA.
func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
		isa:  program.DefaultISA,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithStepLimit bounds how many instructions a mapped program may decode.
// Zero disables the bound.
func (b Builder) WithStepLimit(limit int) Builder {
	if limit < 0 {
		panic("step limit must not be negative")
	}
	b.stepLimit = limit
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	c := &Core{
		stepLimit: b.stepLimit,
		emu:       instEmulator{isa: b.isa},
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
