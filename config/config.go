// Package config provides a default configuration for running programs on
// a simulated core.
package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aoc2019/api"
	"github.com/sarchlab/aoc2019/core"
)

// PlatformBuilder can build platforms.
type PlatformBuilder struct {
	engine    sim.Engine
	freq      sim.Freq
	stepLimit int
}

// MakePlatformBuilder returns a builder with a 1 GHz core and no step
// limit.
func MakePlatformBuilder() PlatformBuilder {
	return PlatformBuilder{
		freq: 1 * sim.GHz,
	}
}

// WithEngine sets the engine that drives the simulation. A serial engine is
// created when none is given.
func (b PlatformBuilder) WithEngine(engine sim.Engine) PlatformBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// WithStepLimit bounds how many instructions a program may decode.
func (b PlatformBuilder) WithStepLimit(limit int) PlatformBuilder {
	b.stepLimit = limit
	return b
}

// WithConfig applies the settings of a loaded configuration file.
func (b PlatformBuilder) WithConfig(c Config) PlatformBuilder {
	return b.
		WithFreq(sim.Freq(c.FreqGHz) * sim.GHz).
		WithStepLimit(c.StepLimit)
}

// Build creates a platform with a driver that already has its core
// registered.
func (b PlatformBuilder) Build(name string) *Platform {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	c := core.NewBuilder().
		WithEngine(engine).
		WithFreq(b.freq).
		WithStepLimit(b.stepLimit).
		Build(name + ".Core")

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		Build(name + ".Driver")
	driver.RegisterMachine(c)

	return &Platform{
		Engine: engine,
		Driver: driver,
		Core:   c,
	}
}
