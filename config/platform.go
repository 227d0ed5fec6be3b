package config

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aoc2019/api"
	"github.com/sarchlab/aoc2019/core"
	"github.com/sarchlab/aoc2019/program"
)

// Platform groups the engine, the driver and the core it drives.
type Platform struct {
	Engine sim.Engine
	Driver api.Driver
	Core   *core.Core
}

// Run maps p onto the core and runs it to completion.
func (p *Platform) Run(prog *program.Program) (core.Result, error) {
	p.Driver.MapProgram(prog)
	return p.Driver.Run()
}

func (p *Platform) String() string {
	return fmt.Sprintf("Platform(%s)", p.Core.Name())
}
