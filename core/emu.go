package core

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sarchlab/aoc2019/program"
)

// Status is the state of the executor's state machine.
type Status int

const (
	Running Status = iota
	Success
	UnknownOpCode
	Faulted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Success:
		return "Success"
	case UnknownOpCode:
		return "UnknownOpCode"
	case Faulted:
		return "Faulted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether no further step happens in this status.
func (s Status) Terminal() bool {
	return s != Running
}

// Result summarizes a finished, or stopped, execution.
type Result struct {
	Status Status
	Steps  int
	Err    error
}

type coreState struct {
	Prog      *program.Program
	Status    Status
	Err       error
	Steps     int
	StepLimit int
}

func newCoreState(p *program.Program, stepLimit int) coreState {
	return coreState{
		Prog:      p,
		Status:    Running,
		StepLimit: stepLimit,
	}
}

func (s *coreState) result() Result {
	return Result{Status: s.Status, Steps: s.Steps, Err: s.Err}
}

type instEmulator struct {
	isa *program.ISA
}

// RunInst executes the instruction at the instruction pointer and returns
// the operation it decoded. A terminal state is left untouched.
func (i instEmulator) RunInst(state *coreState) program.Operation {
	if state.Status.Terminal() {
		return program.OpUnknown
	}

	if state.StepLimit > 0 && state.Steps >= state.StepLimit {
		i.fault(state, errors.Wrapf(ErrStepLimitExceeded,
			"stopped after %d steps at ip %d", state.Steps, state.Prog.IP()))
		return program.OpUnknown
	}

	ip := state.Prog.IP()
	if !state.Prog.InRange(int64(ip)) {
		i.fault(state, &AddressError{
			IP:      ip,
			Offset:  0,
			Address: int64(ip),
			Kind:    ErrAddressOutOfRange,
		})
		return program.OpUnknown
	}

	op := program.Decode(state.Prog.Get(int64(ip)))
	state.Steps++

	switch op {
	case program.OpAdd, program.OpMultiply:
		i.runArith(op, state)
	case program.OpFinish:
		state.Status = Success
	case program.OpUnknown:
		state.Status = UnknownOpCode
	default:
		panic(fmt.Sprintf("unhandled operation %v at ip %d", op, ip))
	}

	return op
}

// runArith implements ADD and MUL.
// Prototype: OP, x, y, out  =>  mem[out] = mem[x] OP mem[y]
func (i instEmulator) runArith(op program.Operation, state *coreState) {
	var addrs [3]int64

	for slot := range addrs {
		addr, err := i.resolveOperand(state.Prog, slot+1)
		if err != nil {
			i.fault(state, err)
			return
		}

		addrs[slot] = addr
	}

	behavior, ok := i.isa.Behavior(op)
	if !ok {
		panic(fmt.Sprintf("ISA %s has no behavior for %v",
			i.isa.Name(), op))
	}

	x := state.Prog.Get(addrs[0])
	y := state.Prog.Get(addrs[1])
	state.Prog.Set(addrs[2], behavior(x, y))
	state.Prog.Advance(4)
}

// resolveOperand reads the address stored offset words after the
// instruction pointer and checks it can index memory.
func (i instEmulator) resolveOperand(
	p *program.Program,
	offset int,
) (int64, error) {
	ip := p.IP()
	slot := int64(ip + offset)

	if !p.InRange(slot) {
		return 0, &AddressError{
			IP:      ip,
			Offset:  offset,
			Address: slot,
			Kind:    ErrAddressOutOfRange,
		}
	}

	addr := p.Get(slot)

	switch {
	case addr < 0:
		return 0, &AddressError{
			IP:      ip,
			Offset:  offset,
			Address: addr,
			Kind:    ErrNegativeAddress,
		}
	case !p.InRange(addr):
		return 0, &AddressError{
			IP:      ip,
			Offset:  offset,
			Address: addr,
			Kind:    ErrAddressOutOfRange,
		}
	}

	return addr, nil
}

func (i instEmulator) fault(state *coreState, err error) {
	state.Status = Faulted
	state.Err = err
}
