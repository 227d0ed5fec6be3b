package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Address error kinds. An AddressError always unwraps to one of them.
var (
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrNegativeAddress   = errors.New("negative address")
)

var (
	// ErrStepLimitExceeded faults a machine that was given a step limit and
	// ran past it.
	ErrStepLimitExceeded = errors.New("step limit exceeded")

	// ErrNoSolution is returned by FindInputs when no noun and verb leave the
	// target at address 0.
	ErrNoSolution = errors.New("no noun and verb produce the target")

	// ErrSearchRange is returned by FindInputs when a maximum is above
	// MaxSearchRange.
	ErrSearchRange = errors.New("search range too large")
)

// AddressError is the fault raised when an instruction reads or writes
// through an address that memory does not have.
type AddressError struct {
	// IP is the instruction pointer of the faulting instruction.
	IP int
	// Offset is the operand slot relative to IP: 1 and 2 are the inputs,
	// 3 the output. Offset 0 means the opcode itself could not be fetched.
	Offset int
	// Address is the offending index. For a missing operand slot it is the
	// slot's own index, IP+Offset.
	Address int64
	Kind    error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v: address %d at ip %d offset %d",
		e.Kind, e.Address, e.IP, e.Offset)
}

func (e *AddressError) Unwrap() error {
	return e.Kind
}
