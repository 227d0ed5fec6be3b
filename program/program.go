// Package program defines the memory image of a gravity-assist program and
// the instruction set it is written in.
package program

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Program is a flat memory of signed words plus the instruction pointer
// that walks it. The memory is both code and data.
type Program struct {
	memory []int64
	ip     int
}

// New creates a program whose memory is a copy of the given words.
func New(memory []int64) *Program {
	m := make([]int64, len(memory))
	copy(m, memory)

	return &Program{memory: m}
}

// Len returns the number of words in memory.
func (p *Program) Len() int {
	return len(p.memory)
}

// IP returns the current instruction pointer.
func (p *Program) IP() int {
	return p.ip
}

// Advance moves the instruction pointer forward by n words.
func (p *Program) Advance(n int) {
	p.ip += n
}

// InRange reports whether addr can be used as an index into memory.
func (p *Program) InRange(addr int64) bool {
	return addr >= 0 && addr < int64(len(p.memory))
}

// Get reads the word at addr. It panics if addr is out of range, the same
// way a slice index would; the executor checks addresses before calling it.
func (p *Program) Get(addr int64) int64 {
	return p.memory[addr]
}

// Set writes v to addr.
func (p *Program) Set(addr int64, v int64) {
	p.memory[addr] = v
}

// Memory returns a copy of the current memory.
func (p *Program) Memory() []int64 {
	m := make([]int64, len(p.memory))
	copy(m, p.memory)

	return m
}

// Clone returns an independent copy of the program, instruction pointer
// included.
func (p *Program) Clone() *Program {
	c := New(p.memory)
	c.ip = p.ip

	return c
}

// Patch restores the "1202 program alarm" state: address 1 receives the
// noun and address 2 the verb.
func (p *Program) Patch(noun, verb int64) error {
	if len(p.memory) < 3 {
		return errors.Errorf(
			"cannot patch noun and verb into a program of %d words",
			len(p.memory))
	}

	p.memory[1] = noun
	p.memory[2] = verb

	return nil
}

// String joins the memory with commas, the same format Parse accepts.
func (p *Program) String() string {
	tokens := make([]string, len(p.memory))
	for i, w := range p.memory {
		tokens[i] = strconv.FormatInt(w, 10)
	}

	return strings.Join(tokens, ",")
}
