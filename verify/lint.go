package verify

import (
	"fmt"

	"github.com/sarchlab/aoc2019/program"
)

// RunLint performs static lint checks on a program. Instructions are read
// in memory order starting at address 0, four words at a time, until a
// FINISH, an unknown opcode or the end of memory. The program is not
// modified. Returns a list of issues found, or empty list if no issues.
func RunLint(p *program.Program) []Issue {
	var issues []Issue

	ip := 0
	for ip < p.Len() {
		opcode := p.Get(int64(ip))

		switch program.Decode(opcode) {
		case program.OpFinish:
			return issues
		case program.OpUnknown:
			return append(issues, Issue{
				Type:    IssueFlow,
				IP:      ip,
				Offset:  0,
				Message: fmt.Sprintf("Unknown opcode %d", opcode),
				Details: map[string]interface{}{"opcode": opcode},
			})
		case program.OpAdd, program.OpMultiply:
			issues = append(issues, lintOperands(p, ip)...)
		}

		ip += 4
	}

	return append(issues, Issue{
		Type:    IssueFlow,
		IP:      -1,
		Offset:  0,
		Message: fmt.Sprintf("No FINISH before the end of memory (%d words)", p.Len()),
		Details: map[string]interface{}{"words": p.Len()},
	})
}

func lintOperands(p *program.Program, ip int) []Issue {
	var issues []Issue

	for offset := 1; offset <= 3; offset++ {
		slot := int64(ip + offset)
		if !p.InRange(slot) {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				IP:      ip,
				Offset:  offset,
				Message: fmt.Sprintf("Operand slot %d is past the end of memory", slot),
				Details: map[string]interface{}{"slot": slot},
			})
			continue
		}

		addr := p.Get(slot)
		switch {
		case addr < 0:
			issues = append(issues, Issue{
				Type:    IssueStruct,
				IP:      ip,
				Offset:  offset,
				Message: fmt.Sprintf("Negative operand address %d", addr),
				Details: map[string]interface{}{"address": addr},
			})
		case !p.InRange(addr):
			issues = append(issues, Issue{
				Type:   IssueStruct,
				IP:     ip,
				Offset: offset,
				Message: fmt.Sprintf("Operand address %d out of range (%d words)",
					addr, p.Len()),
				Details: map[string]interface{}{"address": addr},
			})
		}
	}

	return issues
}
