// Package verify provides debugging tools for gravity-assist programs.
//
// It implements two complementary stages:
//
// 1. Static Lint (lint.go): walks the instructions in memory order from
// address 0 without executing them.
//   - STRUCT checks: missing operand slots, negative or out-of-range
//     operand addresses
//   - FLOW checks: unknown opcodes and programs that run off the end of
//     memory before a FINISH
//
// 2. Functional run (report.go): executes a copy of the program with
// core.Machine and records how it ended.
//
// Lint is advisory. Programs may rewrite their own code, so an issue found
// statically may never be reached at run time, and the other way round.
package verify

// IssueType classifies lint issues.
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Operand addressing error
	IssueFlow   IssueType = "FLOW"   // Unknown opcode or missing FINISH
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	IP      int    // Address of the instruction, -1 if not applicable
	Offset  int    // Operand slot, 0 for the opcode itself
	Message string // Human-readable description
	Details map[string]interface{}
}
