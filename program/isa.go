package program

// Operation is the decoded meaning of an opcode.
type Operation int

// The instruction set. Anything that is not 1, 2 or 99 decodes to OpUnknown.
const (
	OpUnknown Operation = iota
	OpAdd
	OpMultiply
	OpFinish
)

// Opcodes as they appear in memory.
const (
	OpcodeAdd      int64 = 1
	OpcodeMultiply int64 = 2
	OpcodeFinish   int64 = 99
)

func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "ADD"
	case OpMultiply:
		return "MUL"
	case OpFinish:
		return "FINISH"
	default:
		return "UNKNOWN"
	}
}

// Decode maps an opcode to its operation. It never fails.
func Decode(opcode int64) Operation {
	switch opcode {
	case OpcodeAdd:
		return OpAdd
	case OpcodeMultiply:
		return OpMultiply
	case OpcodeFinish:
		return OpFinish
	default:
		return OpUnknown
	}
}

// Behavior computes the value an arithmetic instruction stores.
type Behavior func(src1, src2 int64) int64

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from operation to the behavior of the instruction.
	behaviors map[Operation]Behavior
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:   name,
		behaviors: make(map[Operation]Behavior),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

func (isa *ISA) registerNewInst(op Operation, behavior Behavior) {
	isa.behaviors[op] = behavior
}

// Behavior returns the arithmetic of op. Operations that do not compute a
// value, Finish and Unknown, report false.
func (isa *ISA) Behavior(op Operation) (Behavior, bool) {
	b, ok := isa.behaviors[op]
	return b, ok
}

// DefaultISA is the four-opcode gravity-assist instruction set.
var DefaultISA = newDefaultISA()

func newDefaultISA() *ISA {
	isa := NewISA("Gravity Assist ISA")
	isa.registerNewInst(OpAdd, instADD)
	isa.registerNewInst(OpMultiply, instMUL)

	return isa
}
