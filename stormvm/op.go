package stormvm

import "fmt"

// OpCode packs an operation in the low 8 bits and a signed 24-bit argument
// in the high bits. For OpAdjust and OpMove the argument is the coalesced
// delta; for OpLoopOpen and OpLoopClose it is the index of the matching
// instruction.
type OpCode uint32

const (
	OpAdjust OpCode = iota + 1
	OpMove
	OpLoopOpen
	OpLoopClose
	OpRead
	OpWrite
	OpDump
)

func (o OpCode) With(arg int) OpCode {
	return (o & 0xff) | (OpCode(arg) << 8)
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(int32(o) >> 8)
}

func (o OpCode) String() string {
	switch op, arg := o.Op(), o.Arg(); op {
	case OpAdjust:
		if arg >= 0 {
			return fmt.Sprintf("+%d", arg)
		}
		return fmt.Sprintf("-%d", -arg)
	case OpMove:
		if arg >= 0 {
			return fmt.Sprintf(">%d", arg)
		}
		return fmt.Sprintf("<%d", -arg)
	case OpLoopOpen:
		return "["
	case OpLoopClose:
		return "]"
	case OpRead:
		return ","
	case OpWrite:
		return "."
	case OpDump:
		return "#"
	}
	return fmt.Sprintf("OpCode(%d)", uint32(o))
}
