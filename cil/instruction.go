package cil

import (
	"github.com/wippyai/cil-disasm/metadata"
)

// Instruction is one decoded IL instruction. Instructions form a
// doubly-linked list in stream order; Offset is the byte offset within the
// method's IL and serves as the stable label.
type Instruction struct {
	Operand any
	Opcode  *Opcode
	Prev    *Instruction
	Next    *Instruction
	Offset  int
}

// Size returns the full encoded size of the instruction, operand included.
func (i *Instruction) Size() int {
	if i.Opcode.Kind == OperandInlineSwitch {
		sw := i.Operand.(*SwitchOperand)
		return i.Opcode.Size() + 4 + 4*len(sw.Targets)
	}
	return i.Opcode.Size() + i.Opcode.Kind.Width()
}

// BranchOperand is the operand of a branch instruction. Target is nil when
// the encoded offset falls outside the instruction stream.
type BranchOperand struct {
	Target *Instruction
	raw    int
}

// SwitchOperand is the operand of a switch instruction. A nil entry marks a
// target outside the instruction stream.
type SwitchOperand struct {
	Targets []*Instruction
	raw     []int
}

// StringOperand is a resolved user string.
type StringOperand struct {
	Value string
}

// MemberOperand is a resolved type, method, or field token.
type MemberOperand struct {
	Member metadata.Member
}

// SigOperand is a resolved standalone signature.
type SigOperand struct {
	Blob  []byte
	Token uint32
}

// LocalOperand indexes the method's local-variable list.
type LocalOperand struct {
	Local metadata.Local
}

// ParamOperand references one of the method's formal parameters.
type ParamOperand struct {
	Param metadata.Parameter
}

// Numeric operands carry the raw value at its natural width.
type (
	Int8Operand    struct{ Value int8 }
	UInt8Operand   struct{ Value uint8 }
	Int32Operand   struct{ Value int32 }
	Int64Operand   struct{ Value int64 }
	Float32Operand struct{ Value float32 }
	Float64Operand struct{ Value float64 }
)

// Branch returns the branch target if this is a branch instruction.
func (i *Instruction) Branch() (*Instruction, bool) {
	if op, ok := i.Operand.(*BranchOperand); ok {
		return op.Target, true
	}
	return nil, false
}

// IsCall reports whether the instruction is a call-family instruction.
func (i *Instruction) IsCall() bool {
	return i.Opcode.IsCall()
}
