package cil

// OperandKind is the static schema for an opcode's inline operand
// (ECMA-335 VI.C.2 descriptor kinds).
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandShortBrTarget
	OperandBrTarget
	OperandShortInlineI
	OperandInlineI
	OperandInlineI8
	OperandShortInlineR
	OperandInlineR
	OperandInlineVar
	OperandShortInlineVar
	OperandInlineString
	OperandInlineSwitch
	OperandInlineSig
	OperandInlineTok
	OperandInlineType
	OperandInlineMethod
	OperandInlineField
)

// Width returns the fixed encoded width of the operand in bytes, or -1 for
// switch, whose width depends on the target count.
func (k OperandKind) Width() int {
	switch k {
	case OperandNone:
		return 0
	case OperandShortBrTarget, OperandShortInlineI, OperandShortInlineVar:
		return 1
	case OperandInlineVar:
		return 2
	case OperandBrTarget, OperandInlineI, OperandShortInlineR,
		OperandInlineString, OperandInlineSig, OperandInlineTok,
		OperandInlineType, OperandInlineMethod, OperandInlineField:
		return 4
	case OperandInlineI8, OperandInlineR:
		return 8
	case OperandInlineSwitch:
		return -1
	default:
		return 0
	}
}

// Encoded opcode values referenced by name elsewhere in the package.
const (
	// opValLdcI4S is the short load-int32-constant opcode, whose one-byte
	// operand is signed unlike every other ShortInlineI carrier.
	opValLdcI4S = 0x1f

	// twoBytePrefix introduces the second opcode page.
	twoBytePrefix = 0xfe
)

// Lookup table dimensions: one-byte opcodes occupy 0x00..0xe0, two-byte
// opcodes occupy 0xfe00..0xfe1e.
const (
	oneByteTableSize = 0xe1
	twoByteTableSize = 0x1f
)
