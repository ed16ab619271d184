package cil

import (
	"fmt"
	"sync"
)

// Opcode is an immutable descriptor for one IL instruction type.
type Opcode struct {
	Name  string
	Value uint16 // 0x00..0xe0, or 0xfe00..0xfe1e for the second page
	Kind  OperandKind
	call  bool // call, calli, callvirt, newobj
}

// Size returns the encoded size of the opcode itself: 1 or 2 bytes.
func (o *Opcode) Size() int {
	if o.Value > 0xff {
		return 2
	}
	return 1
}

// IsCall reports whether the opcode is one of call, calli, callvirt, newobj.
// These take the instance prefix when their target is non-static.
func (o *Opcode) IsCall() bool {
	return o.call
}

// IsBranch reports whether the opcode carries a branch-target operand.
func (o *Opcode) IsBranch() bool {
	return o.Kind == OperandShortBrTarget || o.Kind == OperandBrTarget
}

func (o *Opcode) String() string {
	return o.Name
}

// opcodes lists every non-reserved opcode the runtime declares. Prefix
// pseudo-opcodes (prefix1..prefix7, prefixref) are excluded; they never
// appear as instructions.
var opcodes = []Opcode{
	{Name: "nop", Value: 0x00, Kind: OperandNone},
	{Name: "break", Value: 0x01, Kind: OperandNone},
	{Name: "ldarg.0", Value: 0x02, Kind: OperandNone},
	{Name: "ldarg.1", Value: 0x03, Kind: OperandNone},
	{Name: "ldarg.2", Value: 0x04, Kind: OperandNone},
	{Name: "ldarg.3", Value: 0x05, Kind: OperandNone},
	{Name: "ldloc.0", Value: 0x06, Kind: OperandNone},
	{Name: "ldloc.1", Value: 0x07, Kind: OperandNone},
	{Name: "ldloc.2", Value: 0x08, Kind: OperandNone},
	{Name: "ldloc.3", Value: 0x09, Kind: OperandNone},
	{Name: "stloc.0", Value: 0x0a, Kind: OperandNone},
	{Name: "stloc.1", Value: 0x0b, Kind: OperandNone},
	{Name: "stloc.2", Value: 0x0c, Kind: OperandNone},
	{Name: "stloc.3", Value: 0x0d, Kind: OperandNone},
	{Name: "ldarg.s", Value: 0x0e, Kind: OperandShortInlineVar},
	{Name: "ldarga.s", Value: 0x0f, Kind: OperandShortInlineVar},
	{Name: "starg.s", Value: 0x10, Kind: OperandShortInlineVar},
	{Name: "ldloc.s", Value: 0x11, Kind: OperandShortInlineVar},
	{Name: "ldloca.s", Value: 0x12, Kind: OperandShortInlineVar},
	{Name: "stloc.s", Value: 0x13, Kind: OperandShortInlineVar},
	{Name: "ldnull", Value: 0x14, Kind: OperandNone},
	{Name: "ldc.i4.m1", Value: 0x15, Kind: OperandNone},
	{Name: "ldc.i4.0", Value: 0x16, Kind: OperandNone},
	{Name: "ldc.i4.1", Value: 0x17, Kind: OperandNone},
	{Name: "ldc.i4.2", Value: 0x18, Kind: OperandNone},
	{Name: "ldc.i4.3", Value: 0x19, Kind: OperandNone},
	{Name: "ldc.i4.4", Value: 0x1a, Kind: OperandNone},
	{Name: "ldc.i4.5", Value: 0x1b, Kind: OperandNone},
	{Name: "ldc.i4.6", Value: 0x1c, Kind: OperandNone},
	{Name: "ldc.i4.7", Value: 0x1d, Kind: OperandNone},
	{Name: "ldc.i4.8", Value: 0x1e, Kind: OperandNone},
	{Name: "ldc.i4.s", Value: 0x1f, Kind: OperandShortInlineI},
	{Name: "ldc.i4", Value: 0x20, Kind: OperandInlineI},
	{Name: "ldc.i8", Value: 0x21, Kind: OperandInlineI8},
	{Name: "ldc.r4", Value: 0x22, Kind: OperandShortInlineR},
	{Name: "ldc.r8", Value: 0x23, Kind: OperandInlineR},
	{Name: "dup", Value: 0x25, Kind: OperandNone},
	{Name: "pop", Value: 0x26, Kind: OperandNone},
	{Name: "jmp", Value: 0x27, Kind: OperandInlineMethod},
	{Name: "call", Value: 0x28, Kind: OperandInlineMethod, call: true},
	{Name: "calli", Value: 0x29, Kind: OperandInlineSig, call: true},
	{Name: "ret", Value: 0x2a, Kind: OperandNone},
	{Name: "br.s", Value: 0x2b, Kind: OperandShortBrTarget},
	{Name: "brfalse.s", Value: 0x2c, Kind: OperandShortBrTarget},
	{Name: "brtrue.s", Value: 0x2d, Kind: OperandShortBrTarget},
	{Name: "beq.s", Value: 0x2e, Kind: OperandShortBrTarget},
	{Name: "bge.s", Value: 0x2f, Kind: OperandShortBrTarget},
	{Name: "bgt.s", Value: 0x30, Kind: OperandShortBrTarget},
	{Name: "ble.s", Value: 0x31, Kind: OperandShortBrTarget},
	{Name: "blt.s", Value: 0x32, Kind: OperandShortBrTarget},
	{Name: "bne.un.s", Value: 0x33, Kind: OperandShortBrTarget},
	{Name: "bge.un.s", Value: 0x34, Kind: OperandShortBrTarget},
	{Name: "bgt.un.s", Value: 0x35, Kind: OperandShortBrTarget},
	{Name: "ble.un.s", Value: 0x36, Kind: OperandShortBrTarget},
	{Name: "blt.un.s", Value: 0x37, Kind: OperandShortBrTarget},
	{Name: "br", Value: 0x38, Kind: OperandBrTarget},
	{Name: "brfalse", Value: 0x39, Kind: OperandBrTarget},
	{Name: "brtrue", Value: 0x3a, Kind: OperandBrTarget},
	{Name: "beq", Value: 0x3b, Kind: OperandBrTarget},
	{Name: "bge", Value: 0x3c, Kind: OperandBrTarget},
	{Name: "bgt", Value: 0x3d, Kind: OperandBrTarget},
	{Name: "ble", Value: 0x3e, Kind: OperandBrTarget},
	{Name: "blt", Value: 0x3f, Kind: OperandBrTarget},
	{Name: "bne.un", Value: 0x40, Kind: OperandBrTarget},
	{Name: "bge.un", Value: 0x41, Kind: OperandBrTarget},
	{Name: "bgt.un", Value: 0x42, Kind: OperandBrTarget},
	{Name: "ble.un", Value: 0x43, Kind: OperandBrTarget},
	{Name: "blt.un", Value: 0x44, Kind: OperandBrTarget},
	{Name: "switch", Value: 0x45, Kind: OperandInlineSwitch},
	{Name: "ldind.i1", Value: 0x46, Kind: OperandNone},
	{Name: "ldind.u1", Value: 0x47, Kind: OperandNone},
	{Name: "ldind.i2", Value: 0x48, Kind: OperandNone},
	{Name: "ldind.u2", Value: 0x49, Kind: OperandNone},
	{Name: "ldind.i4", Value: 0x4a, Kind: OperandNone},
	{Name: "ldind.u4", Value: 0x4b, Kind: OperandNone},
	{Name: "ldind.i8", Value: 0x4c, Kind: OperandNone},
	{Name: "ldind.i", Value: 0x4d, Kind: OperandNone},
	{Name: "ldind.r4", Value: 0x4e, Kind: OperandNone},
	{Name: "ldind.r8", Value: 0x4f, Kind: OperandNone},
	{Name: "ldind.ref", Value: 0x50, Kind: OperandNone},
	{Name: "stind.ref", Value: 0x51, Kind: OperandNone},
	{Name: "stind.i1", Value: 0x52, Kind: OperandNone},
	{Name: "stind.i2", Value: 0x53, Kind: OperandNone},
	{Name: "stind.i4", Value: 0x54, Kind: OperandNone},
	{Name: "stind.i8", Value: 0x55, Kind: OperandNone},
	{Name: "stind.r4", Value: 0x56, Kind: OperandNone},
	{Name: "stind.r8", Value: 0x57, Kind: OperandNone},
	{Name: "add", Value: 0x58, Kind: OperandNone},
	{Name: "sub", Value: 0x59, Kind: OperandNone},
	{Name: "mul", Value: 0x5a, Kind: OperandNone},
	{Name: "div", Value: 0x5b, Kind: OperandNone},
	{Name: "div.un", Value: 0x5c, Kind: OperandNone},
	{Name: "rem", Value: 0x5d, Kind: OperandNone},
	{Name: "rem.un", Value: 0x5e, Kind: OperandNone},
	{Name: "and", Value: 0x5f, Kind: OperandNone},
	{Name: "or", Value: 0x60, Kind: OperandNone},
	{Name: "xor", Value: 0x61, Kind: OperandNone},
	{Name: "shl", Value: 0x62, Kind: OperandNone},
	{Name: "shr", Value: 0x63, Kind: OperandNone},
	{Name: "shr.un", Value: 0x64, Kind: OperandNone},
	{Name: "neg", Value: 0x65, Kind: OperandNone},
	{Name: "not", Value: 0x66, Kind: OperandNone},
	{Name: "conv.i1", Value: 0x67, Kind: OperandNone},
	{Name: "conv.i2", Value: 0x68, Kind: OperandNone},
	{Name: "conv.i4", Value: 0x69, Kind: OperandNone},
	{Name: "conv.i8", Value: 0x6a, Kind: OperandNone},
	{Name: "conv.r4", Value: 0x6b, Kind: OperandNone},
	{Name: "conv.r8", Value: 0x6c, Kind: OperandNone},
	{Name: "conv.u4", Value: 0x6d, Kind: OperandNone},
	{Name: "conv.u8", Value: 0x6e, Kind: OperandNone},
	{Name: "callvirt", Value: 0x6f, Kind: OperandInlineMethod, call: true},
	{Name: "cpobj", Value: 0x70, Kind: OperandInlineType},
	{Name: "ldobj", Value: 0x71, Kind: OperandInlineType},
	{Name: "ldstr", Value: 0x72, Kind: OperandInlineString},
	{Name: "newobj", Value: 0x73, Kind: OperandInlineMethod, call: true},
	{Name: "castclass", Value: 0x74, Kind: OperandInlineType},
	{Name: "isinst", Value: 0x75, Kind: OperandInlineType},
	{Name: "conv.r.un", Value: 0x76, Kind: OperandNone},
	{Name: "unbox", Value: 0x79, Kind: OperandInlineType},
	{Name: "throw", Value: 0x7a, Kind: OperandNone},
	{Name: "ldfld", Value: 0x7b, Kind: OperandInlineField},
	{Name: "ldflda", Value: 0x7c, Kind: OperandInlineField},
	{Name: "stfld", Value: 0x7d, Kind: OperandInlineField},
	{Name: "ldsfld", Value: 0x7e, Kind: OperandInlineField},
	{Name: "ldsflda", Value: 0x7f, Kind: OperandInlineField},
	{Name: "stsfld", Value: 0x80, Kind: OperandInlineField},
	{Name: "stobj", Value: 0x81, Kind: OperandInlineType},
	{Name: "conv.ovf.i1.un", Value: 0x82, Kind: OperandNone},
	{Name: "conv.ovf.i2.un", Value: 0x83, Kind: OperandNone},
	{Name: "conv.ovf.i4.un", Value: 0x84, Kind: OperandNone},
	{Name: "conv.ovf.i8.un", Value: 0x85, Kind: OperandNone},
	{Name: "conv.ovf.u1.un", Value: 0x86, Kind: OperandNone},
	{Name: "conv.ovf.u2.un", Value: 0x87, Kind: OperandNone},
	{Name: "conv.ovf.u4.un", Value: 0x88, Kind: OperandNone},
	{Name: "conv.ovf.u8.un", Value: 0x89, Kind: OperandNone},
	{Name: "conv.ovf.i.un", Value: 0x8a, Kind: OperandNone},
	{Name: "conv.ovf.u.un", Value: 0x8b, Kind: OperandNone},
	{Name: "box", Value: 0x8c, Kind: OperandInlineType},
	{Name: "newarr", Value: 0x8d, Kind: OperandInlineType},
	{Name: "ldlen", Value: 0x8e, Kind: OperandNone},
	{Name: "ldelema", Value: 0x8f, Kind: OperandInlineType},
	{Name: "ldelem.i1", Value: 0x90, Kind: OperandNone},
	{Name: "ldelem.u1", Value: 0x91, Kind: OperandNone},
	{Name: "ldelem.i2", Value: 0x92, Kind: OperandNone},
	{Name: "ldelem.u2", Value: 0x93, Kind: OperandNone},
	{Name: "ldelem.i4", Value: 0x94, Kind: OperandNone},
	{Name: "ldelem.u4", Value: 0x95, Kind: OperandNone},
	{Name: "ldelem.i8", Value: 0x96, Kind: OperandNone},
	{Name: "ldelem.i", Value: 0x97, Kind: OperandNone},
	{Name: "ldelem.r4", Value: 0x98, Kind: OperandNone},
	{Name: "ldelem.r8", Value: 0x99, Kind: OperandNone},
	{Name: "ldelem.ref", Value: 0x9a, Kind: OperandNone},
	{Name: "stelem.i", Value: 0x9b, Kind: OperandNone},
	{Name: "stelem.i1", Value: 0x9c, Kind: OperandNone},
	{Name: "stelem.i2", Value: 0x9d, Kind: OperandNone},
	{Name: "stelem.i4", Value: 0x9e, Kind: OperandNone},
	{Name: "stelem.i8", Value: 0x9f, Kind: OperandNone},
	{Name: "stelem.r4", Value: 0xa0, Kind: OperandNone},
	{Name: "stelem.r8", Value: 0xa1, Kind: OperandNone},
	{Name: "stelem.ref", Value: 0xa2, Kind: OperandNone},
	{Name: "ldelem", Value: 0xa3, Kind: OperandInlineType},
	{Name: "stelem", Value: 0xa4, Kind: OperandInlineType},
	{Name: "unbox.any", Value: 0xa5, Kind: OperandInlineType},
	{Name: "conv.ovf.i1", Value: 0xb3, Kind: OperandNone},
	{Name: "conv.ovf.u1", Value: 0xb4, Kind: OperandNone},
	{Name: "conv.ovf.i2", Value: 0xb5, Kind: OperandNone},
	{Name: "conv.ovf.u2", Value: 0xb6, Kind: OperandNone},
	{Name: "conv.ovf.i4", Value: 0xb7, Kind: OperandNone},
	{Name: "conv.ovf.u4", Value: 0xb8, Kind: OperandNone},
	{Name: "conv.ovf.i8", Value: 0xb9, Kind: OperandNone},
	{Name: "conv.ovf.u8", Value: 0xba, Kind: OperandNone},
	{Name: "refanyval", Value: 0xc2, Kind: OperandInlineType},
	{Name: "ckfinite", Value: 0xc3, Kind: OperandNone},
	{Name: "mkrefany", Value: 0xc6, Kind: OperandInlineType},
	{Name: "ldtoken", Value: 0xd0, Kind: OperandInlineTok},
	{Name: "conv.u2", Value: 0xd1, Kind: OperandNone},
	{Name: "conv.u1", Value: 0xd2, Kind: OperandNone},
	{Name: "conv.i", Value: 0xd3, Kind: OperandNone},
	{Name: "conv.ovf.i", Value: 0xd4, Kind: OperandNone},
	{Name: "conv.ovf.u", Value: 0xd5, Kind: OperandNone},
	{Name: "add.ovf", Value: 0xd6, Kind: OperandNone},
	{Name: "add.ovf.un", Value: 0xd7, Kind: OperandNone},
	{Name: "mul.ovf", Value: 0xd8, Kind: OperandNone},
	{Name: "mul.ovf.un", Value: 0xd9, Kind: OperandNone},
	{Name: "sub.ovf", Value: 0xda, Kind: OperandNone},
	{Name: "sub.ovf.un", Value: 0xdb, Kind: OperandNone},
	{Name: "endfinally", Value: 0xdc, Kind: OperandNone},
	{Name: "leave", Value: 0xdd, Kind: OperandBrTarget},
	{Name: "leave.s", Value: 0xde, Kind: OperandShortBrTarget},
	{Name: "stind.i", Value: 0xdf, Kind: OperandNone},
	{Name: "conv.u", Value: 0xe0, Kind: OperandNone},

	{Name: "arglist", Value: 0xfe00, Kind: OperandNone},
	{Name: "ceq", Value: 0xfe01, Kind: OperandNone},
	{Name: "cgt", Value: 0xfe02, Kind: OperandNone},
	{Name: "cgt.un", Value: 0xfe03, Kind: OperandNone},
	{Name: "clt", Value: 0xfe04, Kind: OperandNone},
	{Name: "clt.un", Value: 0xfe05, Kind: OperandNone},
	{Name: "ldftn", Value: 0xfe06, Kind: OperandInlineMethod},
	{Name: "ldvirtftn", Value: 0xfe07, Kind: OperandInlineMethod},
	{Name: "ldarg", Value: 0xfe09, Kind: OperandInlineVar},
	{Name: "ldarga", Value: 0xfe0a, Kind: OperandInlineVar},
	{Name: "starg", Value: 0xfe0b, Kind: OperandInlineVar},
	{Name: "ldloc", Value: 0xfe0c, Kind: OperandInlineVar},
	{Name: "ldloca", Value: 0xfe0d, Kind: OperandInlineVar},
	{Name: "stloc", Value: 0xfe0e, Kind: OperandInlineVar},
	{Name: "localloc", Value: 0xfe0f, Kind: OperandNone},
	{Name: "endfilter", Value: 0xfe11, Kind: OperandNone},
	{Name: "unaligned.", Value: 0xfe12, Kind: OperandShortInlineI},
	{Name: "volatile.", Value: 0xfe13, Kind: OperandNone},
	{Name: "tail.", Value: 0xfe14, Kind: OperandNone},
	{Name: "initobj", Value: 0xfe15, Kind: OperandInlineType},
	{Name: "constrained.", Value: 0xfe16, Kind: OperandInlineType},
	{Name: "cpblk", Value: 0xfe17, Kind: OperandNone},
	{Name: "initblk", Value: 0xfe18, Kind: OperandNone},
	{Name: "rethrow", Value: 0xfe1a, Kind: OperandNone},
	{Name: "sizeof", Value: 0xfe1c, Kind: OperandInlineType},
	{Name: "refanytype", Value: 0xfe1d, Kind: OperandNone},
	{Name: "readonly.", Value: 0xfe1e, Kind: OperandNone},
}

var (
	tableOnce    sync.Once
	oneByteTable [oneByteTableSize]*Opcode
	twoByteTable [twoByteTableSize]*Opcode
)

func initTables() {
	for i := range opcodes {
		op := &opcodes[i]
		if op.Size() == 1 {
			if oneByteTable[op.Value] != nil {
				panic(fmt.Sprintf("cil: duplicate one-byte opcode 0x%02x", op.Value))
			}
			oneByteTable[op.Value] = op
		} else {
			low := op.Value & 0xff
			if twoByteTable[low] != nil {
				panic(fmt.Sprintf("cil: duplicate two-byte opcode 0x%04x", op.Value))
			}
			twoByteTable[low] = op
		}
	}
}

// LookupOne returns the one-byte opcode for value, or nil.
func LookupOne(value byte) *Opcode {
	tableOnce.Do(initTables)
	if int(value) >= oneByteTableSize {
		return nil
	}
	return oneByteTable[value]
}

// LookupTwo returns the 0xFE-prefixed opcode for the low byte, or nil.
func LookupTwo(low byte) *Opcode {
	tableOnce.Do(initTables)
	if int(low) >= twoByteTableSize {
		return nil
	}
	return twoByteTable[low]
}
