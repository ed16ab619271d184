package cil

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/cil-disasm/cil/internal/binary"
	"github.com/wippyai/cil-disasm/errors"
	"github.com/wippyai/cil-disasm/metadata"
)

// Body is a decoded method body: the instruction list plus the pieces of the
// raw body the emitters need.
type Body struct {
	Method       metadata.Method
	Instructions []*Instruction
	Locals       []metadata.Local
	Clauses      []metadata.ExceptionClause
	MaxStack     int
	CodeSize     int
}

// First returns the head of the instruction list, nil for an empty body.
func (b *Body) First() *Instruction {
	if len(b.Instructions) == 0 {
		return nil
	}
	return b.Instructions[0]
}

// Decode decodes the IL stream of method into a Body. The method's declaring
// module resolves embedded tokens; the generic arguments of the method and
// its declaring type supply the instantiation context.
func Decode(method metadata.Method) (*Body, error) {
	mb := method.Body()
	if mb == nil {
		return nil, errors.NoBody(method.Name())
	}
	il := mb.IL()
	if il == nil {
		return nil, errors.CannotReadIL(method.Name())
	}

	var typeArgs []metadata.Type
	if dt := method.DeclaringType(); dt != nil {
		typeArgs = dt.GenericArguments()
	}
	methodArgs := method.GenericArguments()

	body := &Body{
		Method:   method,
		Locals:   mb.Locals(),
		Clauses:  mb.ExceptionClauses(),
		MaxStack: mb.MaxStack(),
		CodeSize: len(il),
	}

	d := decoder{
		r:          binary.NewReader(il),
		method:     method,
		module:     method.Module(),
		locals:     body.Locals,
		params:     method.Parameters(),
		typeArgs:   typeArgs,
		methodArgs: methodArgs,
	}

	var prev *Instruction
	for d.r.Len() > 0 {
		inst, err := d.next()
		if err != nil {
			return nil, err
		}
		inst.Prev = prev
		if prev != nil {
			prev.Next = inst
		}
		prev = inst
		body.Instructions = append(body.Instructions, inst)
	}

	body.resolveBranches()
	return body, nil
}

type decoder struct {
	r          *binary.Reader
	method     metadata.Method
	module     metadata.Module
	locals     []metadata.Local
	params     []metadata.Parameter
	typeArgs   []metadata.Type
	methodArgs []metadata.Type
}

// next decodes one instruction at the cursor.
func (d *decoder) next() (*Instruction, error) {
	offset := d.r.Position()

	b, err := d.r.ReadU8()
	if err != nil {
		return nil, err
	}
	var op *Opcode
	if b == twoBytePrefix {
		low, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		op = LookupTwo(low)
		if op == nil {
			return nil, errors.UnknownOpcode(offset, 0xfe00|uint16(low))
		}
	} else {
		op = LookupOne(b)
		if op == nil {
			return nil, errors.UnknownOpcode(offset, uint16(b))
		}
	}

	operand, err := d.operand(op, offset)
	if err != nil {
		return nil, err
	}
	return &Instruction{Offset: offset, Opcode: op, Operand: operand}, nil
}

func (d *decoder) operand(op *Opcode, offset int) (any, error) {
	switch op.Kind {
	case OperandNone:
		return nil, nil

	case OperandShortBrTarget:
		disp, err := d.r.ReadS8()
		if err != nil {
			return nil, err
		}
		return &BranchOperand{raw: d.r.Position() + int(disp)}, nil

	case OperandBrTarget:
		disp, err := d.r.ReadS32()
		if err != nil {
			return nil, err
		}
		return &BranchOperand{raw: d.r.Position() + int(disp)}, nil

	case OperandInlineSwitch:
		n, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		base := d.r.Position() + 4*int(n)
		raw := make([]int, n)
		for i := range raw {
			disp, err := d.r.ReadS32()
			if err != nil {
				return nil, err
			}
			raw[i] = base + int(disp)
		}
		return &SwitchOperand{raw: raw, Targets: make([]*Instruction, n)}, nil

	case OperandShortInlineI:
		v, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		if op.Value == opValLdcI4S {
			return &Int8Operand{Value: int8(v)}, nil
		}
		return &UInt8Operand{Value: v}, nil

	case OperandInlineI:
		v, err := d.r.ReadS32()
		if err != nil {
			return nil, err
		}
		return &Int32Operand{Value: v}, nil

	case OperandInlineI8:
		v, err := d.r.ReadS64()
		if err != nil {
			return nil, err
		}
		return &Int64Operand{Value: v}, nil

	case OperandShortInlineR:
		v, err := d.r.ReadF32()
		if err != nil {
			return nil, err
		}
		return &Float32Operand{Value: v}, nil

	case OperandInlineR:
		v, err := d.r.ReadF64()
		if err != nil {
			return nil, err
		}
		return &Float64Operand{Value: v}, nil

	case OperandInlineString:
		tok, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		s, err := d.module.ResolveString(tok)
		if err != nil {
			return nil, errors.TokenResolution(tok, err)
		}
		return &StringOperand{Value: s}, nil

	case OperandInlineSig:
		tok, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		blob, err := d.module.ResolveSignature(tok)
		if err != nil {
			return nil, errors.TokenResolution(tok, err)
		}
		return &SigOperand{Blob: blob, Token: tok}, nil

	case OperandInlineTok, OperandInlineType, OperandInlineMethod, OperandInlineField:
		tok, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		m, err := d.module.ResolveMember(tok, d.typeArgs, d.methodArgs)
		if err != nil {
			return nil, errors.TokenResolution(tok, err)
		}
		return &MemberOperand{Member: m}, nil

	case OperandShortInlineVar:
		idx, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		return d.variable(op, offset, int(idx))

	case OperandInlineVar:
		idx, err := d.r.ReadS16()
		if err != nil {
			return nil, err
		}
		return d.variable(op, offset, int(idx))

	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindUnsupported).
			Offset(offset).
			Detail("operand kind %d (%s)", op.Kind, op.Name).
			Build()
	}
}

// variable dispatches a var operand: mnemonics containing "loc" index the
// local-variable list, all others the parameter list. On instance methods
// argument 0 is the implicit receiver, so parameter indices shift by one.
func (d *decoder) variable(op *Opcode, offset, idx int) (any, error) {
	if strings.Contains(op.Name, "loc") {
		if idx < 0 || idx >= len(d.locals) {
			return nil, errors.New(errors.PhaseDecode, errors.KindMalformedIL).
				Offset(offset).
				Detail("local index %d out of range (%d locals)", idx, len(d.locals)).
				Build()
		}
		return &LocalOperand{Local: d.locals[idx]}, nil
	}
	if !d.method.IsStatic() {
		idx--
	}
	if idx < 0 || idx >= len(d.params) {
		return nil, errors.New(errors.PhaseDecode, errors.KindMalformedIL).
			Offset(offset).
			Detail("argument index %d out of range (%d parameters)", idx, len(d.params)).
			Build()
	}
	return &ParamOperand{Param: d.params[idx]}, nil
}

// resolveBranches replaces the raw absolute offsets stored during decode
// with instruction references. Targets outside the stream resolve to nil.
func (b *Body) resolveBranches() {
	for _, inst := range b.Instructions {
		switch op := inst.Operand.(type) {
		case *BranchOperand:
			op.Target = b.at(op.raw)
			if op.Target == nil {
				Logger().Warn("branch target outside instruction stream",
					zap.Int("offset", inst.Offset),
					zap.Int("target", op.raw))
			}
		case *SwitchOperand:
			for i, raw := range op.raw {
				op.Targets[i] = b.at(raw)
			}
		}
	}
}

// at returns the instruction at the exact byte offset, or nil.
func (b *Body) at(offset int) *Instruction {
	n := len(b.Instructions)
	if n == 0 || offset < 0 || offset > b.Instructions[n-1].Offset {
		return nil
	}
	i := sort.Search(n, func(i int) bool {
		return b.Instructions[i].Offset >= offset
	})
	if i < n && b.Instructions[i].Offset == offset {
		return b.Instructions[i]
	}
	return nil
}
