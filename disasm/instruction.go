package disasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/cil-disasm/cil"
	"github.com/wippyai/cil-disasm/metadata"
)

// nilLabel renders a branch target that fell outside the instruction
// stream.
const nilLabel = "IL_????"

// emitter renders entities relative to one referring assembly.
type emitter struct {
	current metadata.Assembly
}

func label(inst *cil.Instruction) string {
	if inst == nil {
		return nilLabel
	}
	return fmt.Sprintf("IL_%04x", inst.Offset)
}

// maxSpacing returns the operand column for a body: the widest
// "IL_xxxx: mnemonic " prefix across its instructions.
func maxSpacing(body *cil.Body) int {
	max := 0
	for _, inst := range body.Instructions {
		if n := len(label(inst)) + 2 + len(inst.Opcode.Name) + 1; n > max {
			max = n
		}
	}
	return max
}

// instruction renders one instruction line without the indentation prefix.
// pad is the operand column from maxSpacing; zero disables alignment.
func (e *emitter) instruction(inst *cil.Instruction, pad int) string {
	head := label(inst) + ": " + inst.Opcode.Name
	if inst.Operand == nil {
		return head
	}
	if width := pad + 3; len(head) < width {
		head += strings.Repeat(" ", width-len(head))
	} else {
		head += " "
	}
	return head + e.operand(inst)
}

func (e *emitter) operand(inst *cil.Instruction) string {
	switch op := inst.Operand.(type) {
	case *cil.BranchOperand:
		return label(op.Target)

	case *cil.SwitchOperand:
		labels := make([]string, len(op.Targets))
		for i, t := range op.Targets {
			labels[i] = label(t)
		}
		return "(" + strings.Join(labels, ",") + ")"

	case *cil.StringOperand:
		return `"` + op.Value + `"`

	case *cil.MemberOperand:
		return e.member(inst, op.Member)

	case *cil.SigOperand:
		return fmt.Sprintf("signature(0x%08x)", op.Token)

	case *cil.LocalOperand:
		return fmt.Sprintf("V_%d", op.Local.Index)

	case *cil.ParamOperand:
		return quoteParamName(op.Param.Name())

	case *cil.Int8Operand:
		return strconv.Itoa(int(op.Value))
	case *cil.UInt8Operand:
		return strconv.Itoa(int(op.Value))
	case *cil.Int32Operand:
		return strconv.Itoa(int(op.Value))
	case *cil.Int64Operand:
		return strconv.FormatInt(op.Value, 10)
	case *cil.Float32Operand:
		return formatFloat32(op.Value)
	case *cil.Float64Operand:
		return formatFloat64(op.Value)

	default:
		return fmt.Sprintf("%v", inst.Operand)
	}
}

func (e *emitter) member(inst *cil.Instruction, m metadata.Member) string {
	switch mm := m.(type) {
	case metadata.Type:
		return typeName(e.current, mm, false, false)

	case metadata.Field:
		var sb strings.Builder
		sb.WriteString(typeIdentifier(e.current, mm.FieldType(), true))
		sb.WriteString(typeName(e.current, mm.FieldType(), true, false))
		sb.WriteByte(' ')
		sb.WriteString(typeName(e.current, mm.DeclaringType(), false, false))
		sb.WriteString("::")
		sb.WriteString(quoteCompilerGenerated(mm.Name(), mm.IsCompilerGenerated()))
		return sb.String()

	case metadata.Method:
		var sb strings.Builder
		if inst.Opcode.IsCall() && !mm.IsStatic() {
			sb.WriteString("instance ")
		}
		if mm.IsConstructor() {
			sb.WriteString("void ")
			sb.WriteString(typeIdentifier(e.current, mm.DeclaringType(), true))
			sb.WriteString(typeName(e.current, mm.DeclaringType(), false, false))
			sb.WriteString("::.ctor")
		} else {
			sb.WriteString(typeIdentifier(e.current, mm.ReturnType(), true))
			sb.WriteString(typeName(e.current, mm.ReturnType(), true, false))
			sb.WriteByte(' ')
			sb.WriteString(typeName(e.current, mm.DeclaringType(), false, false))
			sb.WriteString("::")
			sb.WriteString(quoteCompilerGenerated(mm.Name(), mm.IsCompilerGenerated()))
		}
		sb.WriteByte('(')
		params := mm.Parameters()
		for i, p := range params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeName(e.current, p.Type(), true, true))
		}
		sb.WriteByte(')')
		return sb.String()

	default:
		return m.Name()
	}
}

// formatFloat64 matches the runtime's round-trip G17 invariant rendering.
func formatFloat64(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'g', 17, 64), "e", "E", 1)
}

// formatFloat32 matches the runtime's G9 invariant rendering.
func formatFloat32(v float32) string {
	return strings.Replace(strconv.FormatFloat(float64(v), 'g', 9, 32), "e", "E", 1)
}
