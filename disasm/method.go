package disasm

import (
	"fmt"
	"strings"

	"github.com/wippyai/cil-disasm/cil"
	"github.com/wippyai/cil-disasm/errors"
	"github.com/wippyai/cil-disasm/metadata"
)

// methodHeaderFlags renders the attribute flag tokens of a .method line:
// the decomposed flag names minus the two metadata artifacts, plus the
// instance and newslot markers.
func methodHeaderFlags(m metadata.Method) []string {
	var tokens []string
	for _, name := range m.Attributes().Strings() {
		if name == "privatescope" || name == "vtablelayoutmask" {
			continue
		}
		tokens = append(tokens, name)
	}
	if !m.IsStatic() {
		tokens = append(tokens, "instance")
	}
	if m.IsVirtual() {
		tokens = append(tokens, "newslot")
	}
	return tokens
}

// method emits the full .method block.
func (e *emitter) method(m metadata.Method) (string, error) {
	impl := m.ImplAttributes()
	if !impl.IsIL() && !impl.IsRuntime() {
		return "", errNotIL(m)
	}

	// runtime-provided methods carry no IL; the block stays empty
	var body *cil.Body
	if impl.IsIL() {
		decoded, err := cil.Decode(m)
		if err != nil {
			return "", err
		}
		body = decoded
	}

	w := newIndentWriter(4)
	w.appendLine(e.methodHeader(m))
	w.appendLine("{")
	w.indent()

	for _, ca := range m.CustomAttributes() {
		w.appendLine(e.customAttribute(ca))
	}
	e.paramDefaults(w, m)

	if body != nil {
		w.appendLine(fmt.Sprintf("// Code size  %d (0x%x)", body.CodeSize, body.CodeSize))
		w.appendLine(fmt.Sprintf(".maxstack %d", body.MaxStack))
		e.locals(w, body)
		e.instructions(w, body)
	}

	w.unindent()
	w.appendLine("}")
	return w.String(), nil
}

func (e *emitter) methodHeader(m metadata.Method) string {
	var sb strings.Builder
	sb.WriteString(".method ")
	if tokens := methodHeaderFlags(m); len(tokens) > 0 {
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteByte(' ')
	}

	if m.IsConstructor() {
		sb.WriteString("void ")
	} else {
		sb.WriteString(typeName(e.current, m.ReturnType(), true, false))
		sb.WriteByte(' ')
	}

	sb.WriteString(quoteCompilerGenerated(m.Name(), m.IsCompilerGenerated()))

	if gp := m.GenericParameters(); len(gp) > 0 {
		sb.WriteByte('<')
		sb.WriteString(genericParameterList(e.current, gp))
		sb.WriteByte('>')
	}

	sb.WriteByte('(')
	for i, p := range m.Parameters() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.parameter(p))
	}
	sb.WriteString(") ")

	impl := m.ImplAttributes()
	switch {
	case impl.IsIL():
		sb.WriteString("cil")
	case impl.IsRuntime():
		sb.WriteString("runtime")
	}
	if impl.IsManaged() {
		sb.WriteString(" managed")
	}
	return sb.String()
}

// parameter renders one formal parameter of a method signature.
func (e *emitter) parameter(p metadata.Parameter) string {
	var sb strings.Builder
	if p.HasDefault() {
		sb.WriteString("[opt] ")
	}
	if p.IsOut() {
		sb.WriteString("[out] ")
	}
	sb.WriteString(typeIdentifier(e.current, p.Type(), true))
	sb.WriteString(typeName(e.current, p.Type(), true, true))
	sb.WriteByte(' ')
	sb.WriteString(quoteParamName(p.Name()))
	return sb.String()
}

// paramDefaults emits the .param pseudo-directives for defaulted parameters.
func (e *emitter) paramDefaults(w *indentWriter, m metadata.Method) {
	for _, p := range m.Parameters() {
		if !p.HasDefault() {
			continue
		}
		w.appendLine(fmt.Sprintf(".param [%d] = %s", p.Position()+1, e.defaultValue(p)))
	}
}

// defaultValue renders a parameter's default in the pseudo-directive form:
// strings quoted, integers as width-padded hex, floats in round-trip form.
func (e *emitter) defaultValue(p metadata.Parameter) string {
	switch v := p.Default().(type) {
	case nil:
		return "nullref"
	case string:
		return `"` + v + `"`
	case int8:
		return fmt.Sprintf("int8(0x%02X)", uint8(v))
	case uint8:
		return fmt.Sprintf("uint8(0x%02X)", v)
	case int16:
		return fmt.Sprintf("int16(0x%04X)", uint16(v))
	case uint16:
		return fmt.Sprintf("uint16(0x%04X)", v)
	case int32:
		return fmt.Sprintf("int32(0x%08X)", uint32(v))
	case uint32:
		return fmt.Sprintf("uint32(0x%08X)", v)
	case int64:
		return fmt.Sprintf("int64(0x%016X)", uint64(v))
	case uint64:
		return fmt.Sprintf("uint64(0x%016X)", v)
	case float32:
		return "float32(" + formatFloat32(v) + ")"
	case float64:
		return "float64(" + formatFloat64(v) + ")"
	default:
		return fmt.Sprintf("%s(%v)", typeName(e.current, p.Type(), true, true), v)
	}
}

func (e *emitter) locals(w *indentWriter, body *cil.Body) {
	if len(body.Locals) == 0 {
		return
	}
	parts := make([]string, len(body.Locals))
	for i, l := range body.Locals {
		parts[i] = fmt.Sprintf("%s%s V_%d",
			typeIdentifier(e.current, l.Type, true),
			typeName(e.current, l.Type, true, false),
			l.Index)
	}
	w.appendLine(".locals init (" + strings.Join(parts, ", ") + ")")
}

// instructions walks the body, interleaving exception-region markers with
// the aligned instruction lines.
func (e *emitter) instructions(w *indentWriter, body *cil.Body) {
	regions := cil.BuildRegions(body.Clauses)
	pad := maxSpacing(body)

	for _, inst := range body.Instructions {
		e.regionMarkers(w, regions.Markers(inst.Offset))
		w.appendLine(e.instruction(inst, pad))
	}
	e.regionMarkers(w, regions.Markers(body.CodeSize))
}

func (e *emitter) regionMarkers(w *indentWriter, markers []cil.RegionMarker) {
	for _, marker := range markers {
		if marker.Side == cil.RegionEnd {
			w.unindent()
			w.appendLine("}")
			continue
		}
		switch marker.Kind {
		case cil.RegionTry:
			w.appendLine(".try")
		case cil.RegionCatch:
			w.appendLine("catch " + typeName(e.current, marker.CatchType, false, false))
		case cil.RegionFilter:
			w.appendLine("filter")
		case cil.RegionFinally:
			w.appendLine("finally")
		case cil.RegionFault:
			w.appendLine("fault")
		case cil.RegionFilterCatch:
			// the handler block of a filter opens with a bare brace
		}
		w.appendLine("{")
		w.indent()
	}
}

// customAttribute renders one .custom pseudo-directive.
func (e *emitter) customAttribute(ca metadata.CustomAttribute) string {
	var sb strings.Builder
	sb.WriteString(".custom ")
	if ctor := ca.Constructor(); ctor != nil {
		if !ctor.IsStatic() {
			sb.WriteString("instance ")
		}
		sb.WriteString("void ")
		sb.WriteString(typeName(e.current, ca.AttributeType(), false, false))
		sb.WriteString("::.ctor(")
		for i, p := range ctor.Parameters() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeName(e.current, p.Type(), true, true))
		}
		sb.WriteString(")")
	} else {
		sb.WriteString("instance void ")
		sb.WriteString(typeName(e.current, ca.AttributeType(), false, false))
		sb.WriteString("::.ctor()")
	}
	sb.WriteString(" = ( ")
	sb.WriteString(blobHex(ca.Blob()))
	sb.WriteString(" )")
	return sb.String()
}

// blobHex renders a custom-attribute blob; an empty blob is the standard
// four-byte empty-argument encoding.
func blobHex(blob []byte) string {
	if len(blob) == 0 {
		return "01 00 00 00"
	}
	parts := make([]string, len(blob))
	for i, b := range blob {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// errNotIL reports a method whose implementation cannot be rendered.
func errNotIL(m metadata.Method) error {
	return errors.New(errors.PhaseEmit, errors.KindUnsupported).
		Path(m.Name()).
		Detail("method implementation is neither IL nor runtime").
		Build()
}
