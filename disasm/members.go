package disasm

import (
	"fmt"
	"strings"

	"github.com/wippyai/cil-disasm/metadata"
)

// field emits a .field line with its custom attributes.
func (e *emitter) field(f metadata.Field) string {
	w := newIndentWriter(4)

	var sb strings.Builder
	sb.WriteString(".field ")
	sb.WriteString(strings.Join(f.Attributes().Strings(), " "))
	if dt := f.DeclaringType(); dt != nil && dt.IsValueType() {
		sb.WriteString(" valuetype")
	}
	sb.WriteByte(' ')
	sb.WriteString(typeName(e.current, f.FieldType(), true, false))
	sb.WriteByte(' ')
	sb.WriteString(quoteCompilerGenerated(f.Name(), f.IsCompilerGenerated()))

	if f.IsLiteral() {
		sb.WriteString(" = ")
		sb.WriteString(e.constant(f))
	}
	w.appendLine(sb.String())

	for _, ca := range f.CustomAttributes() {
		w.appendLine(e.customAttribute(ca))
	}
	return w.String()
}

// constant renders a literal field's value. Enum members spell the value
// with the enum's underlying primitive name.
func (e *emitter) constant(f metadata.Field) string {
	typ := f.FieldType()
	name := typeName(e.current, typ, true, false)
	if typ != nil && typ.IsEnum() {
		if u := typ.EnumUnderlyingType(); u != nil {
			name = typeName(e.current, u, true, false)
		}
	}
	switch v := f.Constant().(type) {
	case nil:
		return "nullref"
	case string:
		return `"` + v + `"`
	case int8:
		return fmt.Sprintf("%s(0x%02X)", name, uint8(v))
	case uint8:
		return fmt.Sprintf("%s(0x%02X)", name, v)
	case int16:
		return fmt.Sprintf("%s(0x%04X)", name, uint16(v))
	case uint16:
		return fmt.Sprintf("%s(0x%04X)", name, v)
	case int32:
		return fmt.Sprintf("%s(0x%08X)", name, uint32(v))
	case uint32:
		return fmt.Sprintf("%s(0x%08X)", name, v)
	case int64:
		return fmt.Sprintf("%s(0x%016X)", name, uint64(v))
	case uint64:
		return fmt.Sprintf("%s(0x%016X)", name, v)
	case float32:
		return name + "(" + formatFloat32(v) + ")"
	case float64:
		return name + "(" + formatFloat64(v) + ")"
	default:
		return fmt.Sprintf("%s(%v)", name, v)
	}
}

// property emits a .property block with accessor references.
func (e *emitter) property(p metadata.Property) string {
	w := newIndentWriter(4)

	accessor := p.Getter()
	if accessor == nil {
		accessor = p.Setter()
	}

	var sb strings.Builder
	sb.WriteString(".property ")
	if accessor != nil && !accessor.IsStatic() {
		sb.WriteString("instance ")
	}
	sb.WriteString(typeIdentifier(e.current, p.PropertyType(), true))
	sb.WriteString(typeName(e.current, p.PropertyType(), true, false))
	sb.WriteByte(' ')
	sb.WriteString(quoteCompilerGenerated(p.Name(), p.IsCompilerGenerated()))
	sb.WriteString("()")
	w.appendLine(sb.String())

	w.appendLine("{")
	w.indent()
	for _, ca := range p.CustomAttributes() {
		w.appendLine(e.customAttribute(ca))
	}
	if g := p.Getter(); g != nil {
		w.appendLine(".get " + e.accessor(g))
	}
	if s := p.Setter(); s != nil {
		w.appendLine(".set " + e.accessor(s))
	}
	w.unindent()
	w.appendLine("}")
	return w.String()
}

// event emits a .event block with accessor references.
func (e *emitter) event(ev metadata.Event) string {
	w := newIndentWriter(4)

	var sb strings.Builder
	sb.WriteString(".event ")
	sb.WriteString(typeName(e.current, ev.HandlerType(), false, false))
	sb.WriteByte(' ')
	sb.WriteString(quoteCompilerGenerated(ev.Name(), ev.IsCompilerGenerated()))
	w.appendLine(sb.String())

	w.appendLine("{")
	w.indent()
	for _, ca := range ev.CustomAttributes() {
		w.appendLine(e.customAttribute(ca))
	}
	if a := ev.AddMethod(); a != nil {
		w.appendLine(".addon " + e.accessor(a))
	}
	if r := ev.RemoveMethod(); r != nil {
		w.appendLine(".removeon " + e.accessor(r))
	}
	w.unindent()
	w.appendLine("}")
	return w.String()
}

// accessor renders a method reference the way .get/.set/.addon lines spell
// it: instance marker, aliased return type, declaring type, parameter list.
func (e *emitter) accessor(m metadata.Method) string {
	var sb strings.Builder
	if !m.IsStatic() {
		sb.WriteString("instance ")
	}
	sb.WriteString(typeName(e.current, m.ReturnType(), true, false))
	sb.WriteByte(' ')
	sb.WriteString(typeName(e.current, m.DeclaringType(), false, false))
	sb.WriteString("::")
	sb.WriteString(quoteCompilerGenerated(m.Name(), m.IsCompilerGenerated()))
	sb.WriteByte('(')
	for i, p := range m.Parameters() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typeName(e.current, p.Type(), true, true))
	}
	sb.WriteByte(')')
	return sb.String()
}
