package disasm

import (
	"strings"

	"github.com/wippyai/cil-disasm/metadata"
)

// typeHeader emits the .class header block: the attribute line, the extends
// and implements lines, and an empty brace pair.
func (e *emitter) typeHeader(t metadata.Type) string {
	w := newIndentWriter(7)

	attrs := t.Attributes()
	tokens := []string{".class"}
	switch {
	case t.IsEnum():
		tokens = append(tokens, "enum")
	case t.IsValueType():
		tokens = append(tokens, "value")
	}
	if attrs.IsInterface() {
		tokens = append(tokens, "interface")
	}
	if attrs.IsPublic() {
		tokens = append(tokens, "public")
	} else {
		tokens = append(tokens, "private")
	}
	tokens = append(tokens, attrs.LayoutKeyword())
	if attrs.IsAnsiClass() {
		tokens = append(tokens, "ansi")
	}
	if attrs.IsAbstract() {
		tokens = append(tokens, "abstract")
	}
	if attrs.IsSealed() {
		tokens = append(tokens, "sealed")
	}
	if attrs.BeforeFieldInit() {
		tokens = append(tokens, "beforefieldinit")
	}

	name := t.FullName()
	if gp := t.GenericParameters(); len(gp) > 0 {
		name += "<" + genericParameterList(e.current, gp) + ">"
	}
	tokens = append(tokens, name)
	w.appendLine(strings.Join(tokens, " "))

	w.indent()
	if base := t.BaseType(); base != nil && !attrs.IsInterface() {
		w.appendLine("extends " + typeName(e.current, base, false, false))
	}
	if ifaces := t.Interfaces(); len(ifaces) > 0 {
		rendered := make([]string, len(ifaces))
		for i, iface := range ifaces {
			rendered[i] = typeName(e.current, iface, false, false)
		}
		w.appendLine("implements " + strings.Join(rendered, ", "))
	}
	w.unindent()

	w.appendLine("{")
	w.appendLine("}")
	return w.String()
}
