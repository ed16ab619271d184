package disasm

import (
	"strings"

	"github.com/wippyai/cil-disasm/metadata"
)

// typeAliases maps fully-qualified runtime type names to the short keyword
// forms of the assembly syntax. byref forms alias the same way.
var typeAliases = map[string]string{
	"System.SByte":   "int8",
	"System.Int16":   "int16",
	"System.Int32":   "int32",
	"System.Int64":   "int64",
	"System.Byte":    "uint8",
	"System.UInt16":  "uint16",
	"System.UInt32":  "uint32",
	"System.UInt64":  "uint64",
	"System.Single":  "float32",
	"System.Double":  "float64",
	"System.String":  "string",
	"System.Char":    "char",
	"System.Boolean": "bool",
	"System.Void":    "void",
	"System.Object":  "object",
}

var byrefAliases = func() map[string]string {
	m := make(map[string]string, len(typeAliases))
	for k, v := range typeAliases {
		m[k+"&"] = v + "&"
	}
	return m
}()

// noClassIdentifier lists types that never take the class marker.
var noClassIdentifier = map[string]bool{
	"System.Object":    true,
	"System.String":    true,
	"System.Void":      true,
	"System.ValueType": true,
}

// typeName renders a type reference the way operands and signatures spell
// it: alias keywords when requested, an [assembly] prefix when the type
// lives outside the referring assembly, recursive element and generic
// argument rendering.
func typeName(current metadata.Assembly, t metadata.Type, useAliases, useAliasOnParams bool) string {
	if t == nil {
		return ""
	}

	if t.IsArray() {
		elem := typeName(current, t.ElementType(), useAliases || useAliasOnParams, useAliasOnParams)
		if rank := t.ArrayRank(); rank > 1 {
			dims := make([]string, rank)
			for i := range dims {
				dims[i] = "0..."
			}
			return elem + "[" + strings.Join(dims, ",") + "]"
		}
		return elem + "[]"
	}

	if useAliases {
		if alias, ok := typeAliases[t.FullName()]; ok {
			return alias
		}
		if alias, ok := byrefAliases[t.FullName()]; ok {
			return alias
		}
	}

	if t.IsGenericParameter() {
		return t.Name()
	}

	prefix := assemblyPrefix(current, t)

	if t.IsGenericType() {
		args := t.GenericArguments()
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = typeName(current, a, useAliases, useAliasOnParams)
		}
		return prefix + t.FullName() + "<" + strings.Join(rendered, ",") + ">"
	}

	return prefix + t.FullName()
}

// assemblyPrefix returns "[short-name]" when the type's assembly differs
// from the referring assembly, "" otherwise.
func assemblyPrefix(current metadata.Assembly, t metadata.Type) string {
	asm := t.Assembly()
	if asm == nil {
		return ""
	}
	if current != nil && asm.FullName() == current.FullName() {
		return ""
	}
	return "[" + asm.Name() + "]"
}

// typeIdentifier returns the "class" marker required on references to
// class and interface types in member positions, or "".
func typeIdentifier(current metadata.Assembly, t metadata.Type, trailingSpace bool) string {
	if t == nil {
		return ""
	}
	if t.IsArray() {
		return typeIdentifier(current, t.ElementType(), trailingSpace)
	}
	if !t.IsClass() && !t.IsInterface() {
		return ""
	}
	if noClassIdentifier[t.FullName()] {
		return ""
	}
	if t.IsGenericParameter() {
		return ""
	}
	if current != nil && t.Assembly() != nil && t.Assembly().FullName() == current.FullName() {
		return ""
	}
	if trailingSpace {
		return "class "
	}
	return "class"
}

// genericParameterList renders the inner text of a <...> generic parameter
// declaration list.
func genericParameterList(current metadata.Assembly, params []metadata.GenericParameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var tokens []string
		attrs := p.Attributes()
		if attrs.HasDefaultConstructorConstraint() {
			tokens = append(tokens, ".ctor")
		}
		if attrs.HasValueTypeConstraint() {
			tokens = append(tokens, "valuetype")
		}
		if attrs.HasReferenceTypeConstraint() {
			tokens = append(tokens, "class")
		}
		if attrs.IsCovariant() {
			tokens = append(tokens, "+")
		}
		if attrs.IsContravariant() {
			tokens = append(tokens, "-")
		}
		if constraints := p.Constraints(); len(constraints) > 0 {
			rendered := make([]string, len(constraints))
			for j, c := range constraints {
				rendered[j] = typeIdentifier(current, c, true) + typeName(current, c, false, false)
			}
			tokens = append(tokens, "("+strings.Join(rendered, ", ")+")")
		}
		tokens = append(tokens, p.Name())
		parts[i] = strings.Join(tokens, " ")
	}
	return strings.Join(parts, ", ")
}

// quoteCompilerGenerated wraps compiler-generated member names in single
// quotes so the angle brackets they contain stay lexically inert.
func quoteCompilerGenerated(name string, generated bool) string {
	if generated {
		return "'" + name + "'"
	}
	return name
}

// reservedParamNames are parameter names that collide with keywords and
// must be quoted in declarations and operands.
var reservedParamNames = map[string]bool{
	"object": true,
	"value":  true,
	"method": true,
}

func quoteParamName(name string) string {
	if reservedParamNames[name] {
		return "'" + name + "'"
	}
	return name
}
