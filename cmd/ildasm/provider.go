package main

import (
	"fmt"

	"github.com/wippyai/cil-disasm/metadata"
)

// The raw provider backs disassembly of a bare IL stream with no metadata
// tables: tokens resolve to opaque placeholder members, strings and
// signatures to placeholder values. It exists so the decode and emit
// pipeline can run against IL captured outside a managed module.

type rawAssembly struct{ full string }

func (a *rawAssembly) FullName() string { return a.full }
func (a *rawAssembly) Name() string     { return a.full }

var rawAsm = &rawAssembly{full: "raw"}

type rawModule struct{}

func (m *rawModule) Name() string                { return "raw.il" }
func (m *rawModule) Assembly() metadata.Assembly { return rawAsm }

func (m *rawModule) ResolveMember(token uint32, _, _ []metadata.Type) (metadata.Member, error) {
	return &rawMember{name: fmt.Sprintf("token(0x%08x)", token)}, nil
}

func (m *rawModule) ResolveString(token uint32) (string, error) {
	return fmt.Sprintf("<string 0x%08x>", token), nil
}

func (m *rawModule) ResolveSignature(token uint32) ([]byte, error) {
	return nil, nil
}

type rawMember struct{ name string }

func (m *rawMember) Name() string                   { return m.name }
func (m *rawMember) DeclaringType() metadata.Type   { return nil }
func (m *rawMember) IsCompilerGenerated() bool      { return false }

// rawType is a placeholder system type given to synthetic locals,
// parameters, and the return slot.
type rawType struct {
	name      string
	valueType bool
}

func (t *rawType) Name() string                  { return t.name }
func (t *rawType) DeclaringType() metadata.Type  { return nil }
func (t *rawType) IsCompilerGenerated() bool     { return false }
func (t *rawType) FullName() string              { return "System." + t.name }
func (t *rawType) Namespace() string             { return "System" }
func (t *rawType) Assembly() metadata.Assembly   { return rawAsm }
func (t *rawType) IsClass() bool                 { return !t.valueType }
func (t *rawType) IsInterface() bool             { return false }
func (t *rawType) IsValueType() bool             { return t.valueType }
func (t *rawType) IsEnum() bool                  { return false }
func (t *rawType) IsArray() bool                 { return false }
func (t *rawType) IsByRef() bool                 { return false }
func (t *rawType) IsGenericType() bool           { return false }
func (t *rawType) IsGenericParameter() bool      { return false }
func (t *rawType) ElementType() metadata.Type    { return nil }
func (t *rawType) ArrayRank() int                { return 0 }
func (t *rawType) BaseType() metadata.Type       { return nil }
func (t *rawType) Interfaces() []metadata.Type   { return nil }
func (t *rawType) EnumUnderlyingType() metadata.Type { return nil }
func (t *rawType) Attributes() metadata.TypeAttributes { return metadata.TypePublic }
func (t *rawType) GenericArguments() []metadata.Type   { return nil }
func (t *rawType) GenericParameters() []metadata.GenericParameter { return nil }
func (t *rawType) Fields(metadata.Binding) []metadata.Field       { return nil }
func (t *rawType) Properties(metadata.Binding) []metadata.Property { return nil }
func (t *rawType) Events(metadata.Binding) []metadata.Event       { return nil }
func (t *rawType) Methods(metadata.Binding) []metadata.Method     { return nil }
func (t *rawType) Constructors(metadata.Binding) []metadata.Method { return nil }
func (t *rawType) CustomAttributes() []metadata.CustomAttribute   { return nil }

var (
	objectType = &rawType{name: "Object"}
	voidType   = &rawType{name: "Void", valueType: true}
)

type rawParam struct {
	name string
	pos  int
}

func (p *rawParam) Name() string                                 { return p.name }
func (p *rawParam) Type() metadata.Type                          { return objectType }
func (p *rawParam) Position() int                                { return p.pos }
func (p *rawParam) IsOut() bool                                  { return false }
func (p *rawParam) HasDefault() bool                             { return false }
func (p *rawParam) Default() any                                 { return nil }
func (p *rawParam) CustomAttributes() []metadata.CustomAttribute { return nil }

type rawBody struct {
	il       []byte
	maxStack int
	locals   []metadata.Local
}

func (b *rawBody) IL() []byte                                   { return b.il }
func (b *rawBody) MaxStack() int                                { return b.maxStack }
func (b *rawBody) Locals() []metadata.Local                     { return b.locals }
func (b *rawBody) ExceptionClauses() []metadata.ExceptionClause { return nil }

// rawMethod is the synthetic static method wrapping the IL stream.
type rawMethod struct {
	body   *rawBody
	params []metadata.Parameter
}

func newRawMethod(il []byte, maxStack, nLocals, nParams int) *rawMethod {
	locals := make([]metadata.Local, nLocals)
	for i := range locals {
		locals[i] = metadata.Local{Index: i, Type: objectType}
	}
	params := make([]metadata.Parameter, nParams)
	for i := range params {
		params[i] = &rawParam{name: fmt.Sprintf("A_%d", i), pos: i}
	}
	return &rawMethod{
		body:   &rawBody{il: il, maxStack: maxStack, locals: locals},
		params: params,
	}
}

func (m *rawMethod) Name() string                                   { return "Main" }
func (m *rawMethod) DeclaringType() metadata.Type                   { return nil }
func (m *rawMethod) IsCompilerGenerated() bool                      { return false }
func (m *rawMethod) Attributes() metadata.MethodAttributes {
	return metadata.MethodPublic | metadata.MethodStatic
}
func (m *rawMethod) ImplAttributes() metadata.MethodImplAttributes  { return metadata.ImplIL }
func (m *rawMethod) ReturnType() metadata.Type                      { return voidType }
func (m *rawMethod) IsConstructor() bool                            { return false }
func (m *rawMethod) IsStatic() bool                                 { return true }
func (m *rawMethod) IsVirtual() bool                                { return false }
func (m *rawMethod) Parameters() []metadata.Parameter               { return m.params }
func (m *rawMethod) GenericArguments() []metadata.Type              { return nil }
func (m *rawMethod) GenericParameters() []metadata.GenericParameter { return nil }
func (m *rawMethod) Module() metadata.Module                        { return &rawModule{} }
func (m *rawMethod) Body() metadata.Body                            { return m.body }
func (m *rawMethod) CustomAttributes() []metadata.CustomAttribute   { return nil }
