// Package metatest provides concrete in-memory implementations of the
// metadata contract for tests. Every entity is a plain struct with exported
// fields; zero values stand for absent pieces.
package metatest

import (
	"fmt"
	"strings"

	"github.com/wippyai/cil-disasm/metadata"
)

// Assembly implements metadata.Assembly.
type Assembly struct {
	Full string
}

func (a *Assembly) FullName() string { return a.Full }

func (a *Assembly) Name() string {
	name, _, _ := strings.Cut(a.Full, ",")
	return strings.TrimSpace(name)
}

// Mscorlib is the standard-library assembly used across tests.
var Mscorlib = &Assembly{Full: "mscorlib, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"}

// Type implements metadata.Type.
type Type struct {
	TypeName          string
	TypeNamespace     string
	Asm               *Assembly
	Declaring         metadata.Type
	CompilerGenerated bool

	Class        bool
	Interface    bool
	ValueType    bool
	Enum         bool
	Generic      bool
	GenericParam bool
	ByRef        bool

	Elem           metadata.Type
	Rank           int
	Base           metadata.Type
	Ifaces         []metadata.Type
	EnumUnderlying metadata.Type

	Attrs     metadata.TypeAttributes
	GenArgs   []metadata.Type
	GenParams []metadata.GenericParameter

	FieldList    []metadata.Field
	PropList     []metadata.Property
	EventList    []metadata.Event
	MethodList   []metadata.Method
	CtorList     []metadata.Method
	CustomAttrs  []metadata.CustomAttribute
}

func (t *Type) Name() string                 { return t.TypeName }
func (t *Type) DeclaringType() metadata.Type { return t.Declaring }
func (t *Type) IsCompilerGenerated() bool    { return t.CompilerGenerated }

func (t *Type) FullName() string {
	if t.TypeNamespace == "" {
		return t.TypeName
	}
	return t.TypeNamespace + "." + t.TypeName
}

func (t *Type) Namespace() string           { return t.TypeNamespace }
func (t *Type) Assembly() metadata.Assembly { return t.Asm }

func (t *Type) IsClass() bool            { return t.Class }
func (t *Type) IsInterface() bool        { return t.Interface }
func (t *Type) IsValueType() bool        { return t.ValueType }
func (t *Type) IsEnum() bool             { return t.Enum }
func (t *Type) IsArray() bool            { return t.Rank > 0 }
func (t *Type) IsByRef() bool            { return t.ByRef }
func (t *Type) IsGenericType() bool      { return t.Generic }
func (t *Type) IsGenericParameter() bool { return t.GenericParam }

func (t *Type) ElementType() metadata.Type        { return t.Elem }
func (t *Type) ArrayRank() int                    { return t.Rank }
func (t *Type) BaseType() metadata.Type           { return t.Base }
func (t *Type) Interfaces() []metadata.Type       { return t.Ifaces }
func (t *Type) EnumUnderlyingType() metadata.Type { return t.EnumUnderlying }

func (t *Type) Attributes() metadata.TypeAttributes              { return t.Attrs }
func (t *Type) GenericArguments() []metadata.Type                { return t.GenArgs }
func (t *Type) GenericParameters() []metadata.GenericParameter   { return t.GenParams }
func (t *Type) Fields(metadata.Binding) []metadata.Field         { return t.FieldList }
func (t *Type) Properties(metadata.Binding) []metadata.Property  { return t.PropList }
func (t *Type) Events(metadata.Binding) []metadata.Event         { return t.EventList }
func (t *Type) Methods(metadata.Binding) []metadata.Method       { return t.MethodList }
func (t *Type) Constructors(metadata.Binding) []metadata.Method  { return t.CtorList }
func (t *Type) CustomAttributes() []metadata.CustomAttribute     { return t.CustomAttrs }

// SystemType builds a type in the System namespace of mscorlib.
func SystemType(name string, valueType bool) *Type {
	return &Type{
		TypeName:      name,
		TypeNamespace: "System",
		Asm:           Mscorlib,
		Class:         !valueType,
		ValueType:     valueType,
	}
}

// ArrayOf builds a rank-1 array over elem.
func ArrayOf(elem metadata.Type) *Type {
	return &Type{
		TypeName: elem.Name() + "[]",
		Asm:      Mscorlib,
		Elem:     elem,
		Rank:     1,
		Class:    true,
	}
}

// Method implements metadata.Method.
type Method struct {
	MethodName        string
	Declaring         metadata.Type
	CompilerGenerated bool

	Attrs     metadata.MethodAttributes
	ImplAttrs metadata.MethodImplAttributes
	Return    metadata.Type
	Ctor      bool
	Static    bool
	Virtual   bool

	Params      []metadata.Parameter
	GenArgs     []metadata.Type
	GenParams   []metadata.GenericParameter
	Mod         metadata.Module
	MethodBody  metadata.Body
	CustomAttrs []metadata.CustomAttribute
}

func (m *Method) Name() string                                   { return m.MethodName }
func (m *Method) DeclaringType() metadata.Type                   { return m.Declaring }
func (m *Method) IsCompilerGenerated() bool                      { return m.CompilerGenerated }
func (m *Method) Attributes() metadata.MethodAttributes          { return m.Attrs }
func (m *Method) ImplAttributes() metadata.MethodImplAttributes  { return m.ImplAttrs }
func (m *Method) ReturnType() metadata.Type                      { return m.Return }
func (m *Method) IsConstructor() bool                            { return m.Ctor }
func (m *Method) IsStatic() bool                                 { return m.Static }
func (m *Method) IsVirtual() bool                                { return m.Virtual }
func (m *Method) Parameters() []metadata.Parameter               { return m.Params }
func (m *Method) GenericArguments() []metadata.Type              { return m.GenArgs }
func (m *Method) GenericParameters() []metadata.GenericParameter { return m.GenParams }
func (m *Method) Module() metadata.Module                        { return m.Mod }
func (m *Method) Body() metadata.Body                            { return m.MethodBody }
func (m *Method) CustomAttributes() []metadata.CustomAttribute   { return m.CustomAttrs }

// Body implements metadata.Body.
type Body struct {
	Code     []byte
	Stack    int
	LocalVars []metadata.Local
	Clauses  []metadata.ExceptionClause
}

func (b *Body) IL() []byte                                   { return b.Code }
func (b *Body) MaxStack() int                                { return b.Stack }
func (b *Body) Locals() []metadata.Local                     { return b.LocalVars }
func (b *Body) ExceptionClauses() []metadata.ExceptionClause { return b.Clauses }

// Parameter implements metadata.Parameter.
type Parameter struct {
	ParamName   string
	ParamType   metadata.Type
	Pos         int
	Out         bool
	HasDef      bool
	Def         any
	CustomAttrs []metadata.CustomAttribute
}

func (p *Parameter) Name() string                                 { return p.ParamName }
func (p *Parameter) Type() metadata.Type                          { return p.ParamType }
func (p *Parameter) Position() int                                { return p.Pos }
func (p *Parameter) IsOut() bool                                  { return p.Out }
func (p *Parameter) HasDefault() bool                             { return p.HasDef }
func (p *Parameter) Default() any                                 { return p.Def }
func (p *Parameter) CustomAttributes() []metadata.CustomAttribute { return p.CustomAttrs }

// Field implements metadata.Field.
type Field struct {
	FieldName         string
	Declaring         metadata.Type
	CompilerGenerated bool
	Attrs             metadata.FieldAttributes
	Typ               metadata.Type
	Static            bool
	Literal           bool
	Const             any
	CustomAttrs       []metadata.CustomAttribute
}

func (f *Field) Name() string                                 { return f.FieldName }
func (f *Field) DeclaringType() metadata.Type                 { return f.Declaring }
func (f *Field) IsCompilerGenerated() bool                    { return f.CompilerGenerated }
func (f *Field) Attributes() metadata.FieldAttributes         { return f.Attrs }
func (f *Field) FieldType() metadata.Type                     { return f.Typ }
func (f *Field) IsStatic() bool                               { return f.Static }
func (f *Field) IsLiteral() bool                              { return f.Literal }
func (f *Field) Constant() any                                { return f.Const }
func (f *Field) CustomAttributes() []metadata.CustomAttribute { return f.CustomAttrs }

// Property implements metadata.Property.
type Property struct {
	PropName          string
	Declaring         metadata.Type
	CompilerGenerated bool
	Typ               metadata.Type
	Get               metadata.Method
	Set               metadata.Method
	CustomAttrs       []metadata.CustomAttribute
}

func (p *Property) Name() string                                 { return p.PropName }
func (p *Property) DeclaringType() metadata.Type                 { return p.Declaring }
func (p *Property) IsCompilerGenerated() bool                    { return p.CompilerGenerated }
func (p *Property) PropertyType() metadata.Type                  { return p.Typ }
func (p *Property) Getter() metadata.Method                      { return p.Get }
func (p *Property) Setter() metadata.Method                      { return p.Set }
func (p *Property) CustomAttributes() []metadata.CustomAttribute { return p.CustomAttrs }

// Event implements metadata.Event.
type Event struct {
	EventName         string
	Declaring         metadata.Type
	CompilerGenerated bool
	Handler           metadata.Type
	Add               metadata.Method
	Remove            metadata.Method
	CustomAttrs       []metadata.CustomAttribute
}

func (e *Event) Name() string                                 { return e.EventName }
func (e *Event) DeclaringType() metadata.Type                 { return e.Declaring }
func (e *Event) IsCompilerGenerated() bool                    { return e.CompilerGenerated }
func (e *Event) HandlerType() metadata.Type                   { return e.Handler }
func (e *Event) AddMethod() metadata.Method                   { return e.Add }
func (e *Event) RemoveMethod() metadata.Method                { return e.Remove }
func (e *Event) CustomAttributes() []metadata.CustomAttribute { return e.CustomAttrs }

// GenericParameter implements metadata.GenericParameter.
type GenericParameter struct {
	ParamName   string
	Attrs       metadata.GenericParameterAttributes
	Constr      []metadata.Type
}

func (g *GenericParameter) Name() string                                    { return g.ParamName }
func (g *GenericParameter) Attributes() metadata.GenericParameterAttributes { return g.Attrs }
func (g *GenericParameter) Constraints() []metadata.Type                    { return g.Constr }

// CustomAttribute implements metadata.CustomAttribute.
type CustomAttribute struct {
	Ctor metadata.Method
	Typ  metadata.Type
	Raw  []byte
}

func (c *CustomAttribute) Constructor() metadata.Method  { return c.Ctor }
func (c *CustomAttribute) AttributeType() metadata.Type  { return c.Typ }
func (c *CustomAttribute) Blob() []byte                  { return c.Raw }

// Module implements metadata.Module over explicit token maps.
type Module struct {
	ModName    string
	Asm        *Assembly
	Members    map[uint32]metadata.Member
	Strings    map[uint32]string
	Signatures map[uint32][]byte
}

func (m *Module) Name() string               { return m.ModName }
func (m *Module) Assembly() metadata.Assembly { return m.Asm }

func (m *Module) ResolveMember(token uint32, _, _ []metadata.Type) (metadata.Member, error) {
	if v, ok := m.Members[token]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no member row for token 0x%08x", token)
}

func (m *Module) ResolveString(token uint32) (string, error) {
	if v, ok := m.Strings[token]; ok {
		return v, nil
	}
	return "", fmt.Errorf("no string row for token 0x%08x", token)
}

func (m *Module) ResolveSignature(token uint32) ([]byte, error) {
	if v, ok := m.Signatures[token]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no signature row for token 0x%08x", token)
}
