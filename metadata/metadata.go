package metadata

// Binding selects which declared members an enumeration returns.
type Binding uint8

// Binding flags combine with OR.
const (
	BindInstance Binding = 1 << iota
	BindStatic
	BindPublic
	BindNonPublic

	BindAll = BindInstance | BindStatic | BindPublic | BindNonPublic
)

// Assembly identifies the assembly a type lives in.
type Assembly interface {
	// FullName returns the display name, e.g.
	// "mscorlib, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089".
	FullName() string
	// Name returns the short name: the first comma-separated field of FullName.
	Name() string
}

// Module resolves metadata tokens embedded in IL.
type Module interface {
	Name() string
	Assembly() Assembly

	// ResolveMember resolves a type, method, or field token. The generic
	// argument slices supply the instantiation context of the declaring
	// type and the enclosing method.
	ResolveMember(token uint32, typeArgs, methodArgs []Type) (Member, error)
	// ResolveString resolves a user-string token.
	ResolveString(token uint32) (string, error)
	// ResolveSignature resolves a standalone-signature token to its blob.
	ResolveSignature(token uint32) ([]byte, error)
}

// Member is the common surface of every named metadata entity.
type Member interface {
	Name() string
	// DeclaringType is nil for non-nested top-level types.
	DeclaringType() Type
	// IsCompilerGenerated reports whether the member carries the
	// compiler-generated marker attribute. Such names are quoted in output.
	IsCompilerGenerated() bool
}

// Type is a (possibly constructed) type reference.
type Type interface {
	Member

	FullName() string
	Namespace() string
	Assembly() Assembly

	IsClass() bool
	IsInterface() bool
	IsValueType() bool
	IsEnum() bool
	IsArray() bool
	IsByRef() bool
	IsGenericType() bool
	IsGenericParameter() bool

	// ElementType returns the element of an array or byref type, nil otherwise.
	ElementType() Type
	// ArrayRank returns the rank of an array type, 0 otherwise.
	ArrayRank() int
	// BaseType is nil for interfaces and System.Object.
	BaseType() Type
	Interfaces() []Type
	// EnumUnderlyingType returns the primitive behind an enum, nil otherwise.
	EnumUnderlyingType() Type

	Attributes() TypeAttributes
	GenericArguments() []Type
	GenericParameters() []GenericParameter

	Fields(Binding) []Field
	Properties(Binding) []Property
	Events(Binding) []Event
	Methods(Binding) []Method
	Constructors(Binding) []Method

	CustomAttributes() []CustomAttribute
}

// Method is a method or constructor handle.
type Method interface {
	Member

	Attributes() MethodAttributes
	ImplAttributes() MethodImplAttributes
	// ReturnType is nil for constructors.
	ReturnType() Type
	IsConstructor() bool
	IsStatic() bool
	IsVirtual() bool
	Parameters() []Parameter
	GenericArguments() []Type
	GenericParameters() []GenericParameter
	Module() Module
	// Body returns nil when the method carries no IL body.
	Body() Body
	CustomAttributes() []CustomAttribute
}

// Body exposes the raw pieces of a method body.
type Body interface {
	// IL returns the raw instruction bytes, nil if they cannot be obtained.
	IL() []byte
	MaxStack() int
	Locals() []Local
	ExceptionClauses() []ExceptionClause
}

// Local is one slot in a method's local-variable signature.
type Local struct {
	Type  Type
	Index int
}

// Parameter is one formal parameter of a method.
type Parameter interface {
	Name() string
	Type() Type
	// Position is zero-based and excludes the implicit receiver.
	Position() int
	IsOut() bool
	HasDefault() bool
	Default() any
	CustomAttributes() []CustomAttribute
}

// Field is a field handle.
type Field interface {
	Member

	Attributes() FieldAttributes
	FieldType() Type
	IsStatic() bool
	IsLiteral() bool
	// Constant returns the literal value of a Literal field, nil otherwise.
	Constant() any
	CustomAttributes() []CustomAttribute
}

// Property is a property handle.
type Property interface {
	Member

	PropertyType() Type
	// Getter and Setter may be nil.
	Getter() Method
	Setter() Method
	CustomAttributes() []CustomAttribute
}

// Event is an event handle.
type Event interface {
	Member

	HandlerType() Type
	AddMethod() Method
	RemoveMethod() Method
	CustomAttributes() []CustomAttribute
}

// GenericParameter is a declared generic parameter with its constraints.
type GenericParameter interface {
	Name() string
	Attributes() GenericParameterAttributes
	Constraints() []Type
}

// CustomAttribute is one custom-attribute row on a member.
type CustomAttribute interface {
	// Constructor may be nil when the blob could not be connected to a ctor.
	Constructor() Method
	AttributeType() Type
	// Blob returns the raw value blob, without the 0x0001 prolog.
	Blob() []byte
}
