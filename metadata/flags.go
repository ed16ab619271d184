package metadata

import "strconv"

// TypeAttributes is the ECMA-335 TypeDef flags word (II.23.1.15).
type TypeAttributes uint32

const (
	TypeVisibilityMask TypeAttributes = 0x00000007
	TypeNotPublic      TypeAttributes = 0x00000000
	TypePublic         TypeAttributes = 0x00000001
	TypeNestedPublic   TypeAttributes = 0x00000002
	TypeNestedPrivate  TypeAttributes = 0x00000003

	TypeLayoutMask       TypeAttributes = 0x00000018
	TypeAutoLayout       TypeAttributes = 0x00000000
	TypeSequentialLayout TypeAttributes = 0x00000008
	TypeExplicitLayout   TypeAttributes = 0x00000010

	TypeInterface TypeAttributes = 0x00000020
	TypeAbstract  TypeAttributes = 0x00000080
	TypeSealed    TypeAttributes = 0x00000100

	TypeSpecialName   TypeAttributes = 0x00000400
	TypeRTSpecialName TypeAttributes = 0x00000800
	TypeImport        TypeAttributes = 0x00001000
	TypeSerializable  TypeAttributes = 0x00002000

	TypeStringFormatMask TypeAttributes = 0x00030000
	TypeAnsiClass        TypeAttributes = 0x00000000
	TypeUnicodeClass     TypeAttributes = 0x00010000
	TypeAutoClass        TypeAttributes = 0x00020000

	TypeBeforeFieldInit TypeAttributes = 0x00100000
	TypeHasSecurity     TypeAttributes = 0x00040000
)

func (a TypeAttributes) IsPublic() bool {
	v := a & TypeVisibilityMask
	return v == TypePublic || v == TypeNestedPublic
}

func (a TypeAttributes) IsInterface() bool  { return a&TypeInterface != 0 }
func (a TypeAttributes) IsAbstract() bool   { return a&TypeAbstract != 0 }
func (a TypeAttributes) IsSealed() bool     { return a&TypeSealed != 0 }
func (a TypeAttributes) IsAnsiClass() bool  { return a&TypeStringFormatMask == TypeAnsiClass }
func (a TypeAttributes) BeforeFieldInit() bool {
	return a&TypeBeforeFieldInit != 0
}

// LayoutKeyword returns the layout token used in a .class header.
func (a TypeAttributes) LayoutKeyword() string {
	switch a & TypeLayoutMask {
	case TypeSequentialLayout:
		return "sequential"
	case TypeExplicitLayout:
		return "explicit"
	default:
		return "auto"
	}
}

// MethodAttributes is the ECMA-335 MethodDef flags word (II.23.1.10).
type MethodAttributes uint32

const (
	MethodMemberAccessMask MethodAttributes = 0x0007
	MethodPrivateScope     MethodAttributes = 0x0000
	MethodPrivate          MethodAttributes = 0x0001
	MethodFamANDAssem      MethodAttributes = 0x0002
	MethodAssembly         MethodAttributes = 0x0003
	MethodFamily           MethodAttributes = 0x0004
	MethodFamORAssem       MethodAttributes = 0x0005
	MethodPublic           MethodAttributes = 0x0006

	MethodUnmanagedExport  MethodAttributes = 0x0008
	MethodStatic           MethodAttributes = 0x0010
	MethodFinal            MethodAttributes = 0x0020
	MethodVirtual          MethodAttributes = 0x0040
	MethodHideBySig        MethodAttributes = 0x0080
	MethodVtableLayoutMask MethodAttributes = 0x0100
	MethodNewSlot          MethodAttributes = 0x0100
	MethodCheckAccessOnOverride MethodAttributes = 0x0200
	MethodAbstract         MethodAttributes = 0x0400
	MethodSpecialName      MethodAttributes = 0x0800
	MethodRTSpecialName    MethodAttributes = 0x1000
	MethodPinvokeImpl      MethodAttributes = 0x2000
	MethodHasSecurity      MethodAttributes = 0x4000
	MethodRequireSecObject MethodAttributes = 0x8000
)

// methodFlagNames is value-ascending; overlapping access values rely on the
// greedy descending decomposition in decompose.
var methodFlagNames = []flagName{
	{uint32(MethodPrivate), "private"},
	{uint32(MethodFamANDAssem), "famandassem"},
	{uint32(MethodAssembly), "assembly"},
	{uint32(MethodFamily), "family"},
	{uint32(MethodFamORAssem), "famorassem"},
	{uint32(MethodPublic), "public"},
	{uint32(MethodUnmanagedExport), "unmanagedexport"},
	{uint32(MethodStatic), "static"},
	{uint32(MethodFinal), "final"},
	{uint32(MethodVirtual), "virtual"},
	{uint32(MethodHideBySig), "hidebysig"},
	{uint32(MethodVtableLayoutMask), "vtablelayoutmask"},
	{uint32(MethodCheckAccessOnOverride), "checkaccessonoverride"},
	{uint32(MethodAbstract), "abstract"},
	{uint32(MethodSpecialName), "specialname"},
	{uint32(MethodRTSpecialName), "rtspecialname"},
	{uint32(MethodPinvokeImpl), "pinvokeimpl"},
	{uint32(MethodHasSecurity), "hassecurity"},
	{uint32(MethodRequireSecObject), "requiresecobject"},
}

// Strings decomposes the flags into lowercase names, value-ascending.
// The zero value decomposes to "privatescope".
func (a MethodAttributes) Strings() []string {
	return decompose(uint32(a), methodFlagNames, "privatescope")
}

// FieldAttributes is the ECMA-335 Field flags word (II.23.1.5).
type FieldAttributes uint32

const (
	FieldAccessMask   FieldAttributes = 0x0007
	FieldPrivateScope FieldAttributes = 0x0000
	FieldPrivate      FieldAttributes = 0x0001
	FieldFamANDAssem  FieldAttributes = 0x0002
	FieldAssembly     FieldAttributes = 0x0003
	FieldFamily       FieldAttributes = 0x0004
	FieldFamORAssem   FieldAttributes = 0x0005
	FieldPublic       FieldAttributes = 0x0006

	FieldStatic          FieldAttributes = 0x0010
	FieldInitOnly        FieldAttributes = 0x0020
	FieldLiteral         FieldAttributes = 0x0040
	FieldNotSerialized   FieldAttributes = 0x0080
	FieldHasFieldRVA     FieldAttributes = 0x0100
	FieldSpecialName     FieldAttributes = 0x0200
	FieldRTSpecialName   FieldAttributes = 0x0400
	FieldHasFieldMarshal FieldAttributes = 0x1000
	FieldPinvokeImpl     FieldAttributes = 0x2000
	FieldHasDefault      FieldAttributes = 0x8000
)

var fieldFlagNames = []flagName{
	{uint32(FieldPrivate), "private"},
	{uint32(FieldFamANDAssem), "famandassem"},
	{uint32(FieldAssembly), "assembly"},
	{uint32(FieldFamily), "family"},
	{uint32(FieldFamORAssem), "famorassem"},
	{uint32(FieldPublic), "public"},
	{uint32(FieldStatic), "static"},
	{uint32(FieldInitOnly), "initonly"},
	{uint32(FieldLiteral), "literal"},
	{uint32(FieldNotSerialized), "notserialized"},
	{uint32(FieldHasFieldRVA), "hasfieldrva"},
	{uint32(FieldSpecialName), "specialname"},
	{uint32(FieldRTSpecialName), "rtspecialname"},
	{uint32(FieldHasFieldMarshal), "hasfieldmarshal"},
	{uint32(FieldPinvokeImpl), "pinvokeimpl"},
	{uint32(FieldHasDefault), "hasdefault"},
}

// Strings decomposes the flags into lowercase names, value-ascending.
func (a FieldAttributes) Strings() []string {
	return decompose(uint32(a), fieldFlagNames, "privatescope")
}

// MethodImplAttributes is the ECMA-335 MethodImpl flags word (II.23.1.11).
type MethodImplAttributes uint32

const (
	ImplCodeTypeMask MethodImplAttributes = 0x0003
	ImplIL           MethodImplAttributes = 0x0000
	ImplNative       MethodImplAttributes = 0x0001
	ImplOPTIL        MethodImplAttributes = 0x0002
	ImplRuntime      MethodImplAttributes = 0x0003

	ImplManagedMask MethodImplAttributes = 0x0004
	ImplUnmanaged   MethodImplAttributes = 0x0004
	ImplManaged     MethodImplAttributes = 0x0000

	ImplForwardRef   MethodImplAttributes = 0x0010
	ImplPreserveSig  MethodImplAttributes = 0x0080
	ImplInternalCall MethodImplAttributes = 0x1000
	ImplSynchronized MethodImplAttributes = 0x0020
	ImplNoInlining   MethodImplAttributes = 0x0008
)

func (a MethodImplAttributes) CodeType() MethodImplAttributes { return a & ImplCodeTypeMask }
func (a MethodImplAttributes) IsIL() bool                     { return a.CodeType() == ImplIL }
func (a MethodImplAttributes) IsRuntime() bool                { return a.CodeType() == ImplRuntime }
func (a MethodImplAttributes) IsManaged() bool                { return a&ImplManagedMask == ImplManaged }

// GenericParameterAttributes is the ECMA-335 GenericParam flags word.
type GenericParameterAttributes uint32

const (
	GenericVarianceMask          GenericParameterAttributes = 0x0003
	GenericCovariant             GenericParameterAttributes = 0x0001
	GenericContravariant         GenericParameterAttributes = 0x0002
	GenericReferenceTypeConstraint        GenericParameterAttributes = 0x0004
	GenericNotNullableValueTypeConstraint GenericParameterAttributes = 0x0008
	GenericDefaultConstructorConstraint   GenericParameterAttributes = 0x0010
)

func (a GenericParameterAttributes) IsCovariant() bool {
	return a&GenericVarianceMask == GenericCovariant
}

func (a GenericParameterAttributes) IsContravariant() bool {
	return a&GenericVarianceMask == GenericContravariant
}

func (a GenericParameterAttributes) HasReferenceTypeConstraint() bool {
	return a&GenericReferenceTypeConstraint != 0
}

func (a GenericParameterAttributes) HasValueTypeConstraint() bool {
	return a&GenericNotNullableValueTypeConstraint != 0
}

func (a GenericParameterAttributes) HasDefaultConstructorConstraint() bool {
	return a&GenericDefaultConstructorConstraint != 0
}

type flagName struct {
	value uint32
	name  string
}

// decompose mirrors the runtime's flags-enum formatting: walk the name table
// from the largest value down, take every name fully contained in the
// remaining bits, and report the taken names in ascending value order.
func decompose(v uint32, names []flagName, zero string) []string {
	if v == 0 {
		return []string{zero}
	}
	var picked []string
	rest := v
	for i := len(names) - 1; i >= 0; i-- {
		fv := names[i].value
		if fv != 0 && rest&fv == fv {
			picked = append(picked, names[i].name)
			rest &^= fv
		}
	}
	if rest != 0 {
		picked = append(picked, strconv.FormatUint(uint64(rest), 10))
	}
	// reverse into ascending value order
	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked
}
