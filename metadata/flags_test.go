package metadata

import (
	"strings"
	"testing"
)

func TestMethodAttributesStrings(t *testing.T) {
	tests := []struct {
		attrs MethodAttributes
		want  string
	}{
		{0, "privatescope"},
		{MethodPrivate, "private"},
		{MethodPublic, "public"},
		{MethodFamORAssem, "famorassem"},
		{MethodPublic | MethodStatic | MethodHideBySig, "public static hidebysig"},
		{MethodPublic | MethodVirtual | MethodHideBySig | MethodNewSlot,
			"public virtual hidebysig vtablelayoutmask"},
		{MethodPrivate | MethodStatic | MethodSpecialName | MethodRTSpecialName,
			"private static specialname rtspecialname"},
	}
	for _, tt := range tests {
		if got := strings.Join(tt.attrs.Strings(), " "); got != tt.want {
			t.Errorf("0x%04x = %q, want %q", uint32(tt.attrs), got, tt.want)
		}
	}
}

func TestFieldAttributesStrings(t *testing.T) {
	tests := []struct {
		attrs FieldAttributes
		want  string
	}{
		{FieldPrivate, "private"},
		{FieldPublic | FieldStatic | FieldLiteral | FieldHasDefault,
			"public static literal hasdefault"},
		{FieldAssembly | FieldInitOnly, "assembly initonly"},
	}
	for _, tt := range tests {
		if got := strings.Join(tt.attrs.Strings(), " "); got != tt.want {
			t.Errorf("0x%04x = %q, want %q", uint32(tt.attrs), got, tt.want)
		}
	}
}

func TestTypeAttributesPredicates(t *testing.T) {
	a := TypePublic | TypeBeforeFieldInit
	if !a.IsPublic() || !a.IsAnsiClass() || !a.BeforeFieldInit() {
		t.Errorf("predicates wrong for 0x%08x", uint32(a))
	}
	if a.LayoutKeyword() != "auto" {
		t.Errorf("layout = %q", a.LayoutKeyword())
	}
	if (TypeSequentialLayout).LayoutKeyword() != "sequential" {
		t.Error("sequential layout keyword")
	}
	if (TypeExplicitLayout).LayoutKeyword() != "explicit" {
		t.Error("explicit layout keyword")
	}
	if (TypeNestedPublic).IsPublic() != true {
		t.Error("nested public should count as public")
	}
	if (TypeUnicodeClass).IsAnsiClass() {
		t.Error("unicode class is not ansi")
	}
}

func TestMethodImplAttributes(t *testing.T) {
	if !ImplIL.IsIL() || ImplIL.IsRuntime() {
		t.Error("IL code type")
	}
	if !ImplRuntime.IsRuntime() || ImplRuntime.IsIL() {
		t.Error("runtime code type")
	}
	if !ImplIL.IsManaged() {
		t.Error("IL default is managed")
	}
	if (ImplNative | ImplUnmanaged).IsManaged() {
		t.Error("unmanaged bit set")
	}
}

func TestGenericParameterAttributes(t *testing.T) {
	a := GenericCovariant | GenericDefaultConstructorConstraint
	if !a.IsCovariant() || a.IsContravariant() {
		t.Error("variance")
	}
	if !a.HasDefaultConstructorConstraint() || a.HasValueTypeConstraint() {
		t.Error("special constraints")
	}
}

func TestClauseKindString(t *testing.T) {
	tests := []struct {
		kind ClauseKind
		want string
	}{
		{ClauseCatch, "catch"},
		{ClauseFilter, "filter"},
		{ClauseFinally, "finally"},
		{ClauseFault, "fault"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
