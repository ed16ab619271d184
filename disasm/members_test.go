package disasm

import (
	"strings"
	"testing"

	"github.com/wippyai/cil-disasm/metadata"
	"github.com/wippyai/cil-disasm/metadata/metatest"
)

func TestFieldPlain(t *testing.T) {
	f := &metatest.Field{
		FieldName: "count",
		Declaring: testType("Widget"),
		Attrs:     metadata.FieldPrivate,
		Typ:       int32T,
	}
	if got := New().Field(f); got != ".field private int32 count" {
		t.Errorf("got %q", got)
	}
}

func TestFieldCompilerGenerated(t *testing.T) {
	f := &metatest.Field{
		FieldName:         "<Count>k__BackingField",
		Declaring:         testType("Widget"),
		Attrs:             metadata.FieldPrivate,
		Typ:               int32T,
		CompilerGenerated: true,
	}
	if got := New().Field(f); got != ".field private int32 '<Count>k__BackingField'" {
		t.Errorf("got %q", got)
	}
}

func TestFieldEnumLiteral(t *testing.T) {
	colorT := &metatest.Type{
		TypeName:       "Color",
		TypeNamespace:  "ILDisassembler.Test",
		Asm:            testAsm,
		ValueType:      true,
		Enum:           true,
		EnumUnderlying: int32T,
	}
	f := &metatest.Field{
		FieldName: "Red",
		Declaring: colorT,
		Attrs:     metadata.FieldPublic | metadata.FieldStatic | metadata.FieldLiteral | metadata.FieldHasDefault,
		Typ:       colorT,
		Static:    true,
		Literal:   true,
		Const:     int32(2),
	}
	got := New().Field(f)
	want := ".field public static literal hasdefault valuetype ILDisassembler.Test.Color Red = int32(0x00000002)"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFieldStringLiteral(t *testing.T) {
	f := &metatest.Field{
		FieldName: "Tag",
		Declaring: testType("Widget"),
		Attrs:     metadata.FieldPublic | metadata.FieldStatic | metadata.FieldLiteral,
		Typ:       stringT,
		Literal:   true,
		Const:     "v1",
	}
	got := New().Field(f)
	if !strings.HasSuffix(got, `Tag = "v1"`) {
		t.Errorf("got %q", got)
	}
}

func TestProperty(t *testing.T) {
	widget := testType("Widget")
	getter := &metatest.Method{
		MethodName: "get_Count",
		Declaring:  widget,
		Return:     int32T,
	}
	setter := &metatest.Method{
		MethodName: "set_Count",
		Declaring:  widget,
		Return:     voidT,
		Params: []metadata.Parameter{
			&metatest.Parameter{ParamName: "value", ParamType: int32T},
		},
	}
	p := &metatest.Property{
		PropName:  "Count",
		Declaring: widget,
		Typ:       int32T,
		Get:       getter,
		Set:       setter,
	}
	got := New().Property(p)
	want := strings.Join([]string{
		".property instance int32 Count()",
		"{",
		"    .get instance int32 ILDisassembler.Test.Widget::get_Count()",
		"    .set instance void ILDisassembler.Test.Widget::set_Count(int32)",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPropertyStatic(t *testing.T) {
	widget := testType("Widget")
	p := &metatest.Property{
		PropName:  "Shared",
		Declaring: widget,
		Typ:       stringT,
		Get: &metatest.Method{
			MethodName: "get_Shared",
			Declaring:  widget,
			Return:     stringT,
			Static:     true,
		},
	}
	got := New().Property(p)
	if strings.Contains(got, ".property instance") {
		t.Errorf("static property should not be instance:\n%s", got)
	}
	if !strings.Contains(got, ".get string ILDisassembler.Test.Widget::get_Shared()") {
		t.Errorf("accessor line wrong:\n%s", got)
	}
}

func TestEvent(t *testing.T) {
	widget := testType("Widget")
	handlerT := &metatest.Type{
		TypeName:      "EventHandler",
		TypeNamespace: "System",
		Asm:           metatest.Mscorlib,
		Class:         true,
	}
	add := &metatest.Method{
		MethodName: "add_Changed",
		Declaring:  widget,
		Return:     voidT,
		Params: []metadata.Parameter{
			&metatest.Parameter{ParamName: "value", ParamType: handlerT},
		},
	}
	remove := &metatest.Method{
		MethodName: "remove_Changed",
		Declaring:  widget,
		Return:     voidT,
		Params: []metadata.Parameter{
			&metatest.Parameter{ParamName: "value", ParamType: handlerT},
		},
	}
	ev := &metatest.Event{
		EventName: "Changed",
		Declaring: widget,
		Handler:   handlerT,
		Add:       add,
		Remove:    remove,
	}
	got := New().Event(ev)
	want := strings.Join([]string{
		".event [mscorlib]System.EventHandler Changed",
		"{",
		"    .addon instance void ILDisassembler.Test.Widget::add_Changed([mscorlib]System.EventHandler)",
		"    .removeon instance void ILDisassembler.Test.Widget::remove_Changed([mscorlib]System.EventHandler)",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
