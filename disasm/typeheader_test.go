package disasm

import (
	"sort"
	"strings"
	"testing"

	"github.com/wippyai/cil-disasm/metadata"
	"github.com/wippyai/cil-disasm/metadata/metatest"
)

// sameTokens compares two header lines ignoring token order.
func sameTokens(a, b string) bool {
	as, bs := strings.Fields(a), strings.Fields(b)
	sort.Strings(as)
	sort.Strings(bs)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func TestTypeHeaderPlainClass(t *testing.T) {
	got := New().TypeHeader(testType("HelloWorldProgram"))
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	if !sameTokens(lines[0], ".class public auto ansi beforefieldinit ILDisassembler.Test.HelloWorldProgram") {
		t.Errorf("header line = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "extends [mscorlib]System.Object" {
		t.Errorf("extends line = %q", lines[1])
	}
	if lines[2] != "{" || lines[3] != "}" {
		t.Errorf("braces = %q, %q", lines[2], lines[3])
	}
}

func TestTypeHeaderBareInterface(t *testing.T) {
	talkable := &metatest.Type{
		TypeName:      "ITalkable",
		TypeNamespace: "ILDisassembler.Test",
		Asm:           testAsm,
		Interface:     true,
		Attrs:         metadata.TypePublic | metadata.TypeInterface | metadata.TypeAbstract,
	}
	got := New().TypeHeader(talkable)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines (no extends, no implements expected):\n%s", len(lines), got)
	}
	if !sameTokens(lines[0], ".class interface public abstract auto ansi ILDisassembler.Test.ITalkable") {
		t.Errorf("header line = %q", lines[0])
	}
}

func TestTypeHeaderInterfaceWithBases(t *testing.T) {
	iface := func(name string) *metatest.Type {
		return &metatest.Type{
			TypeName:      name,
			TypeNamespace: "System.Collections",
			Asm:           metatest.Mscorlib,
			Interface:     true,
		}
	}
	customList := &metatest.Type{
		TypeName:      "ICustomList",
		TypeNamespace: "ILDisassembler.Test",
		Asm:           testAsm,
		Interface:     true,
		Attrs:         metadata.TypePublic | metadata.TypeInterface | metadata.TypeAbstract,
		Ifaces: []metadata.Type{
			iface("IList"), iface("ICollection"), iface("IEnumerable"),
		},
	}
	got := New().TypeHeader(customList)
	want := "implements [mscorlib]System.Collections.IList, " +
		"[mscorlib]System.Collections.ICollection, " +
		"[mscorlib]System.Collections.IEnumerable"
	found := false
	for _, line := range strings.Split(got, "\n") {
		if strings.TrimSpace(line) == want {
			found = true
		}
		if strings.HasPrefix(strings.TrimSpace(line), "extends") {
			t.Errorf("interface should not extend: %q", line)
		}
	}
	if !found {
		t.Errorf("implements line missing:\n%s", got)
	}
}

func TestTypeHeaderValueTypeAndEnum(t *testing.T) {
	point := &metatest.Type{
		TypeName:      "Point",
		TypeNamespace: "ILDisassembler.Test",
		Asm:           testAsm,
		ValueType:     true,
		Attrs:         metadata.TypePublic | metadata.TypeSequentialLayout | metadata.TypeSealed,
		Base:          metatest.SystemType("ValueType", false),
	}
	got := New().TypeHeader(point)
	first, _, _ := strings.Cut(got, "\n")
	for _, token := range []string{"value", "public", "sequential", "sealed"} {
		if !strings.Contains(first, token) {
			t.Errorf("token %q missing from %q", token, first)
		}
	}

	color := &metatest.Type{
		TypeName:      "Color",
		TypeNamespace: "ILDisassembler.Test",
		Asm:           testAsm,
		ValueType:     true,
		Enum:          true,
		Attrs:         metadata.TypePublic | metadata.TypeSealed,
	}
	got = New().TypeHeader(color)
	first, _, _ = strings.Cut(got, "\n")
	if !strings.Contains(first, "enum") || strings.Contains(first, " value ") {
		t.Errorf("enum header = %q", first)
	}
}

func TestTypeHeaderGeneric(t *testing.T) {
	box := &metatest.Type{
		TypeName:      "Box`1",
		TypeNamespace: "ILDisassembler.Test",
		Asm:           testAsm,
		Class:         true,
		Generic:       true,
		Attrs:         metadata.TypePublic | metadata.TypeBeforeFieldInit,
		Base:          objectT,
		GenParams: []metadata.GenericParameter{
			&metatest.GenericParameter{ParamName: "T"},
		},
	}
	got := New().TypeHeader(box)
	first, _, _ := strings.Cut(got, "\n")
	if !strings.HasSuffix(first, "ILDisassembler.Test.Box`1<T>") {
		t.Errorf("generic header = %q", first)
	}
}

func TestTypeHeaderIndentation(t *testing.T) {
	got := New().TypeHeader(testType("Indented"))
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[1], strings.Repeat(" ", 7)+"extends") {
		t.Errorf("extends line should be indented seven spaces: %q", lines[1])
	}
}
