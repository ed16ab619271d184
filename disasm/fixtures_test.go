package disasm

import (
	"github.com/wippyai/cil-disasm/metadata"
	"github.com/wippyai/cil-disasm/metadata/metatest"
)

// Shared fixtures for the emitter tests: a test assembly with a few types,
// against mscorlib-hosted system types.
var (
	testAsm = &metatest.Assembly{Full: "ILDisassembler.Test, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"}

	int32T  = metatest.SystemType("Int32", true)
	voidT   = metatest.SystemType("Void", true)
	stringT = metatest.SystemType("String", false)
	objectT = metatest.SystemType("Object", false)

	exceptionT = metatest.SystemType("Exception", false)

	consoleT = &metatest.Type{
		TypeName:      "Console",
		TypeNamespace: "System",
		Asm:           metatest.Mscorlib,
		Class:         true,
	}
)

func testType(name string) *metatest.Type {
	return &metatest.Type{
		TypeName:      name,
		TypeNamespace: "ILDisassembler.Test",
		Asm:           testAsm,
		Class:         true,
		Base:          objectT,
		Attrs:         metadata.TypePublic | metadata.TypeBeforeFieldInit,
	}
}

func testModule() *metatest.Module {
	return &metatest.Module{
		ModName: "ILDisassembler.Test.dll",
		Asm:     testAsm,
		Strings: map[uint32]string{},
		Members: map[uint32]metadata.Member{},
	}
}

// consoleWriteLine is a static void(string) method on System.Console.
func consoleWriteLine() *metatest.Method {
	return &metatest.Method{
		MethodName: "WriteLine",
		Static:     true,
		Declaring:  consoleT,
		Return:     voidT,
		Params: []metadata.Parameter{
			&metatest.Parameter{ParamName: "value", ParamType: stringT},
		},
	}
}
