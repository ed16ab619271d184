// Package cildisasm provides a disassembler for ECMA-335 Common
// Intermediate Language method bodies and type definitions.
//
// Given a metadata provider and a type handle, the library produces a
// textual listing in the canonical assembly syntax: the type header, its
// fields, properties, events, and full per-method bodies with instructions,
// locals, maximum evaluation stack, and exception-handling regions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	cil-disasm/          Root package with the architecture overview
//	├── cil/             IL byte-stream decoding: opcode tables, instruction
//	│                    model, branch resolution, exception-region markers
//	├── disasm/          Rendering in the assembly textual syntax
//	├── metadata/        The provider contract: entity interfaces and
//	│                    ECMA-335 attribute flag types
//	├── errors/          Structured error types for debugging
//	└── cmd/ildasm/      CLI for disassembling raw IL streams
//
// # Quick Start
//
// Disassemble a type through a metadata provider:
//
//	d := disasm.New()
//
//	result, err := d.Disassemble(typ)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Header)
//	for _, m := range result.Methods {
//	    fmt.Println(m)
//	}
//
// Or decode a single method body into instructions:
//
//	body, err := cil.Decode(method)
//	for _, inst := range body.Instructions {
//	    fmt.Printf("IL_%04x: %s\n", inst.Offset, inst.Opcode.Name)
//	}
//
// # Metadata Providers
//
// The core never parses a managed module itself; it consumes the interfaces
// in the metadata package. Any backend works: a native ECMA-335 metadata
// parser, a reflection facade over a hosted runtime, or the in-memory fakes
// under metadata/metatest.
//
// # Concurrency
//
// The core is synchronous and shares no mutable state between calls: the
// opcode tables are built once behind sync.Once, and every decode owns its
// instruction arena. Independent Disassemble calls may run concurrently.
package cildisasm
