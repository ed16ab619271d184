// Package metadata defines the contract between the disassembler core and a
// metadata provider.
//
// The core never parses a managed module itself. A provider hands it resolved
// entities (types, methods, fields, properties, events) behind the interfaces
// in this package, and resolves embedded metadata tokens on demand through
// Module. Any backend works: a native ECMA-335 metadata parser, a reflection
// facade over a hosted runtime, or a test fake.
//
// Attribute flag types mirror the ECMA-335 bit layouts, and their Strings
// methods decompose a combined value into the lowercase flag names the
// assembly syntax uses.
package metadata
