// Package errors provides structured error types for the cil-disasm library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the member path, the IL
// offset, the metadata token, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformedIL).
//		Path("Program", "Main").
//		Offset(0x1a).
//		Detail("truncated operand").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseDecode, 0x1a, 4, 2)
//	err := errors.TokenResolution(0x0a000012, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
