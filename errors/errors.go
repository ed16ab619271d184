package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode  Phase = "decode"  // IL byte stream to instructions
	PhaseResolve Phase = "resolve" // metadata token resolution
	PhaseEmit    Phase = "emit"    // instruction and member rendering
)

// Kind categorizes the error
type Kind string

const (
	KindNoBody          Kind = "no_body"
	KindCannotReadIL    Kind = "cannot_read_il"
	KindMalformedIL     Kind = "malformed_il"
	KindUnknownOpcode   Kind = "unknown_opcode"
	KindUnsupported     Kind = "unsupported"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindTokenResolution Kind = "token_resolution"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int    // IL offset; -1 when not applicable (offset 0 is a real offset)
	Token  uint32 // metadata token, 0 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (IL_%04x)", e.Offset)
	}

	if e.Token != 0 {
		fmt.Fprintf(&b, " token 0x%08x", e.Token)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the member path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the IL offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Token sets the metadata token
func (b *Builder) Token(tok uint32) *Builder {
	b.err.Token = tok
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NoBody reports a method handle without an IL body.
func NoBody(method string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNoBody,
		Path:   []string{method},
		Detail: "method has no body",
		Offset: -1,
	}
}

// CannotReadIL reports a body whose raw bytes could not be obtained.
func CannotReadIL(method string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCannotReadIL,
		Path:   []string{method},
		Detail: "cannot read IL bytes",
		Offset: -1,
	}
}

// OutOfBounds reports a read past the end of the IL stream.
func OutOfBounds(phase Phase, offset, want, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remain", want, have),
	}
}

// UnknownOpcode reports an opcode value absent from the lookup tables.
func UnknownOpcode(offset int, value uint16) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnknownOpcode,
		Offset: offset,
		Detail: fmt.Sprintf("opcode 0x%04x", value),
	}
}

// TokenResolution wraps a provider failure for a metadata token.
func TokenResolution(token uint32, cause error) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindTokenResolution,
		Token:  token,
		Cause:  cause,
		Offset: -1,
	}
}
