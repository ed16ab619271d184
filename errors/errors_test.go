package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindMalformedIL,
				Path:   []string{"Program", "Main"},
				Offset: 0x1a,
				Detail: "truncated operand",
			},
			contains: []string{"[decode]", "malformed_il", "Program.Main", "IL_001a", "truncated operand"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindOutOfBounds,
				Offset: -1,
			},
			contains: []string{"[decode]", "out_of_bounds"},
		},
		{
			name: "error at offset zero",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindUnknownOpcode,
				Offset: 0,
			},
			contains: []string{"[decode]", "unknown_opcode", "IL_0000"},
		},
		{
			name: "error with token and cause",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindTokenResolution,
				Token:  0x0a000012,
				Offset: -1,
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[resolve]", "token_resolution", "0x0a000012", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindOutOfBounds,
		Cause: cause,
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseDecode, Kind: KindNoBody}
	b := &Error{Phase: PhaseDecode, Kind: KindNoBody, Detail: "method has no body"}
	c := &Error{Phase: PhaseDecode, Kind: KindCannotReadIL}

	if !errors.Is(b, a) {
		t.Error("errors with matching phase and kind should match")
	}
	if errors.Is(c, a) {
		t.Error("errors with different kinds should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindMalformedIL).
		Path("Widget", "Render").
		Offset(7).
		Token(0x06000001).
		Detail("bad operand width %d", 5).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindMalformedIL {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[0] != "Widget" {
		t.Errorf("unexpected path: %v", err.Path)
	}
	if err.Offset != 7 || err.Token != 0x06000001 {
		t.Errorf("unexpected offset/token: %d/%#x", err.Offset, err.Token)
	}
	if err.Detail != "bad operand width 5" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
}

func TestBuilderOffsetDefaultsToInapplicable(t *testing.T) {
	err := New(PhaseDecode, KindMalformedIL).Build()
	if err.Offset != -1 {
		t.Errorf("default Offset = %d, want -1", err.Offset)
	}
	if strings.Contains(err.Error(), "IL_") {
		t.Errorf("message %q should carry no offset annotation", err.Error())
	}

	// offset zero is a real offset and must survive into the message
	err = New(PhaseDecode, KindMalformedIL).Offset(0).Build()
	if !strings.Contains(err.Error(), "IL_0000") {
		t.Errorf("message %q should contain IL_0000", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := NoBody("Main"); err.Kind != KindNoBody || err.Offset != -1 {
		t.Errorf("NoBody kind/offset = %s/%d", err.Kind, err.Offset)
	}
	if err := CannotReadIL("Main"); err.Kind != KindCannotReadIL || err.Offset != -1 {
		t.Errorf("CannotReadIL kind/offset = %s/%d", err.Kind, err.Offset)
	}
	if err := OutOfBounds(PhaseDecode, 3, 4, 1); err.Kind != KindOutOfBounds {
		t.Errorf("OutOfBounds kind = %s", err.Kind)
	}
	if err := UnknownOpcode(0, 0xfe99); !strings.Contains(err.Detail, "0xfe99") {
		t.Errorf("UnknownOpcode detail = %q", err.Detail)
	}
	cause := errors.New("no such row")
	if err := TokenResolution(0x70000001, cause); !errors.Is(err, cause) {
		t.Error("TokenResolution should wrap the cause")
	}
}
