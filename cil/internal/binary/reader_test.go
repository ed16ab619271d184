package binary

import (
	"errors"
	"math"
	"testing"

	cilerrors "github.com/wippyai/cil-disasm/errors"
)

func TestReaderSequentialReads(t *testing.T) {
	data := []byte{
		0x2a,                   // u8
		0xff,                   // s8 = -1
		0x34, 0x12,             // u16
		0xfe, 0xff,             // s16 = -2
		0x78, 0x56, 0x34, 0x12, // u32
		0xff, 0xff, 0xff, 0xff, // s32 = -1
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, // s64
	}
	r := NewReader(data)

	if v, err := r.ReadU8(); err != nil || v != 0x2a {
		t.Fatalf("ReadU8 = %v, %v", v, err)
	}
	if v, err := r.ReadS8(); err != nil || v != -1 {
		t.Fatalf("ReadS8 = %v, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := r.ReadS16(); err != nil || v != -2 {
		t.Fatalf("ReadS16 = %v, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0x12345678 {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := r.ReadS32(); err != nil || v != -1 {
		t.Fatalf("ReadS32 = %v, %v", v, err)
	}
	if v, err := r.ReadS64(); err != nil || v != math.MinInt64+1 {
		t.Fatalf("ReadS64 = %v, %v", v, err)
	}
	if r.Position() != len(data) {
		t.Fatalf("Position = %d, want %d", r.Position(), len(data))
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}

func TestReaderFloats(t *testing.T) {
	data := make([]byte, 12)
	putU32(data, math.Float32bits(1.5))
	putU64(data[4:], math.Float64bits(math.Pi))

	r := NewReader(data)
	if v, err := r.ReadF32(); err != nil || v != 1.5 {
		t.Fatalf("ReadF32 = %v, %v", v, err)
	}
	if v, err := r.ReadF64(); err != nil || v != math.Pi {
		t.Fatalf("ReadF64 = %v, %v", v, err)
	}
}

func TestReaderOutOfBounds(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadU32(); err == nil {
		t.Fatal("expected out-of-bounds error")
	} else {
		var se *cilerrors.Error
		if !errors.As(err, &se) || se.Kind != cilerrors.KindOutOfBounds {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// position is unchanged after a failed read
	if r.Position() != 0 {
		t.Fatalf("Position = %d after failed read", r.Position())
	}
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putU64(b []byte, v uint64) {
	putU32(b, uint32(v))
	putU32(b[4:], uint32(v>>32))
}
