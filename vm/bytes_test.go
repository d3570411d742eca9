package vm

import "testing"

func TestBytesReadWriteRoundTrip(t *testing.T) {
	b := NewBytes(16)

	if _, ok := b.WriteU32(0, 0xDEADBEEF); !ok {
		t.Fatalf("WriteU32 failed in bounds")
	}
	v, ok := b.ReadU32(0)
	if !ok || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = 0x%08X, %v; want 0xDEADBEEF, true", v, ok)
	}

	lo, _ := b.ReadU8(0)
	if lo != 0xEF {
		t.Fatalf("little-endian byte 0 = 0x%02X, want 0xEF", lo)
	}
}

func TestBytesOutOfRange(t *testing.T) {
	b := NewBytes(4)
	if _, ok := b.ReadU8(4); ok {
		t.Fatalf("ReadU8 at size should fail")
	}
	if _, ok := b.ReadU32(1); ok {
		t.Fatalf("ReadU32 straddling the end should fail")
	}
	if _, ok := b.WriteU8(100, 1); ok {
		t.Fatalf("WriteU8 past end should fail")
	}
}

func TestBytesSlice(t *testing.T) {
	b := NewBytes(8)
	b.WriteU32(0, 1)
	s, ok := b.Slice(0, 4)
	if !ok || len(s) != 4 {
		t.Fatalf("Slice(0,4) = %v, %v", s, ok)
	}
	if _, ok := b.Slice(6, 4); ok {
		t.Fatalf("Slice past end should fail")
	}
}
