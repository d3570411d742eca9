package vm

import "encoding/binary"

// Bytes is a flat, byte-addressable little-endian buffer. It backs
// physical memory for the bus; device handlers receive the same buffer
// and use it for memory that lives on the bus (the disk data buffer,
// the interrupt vector table, framebuffer storage).
type Bytes struct {
	buf []byte
}

// NewBytes allocates a zeroed buffer of the given size.
func NewBytes(size int) *Bytes {
	return &Bytes{buf: make([]byte, size)}
}

func (b *Bytes) Len() int {
	return len(b.buf)
}

func (b *Bytes) ReadU8(addr uint32) (uint8, bool) {
	if uint64(addr) >= uint64(len(b.buf)) {
		return 0, false
	}
	return b.buf[addr], true
}

func (b *Bytes) ReadU16(addr uint32) (uint16, bool) {
	if uint64(addr)+2 > uint64(len(b.buf)) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b.buf[addr:]), true
}

func (b *Bytes) ReadU32(addr uint32) (uint32, bool) {
	if uint64(addr)+4 > uint64(len(b.buf)) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b.buf[addr:]), true
}

// WriteU8 stores value at addr and returns the byte it replaced.
func (b *Bytes) WriteU8(addr uint32, value uint8) (uint8, bool) {
	if uint64(addr) >= uint64(len(b.buf)) {
		return 0, false
	}
	old := b.buf[addr]
	b.buf[addr] = value
	return old, true
}

func (b *Bytes) WriteU16(addr uint32, value uint16) (uint16, bool) {
	if uint64(addr)+2 > uint64(len(b.buf)) {
		return 0, false
	}
	old := binary.LittleEndian.Uint16(b.buf[addr:])
	binary.LittleEndian.PutUint16(b.buf[addr:], value)
	return old, true
}

func (b *Bytes) WriteU32(addr uint32, value uint32) (uint32, bool) {
	if uint64(addr)+4 > uint64(len(b.buf)) {
		return 0, false
	}
	old := binary.LittleEndian.Uint32(b.buf[addr:])
	binary.LittleEndian.PutUint32(b.buf[addr:], value)
	return old, true
}

// Slice exposes the backing range for device handlers that need to
// bulk-copy (disk sector transfers, framebuffer snapshots). Callers
// must stay within addr..addr+n.
func (b *Bytes) Slice(addr, n uint32) ([]byte, bool) {
	if uint64(addr)+uint64(n) > uint64(len(b.buf)) {
		return nil, false
	}
	return b.buf[addr : addr+n], true
}
