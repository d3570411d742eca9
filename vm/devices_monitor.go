package vm

import "sync"

// Monitor is a raw pixel framebuffer plus a one-byte control register.
// Framebuffer bytes carry no intercept logic of their own — they pass
// straight through to backing storage, so ordinary STB/LDB reach them
// exactly like any other memory — and Snapshot copies them out for a
// host display backend. The mutex guards only the control register.
type Monitor struct {
	base          uint32
	id            uint8
	framebufferAt uint32
	size          uint32

	mu      sync.Mutex
	control uint8
}

const monitorControlSize = 1

func NewMonitor(id uint8, controlBase, framebufferBase, size uint32) *Monitor {
	return &Monitor{base: controlBase, id: id, framebufferAt: framebufferBase, size: size}
}

func (m *Monitor) MemoryArea() (uint32, uint32) {
	return m.base, m.base + monitorControlSize - 1
}

func (m *Monitor) Init(bytes *Bytes) {}

func (m *Monitor) ReadIntercept(bytes *Bytes, addr uint32) (uint8, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.control, true
}

func (m *Monitor) WriteIntercept(bytes *Bytes, addr uint32, value uint8) WriteResult {
	m.mu.Lock()
	m.control = value
	m.mu.Unlock()
	return Suppress
}

func (m *Monitor) Tick(bytes *Bytes) {}

func (m *Monitor) Record() (DeviceRecord, bool) {
	return DeviceRecord{
		ID:           m.id,
		Class:        ClassMonitor,
		BaseAddress0: m.base,
		Limit0:       monitorControlSize - 1,
		BaseAddress1: m.framebufferAt,
		Limit1:       m.size - 1,
	}, true
}

// Snapshot copies the current framebuffer contents out of the bus for
// a host display backend to present. It takes no lock, and Bytes does
// no locking of its own; a copy taken between cycles (as cmd/vm does
// from RunDebug's per-cycle callback) may show a frame the guest is
// still part-way through drawing.
func (m *Monitor) Snapshot(bytes *Bytes) []byte {
	buf, ok := bytes.Slice(m.framebufferAt, m.size)
	if !ok {
		return nil
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}
