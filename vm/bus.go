package vm

// MemoryBus owns physical memory and the ordered list of memory-mapped
// devices. Every typed access decomposes into per-byte dispatches so a
// multi-byte access straddling a device boundary is legal.
type MemoryBus struct {
	bytes   *Bytes
	devices []Device
}

// NewMemoryBus allocates a bus over a memory size bytes wide.
func NewMemoryBus(size int) *MemoryBus {
	return &MemoryBus{bytes: NewBytes(size)}
}

// Attach registers a device in the bus's dispatch list. Registration
// order is dispatch precedence: the first device whose range contains
// an address wins. Devices never deregister.
func (m *MemoryBus) Attach(d Device) {
	d.Init(m.bytes)
	m.devices = append(m.devices, d)
}

func (m *MemoryBus) Devices() []Device {
	return m.devices
}

func (m *MemoryBus) Len() int {
	return m.bytes.Len()
}

// RawBytes exposes backing storage for callers that need bulk,
// non-intercepted access — host display snapshots, disk image loads
// done straight against the bus rather than through a device.
func (m *MemoryBus) RawBytes() *Bytes {
	return m.bytes
}

// deviceFor returns the device owning addr, if any.
func (m *MemoryBus) deviceFor(addr uint32) Device {
	for _, d := range m.devices {
		lo, hi := d.MemoryArea()
		if inRange(lo, hi, addr) {
			return d
		}
	}
	return nil
}

func (m *MemoryBus) readByte(addr uint32) (uint8, bool) {
	if d := m.deviceFor(addr); d != nil {
		if v, ok := d.ReadIntercept(m.bytes, addr); ok {
			return v, true
		}
		return m.bytes.ReadU8(addr)
	}
	return m.bytes.ReadU8(addr)
}

func (m *MemoryBus) writeByte(addr uint32, value uint8) bool {
	if d := m.deviceFor(addr); d != nil {
		switch d.WriteIntercept(m.bytes, addr, value) {
		case Suppress:
			return true
		default:
			_, ok := m.bytes.WriteU8(addr, value)
			return ok
		}
	}
	_, ok := m.bytes.WriteU8(addr, value)
	return ok
}

func (m *MemoryBus) ReadU8(addr uint32) (uint8, bool) {
	return m.readByte(addr)
}

func (m *MemoryBus) ReadU16(addr uint32) (uint16, bool) {
	lo, ok := m.readByte(addr)
	if !ok {
		return 0, false
	}
	hi, ok := m.readByte(addr + 1)
	if !ok {
		return 0, false
	}
	return uint16(lo) | uint16(hi)<<8, true
}

func (m *MemoryBus) ReadU32(addr uint32) (uint32, bool) {
	var v uint32
	for i := uint32(0); i < 4; i++ {
		b, ok := m.readByte(addr + i)
		if !ok {
			return 0, false
		}
		v |= uint32(b) << (8 * i)
	}
	return v, true
}

func (m *MemoryBus) WriteU8(addr uint32, value uint8) bool {
	return m.writeByte(addr, value)
}

func (m *MemoryBus) WriteU16(addr uint32, value uint16) bool {
	if !m.writeByte(addr, byte(value)) {
		return false
	}
	return m.writeByte(addr+1, byte(value>>8))
}

func (m *MemoryBus) WriteU32(addr uint32, value uint32) bool {
	for i := uint32(0); i < 4; i++ {
		if !m.writeByte(addr+i, byte(value>>(8*i))) {
			return false
		}
	}
	return true
}

// Tick runs every device's per-cycle hook in registration order.
func (m *MemoryBus) Tick() {
	for _, d := range m.devices {
		d.Tick(m.bytes)
	}
}
