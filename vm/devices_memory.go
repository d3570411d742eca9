package vm

// MemoryDescriptor is the passive device that lets the enumerator
// report the VM's own RAM as a device record. It never intercepts a
// read or write — reads and writes to its range pass straight through
// to backing storage — it exists purely so DeviceManager has an entry
// of class ClassMemory to hand back.
type MemoryDescriptor struct {
	id    uint8
	limit uint32
}

func NewMemoryDescriptor(id uint8, size uint32) *MemoryDescriptor {
	return &MemoryDescriptor{id: id, limit: size - 1}
}

func (m *MemoryDescriptor) MemoryArea() (uint32, uint32) {
	return 1, 0 // never matches: lo > hi means no address routes here
}

func (m *MemoryDescriptor) Init(bytes *Bytes) {}

func (m *MemoryDescriptor) ReadIntercept(bytes *Bytes, addr uint32) (uint8, bool) {
	return 0, false
}

func (m *MemoryDescriptor) WriteIntercept(bytes *Bytes, addr uint32, value uint8) WriteResult {
	return Commit
}

func (m *MemoryDescriptor) Tick(bytes *Bytes) {}

func (m *MemoryDescriptor) Record() (DeviceRecord, bool) {
	return DeviceRecord{
		ID:           m.id,
		Class:        ClassMemory,
		BaseAddress0: 0,
		Limit0:       m.limit,
	}, true
}
