package vm

import "encoding/binary"

// recordSize is the on-the-wire width of one DeviceRecord: status,
// id, class, interrupt line, then four little-endian u32 fields.
const recordSize = 1 + 1 + 1 + 1 + 4*4

const (
	enumOffStatus = 0
	enumOffID     = 1
)

const enumCmdPopulate = 0x01

// DeviceManager is the fixed enumerator at enumeratorBase. The host
// writes the id of the device it wants at offset 1, then writes 0x01
// to offset 0 to trigger a lookup; the populated record (or a
// not-found status) is then readable starting at offset 0.
type DeviceManager struct {
	byID map[uint8]DeviceRecord

	pendingID uint8
	found     []byte // pre-encoded record bytes from the last trigger, nil if not-found
	triggered bool
}

// NewDeviceManager takes the full set of records this VM's other
// devices published, keyed by DeviceRecord.ID.
func NewDeviceManager(records []DeviceRecord) *DeviceManager {
	byID := make(map[uint8]DeviceRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	return &DeviceManager{byID: byID}
}

func (d *DeviceManager) MemoryArea() (uint32, uint32) {
	return enumeratorBase, enumeratorLimit
}

func (d *DeviceManager) Init(bytes *Bytes) {}

func (d *DeviceManager) ReadIntercept(bytes *Bytes, addr uint32) (uint8, bool) {
	offset := addr - enumeratorBase
	if offset == enumOffStatus {
		if !d.triggered {
			return 0, true
		}
		if d.found == nil {
			return deviceStatusNotFound, true
		}
		return deviceStatusOK, true
	}
	if d.found == nil {
		return 0, true
	}
	idx := int(offset)
	if idx >= len(d.found) {
		return 0, true
	}
	return d.found[idx], true
}

func (d *DeviceManager) WriteIntercept(bytes *Bytes, addr uint32, value uint8) WriteResult {
	switch addr - enumeratorBase {
	case enumOffID:
		d.pendingID = value
	case enumOffStatus:
		if value == enumCmdPopulate {
			d.populate()
		}
	}
	return Suppress
}

// populate looks up the device last staged at enumOffID and latches
// the result (record bytes, or nil for not-found) for readback.
func (d *DeviceManager) populate() {
	d.triggered = true
	rec, ok := d.byID[d.pendingID]
	if !ok {
		d.found = nil
		return
	}
	d.found = encodeRecord(rec)
}

func (d *DeviceManager) Tick(bytes *Bytes) {}

func (d *DeviceManager) Record() (DeviceRecord, bool) {
	return DeviceRecord{}, false
}

// encodeRecord lays out a DeviceRecord exactly as spec.md §3 describes
// it: status byte first (always deviceStatusOK here — the enumerator
// itself decides not-found before this is ever called), then id,
// class, interrupt line, and the four base/limit pairs.
func encodeRecord(r DeviceRecord) []byte {
	buf := make([]byte, recordSize)
	buf[0] = deviceStatusOK
	buf[1] = r.ID
	buf[2] = uint8(r.Class)
	buf[3] = r.InterruptLine
	binary.LittleEndian.PutUint32(buf[4:8], r.BaseAddress0)
	binary.LittleEndian.PutUint32(buf[8:12], r.Limit0)
	binary.LittleEndian.PutUint32(buf[12:16], r.BaseAddress1)
	binary.LittleEndian.PutUint32(buf[16:20], r.Limit1)
	return buf
}
