package vm

const (
	keyboardRegionSize = 4
	keyOffStatus       = 0
	keyOffKeycode      = 2 // u16, spans offsets 2 and 3

	keyStatusIdle    = 0x01
	keyStatusWaiting = 0x02
)

// Keyboard bridges host keystrokes, delivered over Keys, into two
// memory-mapped registers: a status byte and a 16-bit keycode. Only one
// keystroke is held at a time — a new key arriving while the previous
// one is unacknowledged is dropped, matching the "waiting" latch the
// reference keyboard used to avoid clobbering a byte the guest hasn't
// read yet.
type Keyboard struct {
	base          uint32
	id            uint8
	interruptLine uint8

	Keys chan byte

	waiting bool
	keycode uint16

	interrupts *InterruptController
}

func NewKeyboard(id uint8, base uint32, interruptLine uint8, interrupts *InterruptController) *Keyboard {
	return &Keyboard{
		base:          base,
		id:            id,
		interruptLine: interruptLine,
		Keys:          make(chan byte, 16),
		interrupts:    interrupts,
	}
}

func (k *Keyboard) MemoryArea() (uint32, uint32) {
	return k.base, k.base + keyboardRegionSize - 1
}

func (k *Keyboard) Init(bytes *Bytes) {}

func (k *Keyboard) ReadIntercept(bytes *Bytes, addr uint32) (uint8, bool) {
	switch addr - k.base {
	case keyOffStatus:
		if k.waiting {
			return keyStatusWaiting, true
		}
		return keyStatusIdle, true
	case keyOffKeycode:
		return uint8(k.keycode), true
	case keyOffKeycode + 1:
		return uint8(k.keycode >> 8), true
	}
	return 0, true
}

func (k *Keyboard) WriteIntercept(bytes *Bytes, addr uint32, value uint8) WriteResult {
	if addr-k.base == keyOffStatus && value == 0x01 {
		k.waiting = false
	}
	return Suppress
}

// Tick polls for a pending host keystroke once per cycle. It never
// blocks: an empty channel just means nothing happened this cycle.
func (k *Keyboard) Tick(bytes *Bytes) {
	if k.waiting {
		return
	}
	select {
	case key := <-k.Keys:
		k.keycode = uint16(key)
		k.waiting = true
		if k.interrupts != nil {
			k.interrupts.Enqueue(k.interruptLine, 0)
		}
	default:
	}
}

func (k *Keyboard) Record() (DeviceRecord, bool) {
	return DeviceRecord{
		ID:            k.id,
		Class:         ClassKeyboard,
		InterruptLine: k.interruptLine,
		BaseAddress0:  k.base,
		Limit0:        keyboardRegionSize - 1,
	}, true
}
