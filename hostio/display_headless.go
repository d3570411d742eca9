//go:build headless

package hostio

// headlessDisplay discards every frame and never produces input. It
// exists so vm32 builds and runs on machines with no display server —
// CI, containers — without pulling in ebiten's platform backends.
type headlessDisplay struct {
	keyHandler func(byte)
}

func NewDisplay(cfg Config) Display {
	return &headlessDisplay{}
}

func (d *headlessDisplay) Start() error { return nil }
func (d *headlessDisplay) Close() error { return nil }

func (d *headlessDisplay) UpdateFrame(data []byte) error { return nil }

func (d *headlessDisplay) SetKeyHandler(fn func(byte)) {
	d.keyHandler = fn
}
