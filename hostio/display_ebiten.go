//go:build !headless

package hostio

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenDisplay is the default Display backend: a real window driven
// by ebiten's game loop, running on its own goroutine so the VM's
// cycle loop never blocks on vsync.
type EbitenDisplay struct {
	width, height int
	title         string

	mu          sync.RWMutex
	frameBuffer []byte
	window      *ebiten.Image
	keyHandler  func(byte)

	running bool
	ready   chan struct{}
}

func NewDisplay(cfg Config) Display {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	title := cfg.Title
	if title == "" {
		title = "vm32"
	}
	return &EbitenDisplay{
		width:       w,
		height:      h,
		title:       title,
		frameBuffer: make([]byte, w*h*4),
		ready:       make(chan struct{}, 1),
	}
}

func (d *EbitenDisplay) Start() error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = true
	d.mu.Unlock()

	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		if err := ebiten.RunGame(d); err != nil {
			fmt.Printf("hostio: ebiten exited: %v\n", err)
		}
	}()

	<-d.ready
	return nil
}

func (d *EbitenDisplay) Close() error {
	d.mu.Lock()
	d.running = false
	d.mu.Unlock()
	return nil
}

func (d *EbitenDisplay) UpdateFrame(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(data) != len(d.frameBuffer) {
		return fmt.Errorf("hostio: frame size %d does not match display size %d", len(data), len(d.frameBuffer))
	}
	copy(d.frameBuffer, data)
	return nil
}

func (d *EbitenDisplay) SetKeyHandler(fn func(byte)) {
	d.mu.Lock()
	d.keyHandler = fn
	d.mu.Unlock()
}

// Update satisfies ebiten.Game. It runs on ebiten's own goroutine.
func (d *EbitenDisplay) Update() error {
	d.mu.RLock()
	running := d.running
	handler := d.keyHandler
	d.mu.RUnlock()
	if !running || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if handler == nil {
		return nil
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r > 0 && r <= 0xFF {
			handler(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		handler('\n')
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		handler('\b')
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	if d.window == nil {
		d.window = ebiten.NewImage(d.width, d.height)
	}
	d.window.WritePixels(d.frameBuffer)
	d.mu.Unlock()

	screen.DrawImage(d.window, nil)
	select {
	case d.ready <- struct{}{}:
	default:
	}
}

func (d *EbitenDisplay) Layout(_, _ int) (int, int) {
	return d.width, d.height
}
