// Command vm boots a vm32 machine from a raw binary image and runs it
// to completion or until a fault.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vm32/hostio"
	"vm32/vm"
)

// diskFlags collects repeated -disk flags into an ordered slice of
// paths, matching the stdlib flag package's documented pattern for
// multi-value flags.
type diskFlags []string

func (d *diskFlags) String() string {
	return fmt.Sprint([]string(*d))
}

func (d *diskFlags) Set(value string) error {
	*d = append(*d, value)
	return nil
}

func main() {
	memSize := flag.Int("memory-size", vm.DefaultMemorySize, "physical memory size in bytes")
	boot := flag.String("boot", "", "path to the raw boot image to load at 0x200")
	headless := flag.Bool("headless", false, "run without a monitor/keyboard window")
	maxCycles := flag.Int("max-cycles", 0, "stop after this many cycles (0 = unbounded)")
	var disks diskFlags
	flag.Var(&disks, "disk", "path to a disk image; repeat for up to 8 disks")
	flag.Parse()

	if *boot == "" {
		log.Fatal("vm: -boot is required")
	}

	image, err := os.ReadFile(*boot)
	if err != nil {
		log.Fatalf("vm: reading boot image: %v", err)
	}

	var diskImages [][]byte
	for _, path := range disks {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("vm: reading disk image %s: %v", path, err)
		}
		diskImages = append(diskImages, data)
	}

	cfg := vm.Config{
		MemorySize:   *memSize,
		WithKeyboard: !*headless,
		WithMonitor:  !*headless,
		WithDisk:     len(diskImages) > 0,
		DiskImages:   diskImages,
	}
	machine := vm.New(cfg)

	if err := machine.LoadBootImage(image); err != nil {
		log.Fatalf("vm: %v", err)
	}

	var display hostio.Display
	if !*headless && machine.Monitor != nil {
		display = hostio.NewDisplay(hostio.Config{Width: 640, Height: 480, Title: "vm32"})
		if err := display.Start(); err != nil {
			log.Fatalf("vm: starting display: %v", err)
		}
		if machine.Keyboard != nil {
			display.SetKeyHandler(func(b byte) {
				select {
				case machine.Keyboard.Keys <- b:
				default:
				}
			})
		}
		defer display.Close()
	}

	if err := runLoop(machine, display, *maxCycles); err != nil {
		log.Fatalf("vm: %v", err)
	}
}

// runLoop steps the VM, pushing a framebuffer snapshot to the display
// after every cycle when one is attached. A real frontend would pace
// this to the display's refresh rate; for now we push every cycle and
// let the display backend decide what to do with it.
func runLoop(machine *vm.VM, display hostio.Display, maxCycles int) error {
	return machine.RunDebug(maxCycles, func(v *vm.VM) error {
		if display != nil && v.Monitor != nil {
			if frame := v.Monitor.Snapshot(v.Bus.RawBytes()); frame != nil {
				_ = display.UpdateFrame(frame)
			}
		}
		return nil
	})
}
