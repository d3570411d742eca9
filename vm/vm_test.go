package vm

import "testing"

func TestVMBootsAndRunsProgramToHalt(t *testing.T) {
	// MOVI r1, 0x3A ; invalid opcode to halt the loop deterministically.
	program := movi(1, 0x3A)
	program = append(program, 0xEE)

	machine := New(Config{MemorySize: 4096})
	if err := machine.LoadBootImage(program); err != nil {
		t.Fatalf("LoadBootImage: %v", err)
	}

	err := machine.Run(0)
	fault, ok := err.(*Fault)
	if !ok || fault.Kind != InvalidOpcode {
		t.Fatalf("expected InvalidOpcode fault, got %v", err)
	}
	if machine.CPU.Registers[1] != 0x3A {
		t.Fatalf("r1 = 0x%X, want 0x3A", machine.CPU.Registers[1])
	}
}

func TestVMEnumeratesAttachedDevices(t *testing.T) {
	machine := New(Config{MemorySize: 1 << 20, WithKeyboard: true, WithMonitor: true})

	found := false
	for id := uint8(0); id < 8; id++ {
		machine.Bus.WriteU8(enumeratorBase+enumOffID, id)
		machine.Bus.WriteU8(enumeratorBase+enumOffStatus, enumCmdPopulate)

		status, _ := machine.Bus.ReadU8(enumeratorBase)
		if status != deviceStatusOK {
			continue
		}
		class, _ := machine.Bus.ReadU8(enumeratorBase + 2)
		if Class(class) == ClassMonitor {
			found = true
		}
	}
	if !found {
		t.Fatalf("enumerator never reported a ClassMonitor record")
	}
}

func TestVMDeliversKeyboardInterrupt(t *testing.T) {
	machine := New(Config{MemorySize: 1 << 20, WithKeyboard: true})
	machine.CPU.InterruptsEnabled = true
	machine.CPU.Registers[15] = 0x10000
	machine.Intr.enabled = true
	machine.Intr.mask = 0 // unmask every line for this test

	handlerAddr := uint32(0x9000)
	machine.Bus.WriteU32(vectorTableBase+1*4, handlerAddr)
	machine.Bus.WriteU8(DefaultLoadAddress, opNop)
	machine.CPU.IP = DefaultLoadAddress

	machine.Keyboard.Keys <- 'q'

	if err := machine.Step(); err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}

	if machine.CPU.IP != handlerAddr {
		t.Fatalf("ip = 0x%X, want handler at 0x%X after keyboard interrupt", machine.CPU.IP, handlerAddr)
	}
}
