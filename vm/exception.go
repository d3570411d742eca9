package vm

import "fmt"

// Exception is a fatal CPU fault returned from Step. The main loop
// propagates it and halts; it is never retried inside the core.
type Exception int

const (
	InvalidOpcode Exception = iota
	ProtectionFault
	ArithmeticFault
)

func (e Exception) String() string {
	switch e {
	case InvalidOpcode:
		return "invalid opcode"
	case ProtectionFault:
		return "protection fault"
	case ArithmeticFault:
		return "arithmetic fault"
	default:
		return "unknown exception"
	}
}

// Fault wraps an Exception with the diagnostic context spec.md §7 asks
// for: the instruction pointer and opcode byte at the time of failure.
type Fault struct {
	Kind   Exception
	IP     uint32
	Opcode byte
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at ip=0x%08X (opcode 0x%02X)", f.Kind, f.IP, f.Opcode)
}
