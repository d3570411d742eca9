package vm

// Fixed physical addresses (spec.md §6). Device base addresses beyond
// these two are assigned by whoever wires up the bus (see vm.go); the
// enumerator and the vector table are the only addresses every
// component needs to agree on without negotiation.
const (
	enumeratorBase  = 0xF0000
	enumeratorLimit = 0xF0013

	vectorTableBase = 0xF2000
)
