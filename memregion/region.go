// Package memregion implements the kernel's memory-region model: the
// per-task region table and the can_read/can_write predicates that gate
// every kernel-mediated memory access during IPC.
package memregion

import "microkernel-go/arch"

// RegionAttributes is a bitset of region permission flags.
type RegionAttributes uint32

const (
	// Read grants the owning task (and kernel-mediated IPC acting on its
	// behalf) read access to the region.
	Read RegionAttributes = 1 << iota
	// Write grants write access.
	Write
	// Device marks the region as memory-mapped I/O. Kernel-mediated IPC
	// reads/writes never touch DEVICE regions, even if READ/WRITE are
	// also set, since a side-effecting MMIO access triggered implicitly
	// by another task's IPC would be surprising and unsafe.
	Device
)

// namedAttributes lists every named attribute bit, for String and for the
// boot-manifest loader's human-readable region dumps — the allowlist-table
// idiom the teacher uses for Linux device major:minor checks, rewritten
// here around region flags since there is no Linux underneath this kernel.
var namedAttributes = []struct {
	bit  RegionAttributes
	name string
}{
	{Read, "READ"},
	{Write, "WRITE"},
	{Device, "DEVICE"},
}

// Contains reports whether a has every bit set in other.
func (a RegionAttributes) Contains(other RegionAttributes) bool {
	return a&other == other
}

// String renders the set bits as a "|"-joined list, e.g. "READ|WRITE".
func (a RegionAttributes) String() string {
	if a == 0 {
		return "NONE"
	}
	s := ""
	for _, na := range namedAttributes {
		if a.Contains(na.bit) {
			if s != "" {
				s += "|"
			}
			s += na.name
		}
	}
	return s
}

// RegionDesc describes one entry of a task's static memory-region table.
type RegionDesc struct {
	Base       uint32
	Length     uint32
	Attributes RegionAttributes
}

// Covers reports whether slice lies entirely within [Base, Base+Length).
func (r RegionDesc) Covers(slice arch.Slice) bool {
	if slice.Len == 0 {
		return slice.Base >= r.Base && slice.Base <= r.Base+r.Length
	}
	end := slice.Base + slice.Len
	return slice.Base >= r.Base && end <= r.Base+r.Length && end >= slice.Base
}
