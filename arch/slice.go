package arch

import "microkernel-go/abi"

// Slice is a caller-described (base, length) byte range in the task's
// address space, as decoded off the syscall ABI before memregion validates
// it against the task's region table.
type Slice struct {
	Base uint32
	Len  uint32
}

// End returns the exclusive end address of the slice.
func (s Slice) End() uint32 {
	return s.Base + s.Len
}

// sliceFromRaw builds a Slice from a (base, len) register pair, rejecting
// any pair that would wrap past the end of the 32-bit address space — the
// same overflow check Hubris's USlice::from_raw performs.
func sliceFromRaw(base, length uint32) (Slice, bool) {
	end := base + length
	if end < base {
		return Slice{}, false
	}
	return Slice{Base: base, Len: length}, true
}

// LeaseSize is sizeof(Lease) in bytes: three packed uint32 fields, matching
// the Rust ULease layout referenced by kern/src/task.rs.
const LeaseSize = 12

// Lease describes one entry of a caller's lease table: a byte range being
// lent to the callee, plus the attributes (read/write) the lender allows.
type Lease struct {
	BaseAddr   uint32
	Length     uint32
	Attributes uint32
}

// LeaseSlice is a (base, count) pair naming a caller's lease table, already
// validated for overflow and for alignment to LeaseSize.
type LeaseSlice struct {
	Base  uint32
	Count uint32
}

// leaseSliceFromRaw builds a LeaseSlice from a (base, byteLen) register
// pair. byteLen must be a multiple of LeaseSize; the byte range must not
// wrap the address space.
func leaseSliceFromRaw(base, byteLen uint32) (LeaseSlice, error) {
	if byteLen%LeaseSize != 0 {
		return LeaseSlice{}, errLeaseMisaligned
	}
	end := base + byteLen
	if end < base {
		return LeaseSlice{}, errSliceOverflow
	}
	return LeaseSlice{Base: base, Count: byteLen / LeaseSize}, nil
}

// the arch package keeps its own unexported sentinels rather than
// importing kernerr, since kernerr's fatal sentinels already wrap
// abi.UsageError values this package would otherwise have to duplicate;
// the engine translates these into kernerr.ErrSliceOverflow /
// kernerr.ErrLeaseMisaligned at the boundary where a *kernerr.UserError is
// actually needed.
var (
	errSliceOverflow   = sliceError{abi.SliceOverflow}
	errLeaseMisaligned = sliceError{abi.LeaseMisaligned}
)

type sliceError struct {
	kind abi.UsageError
}

func (e sliceError) Error() string { return e.kind.String() }

// UsageErrorOf extracts the abi.UsageError a proxy decode failed with, for
// callers that need to build a *kernerr.UserError from it.
func UsageErrorOf(err error) (abi.UsageError, bool) {
	se, ok := err.(sliceError)
	if !ok {
		return 0, false
	}
	return se.kind, true
}
