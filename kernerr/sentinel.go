// Package kernerr provides predefined sentinel errors for common failure
// cases in syscall handling.
package kernerr

import "microkernel-go/abi"

// Sentinel errors for the syscall-handling paths used throughout task,
// sched, and engine. Each is pre-classified Recoverable or Fatal per
// spec.md §7; callers compare against these with errors.Is.
var (
	// ErrDead is returned when an operation names a TaskID whose
	// generation does not match the current occupant of that table slot.
	// Recoverable: the caller's own generation count was stale, not a
	// usage violation.
	ErrDead = NewRecoverable("lookup", 1, abi.SameTask)

	// ErrTaskOutOfRange is fatal: the caller named a task table index
	// beyond the table's length, which no correct program ever does.
	ErrTaskOutOfRange = NewFatal("lookup", abi.SyscallUsageFault(abi.TaskOutOfRange))

	// ErrSliceOverflow is fatal: a (base, len) pair wrapped past the end
	// of the address space.
	ErrSliceOverflow = NewFatal("borrow", abi.SyscallUsageFault(abi.SliceOverflow))

	// ErrLeaseMisaligned is fatal: a lease table's byte length was not a
	// multiple of the lease record size.
	ErrLeaseMisaligned = NewFatal("borrow", abi.SyscallUsageFault(abi.LeaseMisaligned))

	// ErrLeaseOutOfRange is fatal: a lease index named a lease beyond the
	// caller's lease table.
	ErrLeaseOutOfRange = NewFatal("borrow", abi.SyscallUsageFault(abi.LeaseOutOfRange))

	// ErrBadMemoryAccess is fatal: the task asked the kernel to read or
	// write memory it does not own per memregion's predicates.
	ErrBadMemoryAccess = NewFatal("borrow", abi.SyscallUsageFault(abi.BadMemoryAccess))
)
