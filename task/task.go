// Package task implements the task control block: the saved machine
// state, schedule state, generation, timer, notification bitmap, and
// region table of a single kernel task, plus its lifecycle operations.
package task

import (
	"microkernel-go/abi"
	"microkernel-go/arch"
	"microkernel-go/memregion"
)

// TimerState is a task's one-shot deadline and the notifications it posts
// when that deadline is reached. The zero value is a disabled timer.
type TimerState struct {
	Deadline *abi.Timestamp
	ToPost   abi.NotificationSet
}

// Task is the kernel's task control block. Adapter is kept as the first
// field by convention, mirroring the Rust task record's #[repr(C)] layout
// that places the saved-state blob first so low-level code can locate it
// by task pointer; Go gives no compiler guarantee of this, so the
// convention is documented here rather than enforced (see SPEC_FULL.md §9).
type Task struct {
	Adapter arch.Adapter

	Priority   abi.Priority
	Generation abi.Generation
	State      abi.TaskState

	Timer TimerState

	Pending abi.NotificationSet
	Mask    uint32

	// Regions is a borrowed, static, immutable region table. Never
	// mutated by any function in this package.
	Regions []memregion.RegionDesc

	// Entry is the static entry point used by Reinitialize.
	Entry arch.EntryPoint

	// Name is operator-facing only; the core never interprets it.
	Name string
}

// New builds a Task in its initial boot state: Healthy(Runnable),
// generation 0, disabled timer, no pending/masked notifications.
func New(adapter arch.Adapter, name string, priority abi.Priority, regions []memregion.RegionDesc, entry arch.EntryPoint) *Task {
	t := &Task{
		Adapter:  adapter,
		Name:     name,
		Priority: priority,
		Regions:  regions,
		Entry:    entry,
		State:    abi.HealthyState(abi.RunnableState),
	}
	adapter.Reinitialize(entry)
	return t
}

// IsRunnable reports whether the task is schedulable: exactly
// Healthy(Runnable).
func (t *Task) IsRunnable() bool {
	return t.State.IsRunnable()
}

// CanRead forwards to memregion.CanRead against this task's region table.
func (t *Task) CanRead(slice arch.Slice) bool {
	return memregion.CanRead(t.Regions, slice)
}

// CanWrite forwards to memregion.CanWrite against this task's region
// table.
func (t *Task) CanWrite(slice arch.Slice) bool {
	return memregion.CanWrite(t.Regions, slice)
}

// SetTimer sets the task's one-shot deadline and the notifications it will
// post when that deadline is reached. A nil deadline disables the timer.
func (t *Task) SetTimer(deadline *abi.Timestamp, notifications abi.NotificationSet) {
	t.Timer.Deadline = deadline
	t.Timer.ToPost = notifications
}

// Reinitialize resets a task's dynamic fields back to boot state:
// generation advances, timer disables, notifications clear, state becomes
// Healthy(Runnable), and the adapter's saved state resets to the task's
// static entry point.
func (t *Task) Reinitialize() {
	t.Generation = t.Generation.Next()
	t.Timer = TimerState{}
	t.Pending = 0
	t.Mask = 0
	t.State = abi.HealthyState(abi.RunnableState)
	t.Adapter.Reinitialize(t.Entry)
}
