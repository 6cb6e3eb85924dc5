// Package fault implements the kernel's fault state machine: forcing a
// task into the Faulted state, the process-wide supervisor-notification
// word, and task-ID validation against the task table, per spec.md §4.7
// and §4.8.
package fault

import (
	"sync/atomic"

	"microkernel-go/abi"
	"microkernel-go/kernerr"
	"microkernel-go/task"
)

// supervisorIndex is the fixed task table index force_fault notifies on
// any fault: the supervisor, per spec.md's glossary ("the privileged task
// at table index 0").
const supervisorIndex = 0

// faultNotification is the single piece of process-wide mutable state in
// the core: the notification bitmask posted to the supervisor on every
// fault. It is a pure bitmask with no happens-before obligations, so a
// plain atomic word (relaxed load/store) is the correct primitive — this
// is the one place in the corpus that needs sync/atomic, since nothing
// else here has process-wide mutable state shared outside the single
// engine goroutine.
var faultNotification uint32

// SetFaultNotification sets the supervisor-notification bitmask. Intended
// to be called at most once, at kernel boot.
func SetFaultNotification(mask uint32) {
	atomic.StoreUint32(&faultNotification, mask)
}

// ForceFault transitions tasks[index] into the Faulted state and notifies
// the supervisor.
//
//   - If the task is currently Healthy(s), its new state is
//     Faulted{OriginalState: s, Fault: info}.
//   - If already Faulted{OriginalState, ..}, OriginalState is preserved and
//     only Fault is overwritten (double-fault: the latest fault wins, the
//     first schedulable state survives).
//   - The supervisor-notification mask is posted to task index 0. If that
//     wakes the supervisor, the hint is Specific(0); otherwise Other (a
//     reschedule is still needed since the faulting task is no longer
//     runnable).
func ForceFault(tasks []*task.Task, index int, info abi.FaultInfo) abi.NextTask {
	t := tasks[index]
	if t.State.Faulted {
		t.State.Fault = info
	} else {
		t.State = abi.TaskState{
			Faulted:       true,
			OriginalState: t.State.Healthy,
			Fault:         info,
		}
	}

	mask := atomic.LoadUint32(&faultNotification)
	if tasks[supervisorIndex].Post(abi.NotificationSet(mask)) {
		return abi.SpecificTask(supervisorIndex)
	}
	return abi.OtherTask
}

// CheckTaskIDAgainstTable validates id against table, per spec.md §4.8:
//
//   - id == abi.KERNEL, or id.Index() >= len(table): fatal
//     *kernerr.UserError wrapping kernerr.ErrTaskOutOfRange. The KERNEL
//     sentinel is rejected before indexing, even in a table large enough
//     to have a slot at its index.
//   - table[id.Index()].Generation != id.Generation(): recoverable
//     *kernerr.UserError wrapping kernerr.ErrDead, hint Same.
//   - otherwise: the validated index, nil error.
func CheckTaskIDAgainstTable(table []*task.Task, id abi.TaskID) (int, error) {
	if id == abi.KERNEL {
		return 0, kernerr.ErrTaskOutOfRange
	}
	idx := id.Index()
	if idx >= len(table) {
		return 0, kernerr.ErrTaskOutOfRange
	}
	if table[idx].Generation != id.Generation() {
		return 0, kernerr.ErrDead
	}
	return idx, nil
}
