package task

import (
	"microkernel-go/abi"
	"microkernel-go/arch"
)

// Post delivers notification bits n to the task, per spec.md §4.4:
//
//  1. pending |= n.
//  2. firing := pending & mask.
//  3. If firing == 0, return false.
//  4. If the task is blocked in an open receive (Healthy(InRecv(nil))),
//     write the recv result (sender=KERNEL, operation=firing, all lengths
//     zero), transition to Healthy(Runnable), acknowledge notifications,
//     and return true.
//  5. Otherwise return false.
//
// The return value tells the caller whether this task just became
// runnable and may need to be woken by the scheduler.
func (t *Task) Post(n abi.NotificationSet) bool {
	t.Pending |= n
	firing := uint32(t.Pending) & t.Mask
	if firing == 0 {
		return false
	}
	if t.State.Faulted || !t.State.Healthy.IsOpenReceive() {
		return false
	}

	arch.SetRecvResult(t.Adapter, uint16(abi.KERNEL), firing, 0, 0, 0)
	t.State = abi.HealthyState(abi.RunnableState)
	t.AcknowledgeNotifications()
	return true
}

// UpdateMask sets the task's notification mask to m and reports whether
// any pending bits now fire under the new mask. It does not acknowledge
// those bits; the caller decides whether to.
func (t *Task) UpdateMask(m uint32) (fired uint32, ok bool) {
	t.Mask = m
	firing := uint32(t.Pending) & t.Mask
	if firing == 0 {
		return 0, false
	}
	return firing, true
}

// AcknowledgeNotifications clears every masked pending bit. Idempotent;
// unmasked pending bits persist for a future mask change.
func (t *Task) AcknowledgeNotifications() {
	t.Pending &= abi.NotificationSet(^t.Mask)
}
