package arch

import "microkernel-go/abi"

// SendArgs decodes the register packing of a SEND syscall.
type SendArgs struct {
	a Adapter
}

// AsSendArgs wraps an adapter for SEND argument decoding.
func AsSendArgs(a Adapter) SendArgs { return SendArgs{a} }

// Callee extracts the task ID the caller wishes to send to.
func (s SendArgs) Callee() abi.TaskID {
	return abi.TaskID(s.a.Arg0() >> 16)
}

// Operation extracts the operation code the caller is using.
func (s SendArgs) Operation() uint16 {
	return uint16(s.a.Arg0())
}

// Message extracts the bounds of the caller's message buffer.
func (s SendArgs) Message() (Slice, error) {
	sl, ok := sliceFromRaw(s.a.Arg1(), s.a.Arg2())
	if !ok {
		return Slice{}, errSliceOverflow
	}
	return sl, nil
}

// ResponseBuffer extracts the bounds of the caller's response buffer.
func (s SendArgs) ResponseBuffer() (Slice, error) {
	sl, ok := sliceFromRaw(s.a.Arg3(), s.a.Arg4())
	if !ok {
		return Slice{}, errSliceOverflow
	}
	return sl, nil
}

// LeaseTable extracts the bounds of the caller's lease table.
func (s SendArgs) LeaseTable() (LeaseSlice, error) {
	return leaseSliceFromRaw(s.a.Arg5(), s.a.Arg6())
}

// RecvArgs decodes the register packing of a RECV syscall.
type RecvArgs struct {
	a Adapter
}

// AsRecvArgs wraps an adapter for RECV argument decoding.
func AsRecvArgs(a Adapter) RecvArgs { return RecvArgs{a} }

// Buffer extracts the caller's receive destination buffer.
func (r RecvArgs) Buffer() (Slice, error) {
	sl, ok := sliceFromRaw(r.a.Arg0(), r.a.Arg1())
	if !ok {
		return Slice{}, errSliceOverflow
	}
	return sl, nil
}

// NotificationMask extracts the caller's notification mask.
func (r RecvArgs) NotificationMask() uint32 {
	return r.a.Arg2()
}

// ReplyArgs decodes the register packing of a REPLY syscall.
type ReplyArgs struct {
	a Adapter
}

// AsReplyArgs wraps an adapter for REPLY argument decoding.
func AsReplyArgs(a Adapter) ReplyArgs { return ReplyArgs{a} }

// Callee extracts the task ID the caller wishes to reply to.
func (r ReplyArgs) Callee() abi.TaskID {
	return abi.TaskID(r.a.Arg0())
}

// ResponseCode extracts the response code the caller is using.
func (r ReplyArgs) ResponseCode() uint32 {
	return r.a.Arg1()
}

// Message extracts the bounds of the caller's reply buffer.
func (r ReplyArgs) Message() (Slice, error) {
	sl, ok := sliceFromRaw(r.a.Arg2(), r.a.Arg3())
	if !ok {
		return Slice{}, errSliceOverflow
	}
	return sl, nil
}

// TimerArgs decodes the register packing of a TIMER syscall.
type TimerArgs struct {
	a Adapter
}

// AsTimerArgs wraps an adapter for TIMER argument decoding.
func AsTimerArgs(a Adapter) TimerArgs { return TimerArgs{a} }

// Deadline extracts the deadline, or false if the caller asked to disable
// the timer (arg0 == 0).
func (tm TimerArgs) Deadline() (abi.Timestamp, bool) {
	if tm.a.Arg0() == 0 {
		return 0, false
	}
	return abi.Timestamp(uint64(tm.a.Arg2())<<32 | uint64(tm.a.Arg1())), true
}

// Notification extracts the notification set to post when the timer fires.
func (tm TimerArgs) Notification() abi.NotificationSet {
	return abi.NotificationSet(tm.a.Arg3())
}

// BorrowArgs decodes the register packing of a BORROW_* syscall.
type BorrowArgs struct {
	a Adapter
}

// AsBorrowArgs wraps an adapter for BORROW_* argument decoding.
func AsBorrowArgs(a Adapter) BorrowArgs { return BorrowArgs{a} }

// Lender extracts the task being borrowed from.
func (b BorrowArgs) Lender() abi.TaskID {
	return abi.TaskID(b.a.Arg0())
}

// LeaseNumber extracts the lease index.
func (b BorrowArgs) LeaseNumber() uint32 {
	return b.a.Arg1()
}

// Offset extracts the intended offset into the borrowed area.
func (b BorrowArgs) Offset() uint32 {
	return b.a.Arg2()
}

// Buffer extracts the caller-side buffer area.
func (b BorrowArgs) Buffer() (Slice, error) {
	sl, ok := sliceFromRaw(b.a.Arg3(), b.a.Arg4())
	if !ok {
		return Slice{}, errSliceOverflow
	}
	return sl, nil
}

// IrqArgs decodes the register packing of an IRQ_CONTROL syscall.
type IrqArgs struct {
	a Adapter
}

// AsIrqArgs wraps an adapter for IRQ_CONTROL argument decoding.
func AsIrqArgs(a Adapter) IrqArgs { return IrqArgs{a} }

// NotificationBitmask extracts the bitmask naming notification bits.
func (i IrqArgs) NotificationBitmask() uint32 {
	return i.a.Arg0()
}

// Control extracts the control word (0=disable, 1=enable).
func (i IrqArgs) Control() uint32 {
	return i.a.Arg1()
}

// PanicArgs decodes the register packing of a PANIC syscall.
type PanicArgs struct {
	a Adapter
}

// AsPanicArgs wraps an adapter for PANIC argument decoding.
func AsPanicArgs(a Adapter) PanicArgs { return PanicArgs{a} }

// Message extracts the task's reported message slice.
func (p PanicArgs) Message() (Slice, error) {
	sl, ok := sliceFromRaw(p.a.Arg0(), p.a.Arg1())
	if !ok {
		return Slice{}, errSliceOverflow
	}
	return sl, nil
}
