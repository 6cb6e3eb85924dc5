// Package engine provides the single-threaded kernel run loop: syscall
// dispatch, tick processing, IRQ delivery, and boot/reinitialize
// orchestration around the task/sched/timer/fault core. It is the minimal
// "surrounding kernel" spec.md treats as out of the core's specification,
// built here only so the core can be exercised end-to-end.
package engine

import (
	"context"
	"fmt"

	"microkernel-go/abi"
	"microkernel-go/arch"
	"microkernel-go/fault"
	"microkernel-go/image"
	"microkernel-go/kernerr"
	"microkernel-go/logging"
	"microkernel-go/metrics"
	"microkernel-go/sched"
	"microkernel-go/task"
	"microkernel-go/timer"
)

// Engine owns the task table and drives the kernel's six external entry
// points (spec.md §6). All task-table mutation happens inside the single
// goroutine that calls Run; spec.md §5's "only one CPU thread of control
// is in the kernel at a time" guarantee is realized here by funneling
// every entry point through one unbuffered event channel instead of a
// hardware interrupt-disable/enable pair — the channel serialization is
// the lock, so no mutex ever guards Tasks.
type Engine struct {
	Tasks    []*task.Task
	Manifest *image.Manifest
	previous int

	events chan event
	done   chan struct{}
}

type eventKind int

const (
	evDispatch eventKind = iota
	evTick
	evIRQ
	evFault
	evSelect
	evReinitialize
)

type event struct {
	kind   eventKind
	index  int
	time   abi.Timestamp
	mask   uint32
	fault  abi.FaultInfo
	result chan abi.NextTask
}

// Boot loads a boot manifest and returns a ready Engine. The manifest's
// fault-notification word is installed into the fault package before any
// event is processed.
func Boot(manifestPath string) (*Engine, error) {
	tasks, m, err := image.Load(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("engine: boot: %w", err)
	}
	fault.SetFaultNotification(m.FaultNotification)

	e := &Engine{
		Tasks:    tasks,
		Manifest: m,
		events:   make(chan event),
		done:     make(chan struct{}),
	}
	logging.Info("engine booted", "manifest_id", m.ID, "tasks", len(tasks))
	return e, nil
}

// Run drains the event channel on the calling goroutine until Stop is
// called. Any number of producer goroutines (simulated IRQ sources, a
// CLI, test harnesses) may call Dispatch/Tick/NotifyIRQ/Fault/Select
// concurrently; Run is what actually touches the task table.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case ev := <-e.events:
			ev.result <- e.handle(ctx, ev)
		case <-e.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop causes a running Run loop to return.
func (e *Engine) Stop() {
	close(e.done)
}

func (e *Engine) submit(ctx context.Context, ev event) abi.NextTask {
	ev.result = make(chan abi.NextTask, 1)
	select {
	case e.events <- ev:
	case <-ctx.Done():
		return abi.SameTask
	}
	select {
	case hint := <-ev.result:
		return hint
	case <-ctx.Done():
		return abi.SameTask
	}
}

func (e *Engine) handle(ctx context.Context, ev event) abi.NextTask {
	var hint abi.NextTask
	switch ev.kind {
	case evDispatch:
		hint = e.dispatch(ctx, ev.index)
	case evTick:
		expired := 0
		for _, t := range e.Tasks {
			if t.Timer.Deadline != nil && *t.Timer.Deadline <= ev.time {
				expired++
			}
		}
		hint = timer.ProcessTimers(e.Tasks, ev.time)
		metrics.TimersExpired.Add(float64(expired))
	case evIRQ:
		if ev.index < 0 || ev.index >= len(e.Tasks) {
			return abi.SameTask
		}
		woke := e.Tasks[ev.index].Post(abi.NotificationSet(ev.mask))
		if woke {
			metrics.NotificationsFired.Inc()
			hint = abi.SpecificTask(ev.index)
		} else {
			hint = abi.SameTask
		}
	case evFault:
		hint = fault.ForceFault(e.Tasks, ev.index, ev.fault)
		metrics.FaultsForced.WithLabelValues(faultKindLabel(ev.fault.Kind)).Inc()
	case evReinitialize:
		if ev.index >= 0 && ev.index < len(e.Tasks) {
			e.Tasks[ev.index].Reinitialize()
		}
		hint = abi.SpecificTask(ev.index)
	case evSelect:
		idx := sched.Select(e.previous, e.Tasks)
		if idx != e.previous {
			metrics.ContextSwitches.Inc()
		}
		e.previous = idx
		e.updateRunnableGauge()
		return abi.SpecificTask(idx)
	}
	e.updateRunnableGauge()
	return hint
}

func (e *Engine) updateRunnableGauge() {
	runnable := 0
	for _, t := range e.Tasks {
		if t.IsRunnable() {
			runnable++
		}
	}
	metrics.RunnableTasks.Set(float64(runnable))
}

func faultKindLabel(k abi.FaultKind) string {
	switch k {
	case abi.SyscallUsage:
		return "syscall_usage"
	case abi.MemoryAccess:
		return "memory_access"
	case abi.Panic:
		return "panic"
	default:
		return "unknown"
	}
}

// Dispatch is the syscall-entry point: it reads SyscallDescriptor() off
// the calling task's adapter and routes to the decoded core operation.
func (e *Engine) Dispatch(ctx context.Context, taskIndex int) abi.NextTask {
	return e.submit(ctx, event{kind: evDispatch, index: taskIndex})
}

// Tick is the timer-interrupt entry point.
func (e *Engine) Tick(ctx context.Context, currentTime abi.Timestamp) abi.NextTask {
	return e.submit(ctx, event{kind: evTick, time: currentTime})
}

// NotifyIRQ is the interrupt-controller entry point: posts mask to the
// task registered for this IRQ.
func (e *Engine) NotifyIRQ(ctx context.Context, taskIndex int, mask uint32) abi.NextTask {
	return e.submit(ctx, event{kind: evIRQ, index: taskIndex, mask: mask})
}

// Fault is the fault-injection entry point, used by hardware fault
// handlers (MPU traps) that don't arrive via a syscall.
func (e *Engine) Fault(ctx context.Context, index int, info abi.FaultInfo) abi.NextTask {
	return e.submit(ctx, event{kind: evFault, index: index, fault: info})
}

// Select is the scheduler entry point.
func (e *Engine) Select(ctx context.Context) int {
	hint := e.submit(ctx, event{kind: evSelect})
	return hint.Index
}

// Reinitialize is the supervisor's reinitialize hook.
func (e *Engine) Reinitialize(ctx context.Context, index int) abi.NextTask {
	return e.submit(ctx, event{kind: evReinitialize, index: index})
}

// dispatch decodes and executes one syscall. It must only be called from
// the Run goroutine.
func (e *Engine) dispatch(ctx context.Context, taskIndex int) abi.NextTask {
	if taskIndex < 0 || taskIndex >= len(e.Tasks) {
		logging.ErrorContext(ctx, "dispatch: task index out of range", "index", taskIndex)
		return abi.SameTask
	}
	t := e.Tasks[taskIndex]
	if t.State.Faulted {
		return abi.SameTask
	}
	a := t.Adapter
	desc := Descriptor(a.SyscallDescriptor())
	log := logging.WithSyscall(logging.WithTask(logging.Default(), taskIndex), uint32(desc))

	switch desc {
	case Send:
		return e.doSend(ctx, log, taskIndex, a)
	case Recv:
		return e.doRecv(ctx, log, taskIndex, t, a)
	case Reply:
		return e.doReply(ctx, log, taskIndex, a)
	case Timer:
		return e.doTimer(t, a)
	case BorrowRead, BorrowWrite, BorrowInfo:
		return e.doBorrow(ctx, log, taskIndex, desc, a)
	case IrqControl:
		return abi.SameTask
	case Panic:
		return e.doPanic(ctx, taskIndex, a)
	default:
		arch.SetErrorResponse(a, 1)
		return abi.SameTask
	}
}

func (e *Engine) respond(a arch.Adapter, err error) abi.NextTask {
	var uerr *kernerr.UserError
	if !kernerr.As(err, &uerr) {
		arch.SetErrorResponse(a, 1)
		return abi.SameTask
	}
	if uerr.Kind == kernerr.Recoverable {
		arch.SetErrorResponse(a, uerr.Code)
		return uerr.Hint
	}
	return abi.SameTask
}

func (e *Engine) forceFaultFor(ctx context.Context, index int, err error) abi.NextTask {
	var uerr *kernerr.UserError
	if !kernerr.As(err, &uerr) || uerr.Kind != kernerr.Fatal {
		return abi.SameTask
	}
	hint := fault.ForceFault(e.Tasks, index, uerr.Fault)
	metrics.FaultsForced.WithLabelValues(faultKindLabel(uerr.Fault.Kind)).Inc()
	return hint
}
