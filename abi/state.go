package abi

// SchedKind discriminates the shape of a SchedState value.
type SchedKind int

const (
	// Runnable means the task may be scheduled.
	Runnable SchedKind = iota
	// InRecv means the task is blocked in RECV. ReplyTo is nil for an open
	// receive (willing to accept from any sender, including the kernel);
	// a non-nil ReplyTo restricts the task to a specific sender. The core
	// (task.Post, timer/fault delivery) only gives InRecv(nil) any
	// semantics; other payloads are opaque to it.
	InRecv
	// InSend means the task is blocked sending to another task. Opaque to
	// the core; included only so the engine has a state to park a task in.
	InSend
	// InReply means the task is blocked waiting for its own reply to be
	// consumed. Opaque to the core.
	InReply
)

// SchedState is a task's scheduling sub-state while Healthy.
type SchedState struct {
	Kind SchedKind
	// ReplyTo is meaningful only for InRecv/InSend/InReply.
	ReplyTo *TaskID
}

// RunnableState is the SchedState for a schedulable task.
var RunnableState = SchedState{Kind: Runnable}

// OpenReceive is the SchedState for a task blocked in an open RECV,
// willing to accept a message (or a notification) from anyone.
var OpenReceive = SchedState{Kind: InRecv}

// IsOpenReceive reports whether s is exactly Healthy(InRecv(None)) in the
// spec's terms: blocked in RECV with no specific expected sender.
func (s SchedState) IsOpenReceive() bool {
	return s.Kind == InRecv && s.ReplyTo == nil
}

// TaskState is a task's top-level lifecycle state: Healthy or Faulted.
// Modeled as a struct with a discriminant rather than an interface so it
// stays a small, comparable value, matching the teacher's own enum-via-
// struct pattern (spec.ContainerState embeds State rather than using an
// interface for a closed set of shapes).
type TaskState struct {
	Faulted bool
	// Healthy is meaningful when Faulted is false.
	Healthy SchedState
	// OriginalState is the schedulable state the task was in when it
	// first faulted; meaningful when Faulted is true.
	OriginalState SchedState
	// Fault is meaningful when Faulted is true.
	Fault FaultInfo
}

// HealthyState builds a Healthy TaskState in the given SchedState.
func HealthyState(s SchedState) TaskState {
	return TaskState{Healthy: s}
}

// IsRunnable reports whether the task is schedulable: exactly
// Healthy(Runnable).
func (s TaskState) IsRunnable() bool {
	return !s.Faulted && s.Healthy.Kind == Runnable
}
