package abi

// NextTaskKind discriminates the shape of a NextTask value.
type NextTaskKind int

const (
	// Same means it's fine to keep running whatever task was running.
	Same NextTaskKind = iota
	// Other means a context switch is needed but the caller has not
	// concluded which task should run next; the scheduler must decide.
	Other
	// Specific means a context switch is needed and the caller already
	// knows which task should run next.
	Specific
)

// NextTask is the scheduler hint returned by every core operation that can
// affect scheduling. Every function producing one must have its result
// consumed by Combine or acted on directly; Go has no compiler-enforced
// must-use, so that discipline is audited by tests rather than the
// compiler (see SPEC_FULL.md §9).
type NextTask struct {
	Kind NextTaskKind
	// Index is only meaningful when Kind == Specific.
	Index int
}

// SameTask is the NextTask value meaning no reschedule is required.
var SameTask = NextTask{Kind: Same}

// OtherTask is the NextTask value meaning a reschedule is required but the
// caller does not know which task should run next.
var OtherTask = NextTask{Kind: Other}

// SpecificTask builds a NextTask that names the known next task.
func SpecificTask(index int) NextTask {
	return NextTask{Kind: Specific, Index: index}
}

// Combine merges two scheduling hints using the commutative rule:
// equal hints pass through unchanged; two different Specific hints
// downgrade to Other (the proposals disagree so neither is safe to act on
// alone); a Specific paired with anything else wins; any Other wins over
// Same; Same+Same is Same.
func (n NextTask) Combine(other NextTask) NextTask {
	if n == other {
		return n
	}
	if n.Kind == Specific && other.Kind == Specific {
		return OtherTask
	}
	if n.Kind == Specific {
		return n
	}
	if other.Kind == Specific {
		return other
	}
	if n.Kind == Other || other.Kind == Other {
		return OtherTask
	}
	return SameTask
}
