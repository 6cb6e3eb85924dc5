// Package kernerr provides the kernel's two-class error taxonomy:
// recoverable responses, handed back to the caller as a syscall return
// code, and fatal faults, which force the offending task into the Faulted
// state. All errors support the standard errors.Is()/errors.As() functions
// for inspection, in the same idiom as the teacher's own error package.
package kernerr

import (
	"errors"
	"fmt"

	"microkernel-go/abi"
)

// Kind classifies a UserError as spec.md §7 requires: a response the
// caller can see and keep running past, or a fault that suspends the task.
type Kind int

const (
	// Recoverable indicates the caller gets a response code back and
	// keeps running.
	Recoverable Kind = iota
	// Fatal indicates the offending task is forced into the Faulted
	// state; the core never retries or "recovers" these on its own.
	Fatal
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case Recoverable:
		return "recoverable"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// UserError is a kernel-detected error arising from handling a syscall.
// It carries enough information for the engine to act on it: either write
// a response code and a scheduling hint back to the caller (Recoverable),
// or call fault.ForceFault (Fatal).
type UserError struct {
	Kind Kind
	// Op names the operation that failed (e.g. "send", "recv", "borrow").
	Op string
	// Code is the response value written to ret0 when Kind == Recoverable.
	Code uint32
	// Hint is the scheduling hint accompanying a Recoverable response.
	Hint abi.NextTask
	// Fault is populated when Kind == Fatal.
	Fault abi.FaultInfo
	// Err is an optional wrapped lower-level error.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.String()
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	switch e.Kind {
	case Recoverable:
		msg += fmt.Sprintf(" (code=%d)", e.Code)
	case Fatal:
		switch e.Fault.Kind {
		case abi.SyscallUsage:
			msg += fmt.Sprintf(" (%s)", e.Fault.Usage)
		case abi.Panic:
			msg += fmt.Sprintf(" (panic: %s)", e.Fault.Message)
		default:
			msg += " (memory access)"
		}
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *UserError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether the error matches target by Kind and, for
// Recoverable errors, by Code.
func (e *UserError) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	t, ok := target.(*UserError)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if e.Kind == Recoverable {
		return e.Code == t.Code
	}
	return true
}

// NewRecoverable builds a Recoverable UserError carrying a response code and
// scheduling hint.
func NewRecoverable(op string, code uint32, hint abi.NextTask) *UserError {
	return &UserError{Kind: Recoverable, Op: op, Code: code, Hint: hint}
}

// NewFatal builds a Fatal UserError wrapping a FaultInfo.
func NewFatal(op string, fault abi.FaultInfo) *UserError {
	return &UserError{Kind: Fatal, Op: op, Fault: fault}
}

// IsKind reports whether err is a *UserError of the given Kind.
func IsKind(err error, kind Kind) bool {
	var uerr *UserError
	if errors.As(err, &uerr) {
		return uerr.Kind == kind
	}
	return false
}

// Re-export standard library functions for convenience, matching the
// teacher's own kernerr-adjacent package idiom.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)
