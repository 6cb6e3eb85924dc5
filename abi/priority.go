// Package abi defines the value types shared across the kernel core:
// task identity, priority, scheduling state, notification sets, and the
// scheduler's advisory NextTask hint. Nothing in this package touches a
// task table or an adapter; it only describes shapes.
package abi

// Priority is a task's scheduling priority. Lower numeric values are more
// important, matching the upstream kernel's convention.
type Priority uint8

// IsMoreImportantThan reports whether p should be preferred over other when
// both are runnable. This is a total order: every pair of priorities
// compares as strictly less-than, greater-than, or equal.
func (p Priority) IsMoreImportantThan(other Priority) bool {
	return p < other
}
