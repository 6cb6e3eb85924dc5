// Package timer implements the deadline-expiry scan that posts timer
// notifications and produces a scheduler hint, per spec.md §4.6.
package timer

import (
	"microkernel-go/abi"
	"microkernel-go/task"
)

// ProcessTimers scans tasks in index order. For each task whose deadline
// has passed (deadline <= currentTime), it disables the timer and posts
// its configured notification set; a wake accumulates a Specific(index)
// hint into the result via NextTask.Combine, otherwise Same. Firings
// within a single pass are delivered in table-index order, and at most one
// Specific hint survives combination — a second firing that wakes a task
// in the same pass collapses the hint to Other.
func ProcessTimers(tasks []*task.Task, currentTime abi.Timestamp) abi.NextTask {
	hint := abi.SameTask
	for i, t := range tasks {
		if t.Timer.Deadline == nil || *t.Timer.Deadline > currentTime {
			continue
		}
		toPost := t.Timer.ToPost
		t.SetTimer(nil, 0)

		var fired abi.NextTask
		if t.Post(toPost) {
			fired = abi.SpecificTask(i)
		} else {
			fired = abi.SameTask
		}
		hint = hint.Combine(fired)
	}
	return hint
}
