// Package sched implements the priority-scan scheduler: a strictly
// priority-based search with round-robin tie-break among previously-run
// tasks, per spec.md §4.5.
package sched

import "microkernel-go/task"

// PriorityScan searches tasks in round-robin order starting just after
// previous — indices previous+1..len(tasks), then 0..=previous — for the
// most important task satisfying pred. Ties do not replace the current
// best, so the first-seen candidate at a given priority wins, giving fair
// round-robin among equal-priority tasks.
func PriorityScan(previous int, tasks []*task.Task, pred func(*task.Task) bool) (int, bool) {
	n := len(tasks)
	if n == 0 {
		return 0, false
	}

	bestIndex := -1
	var bestPriority = tasks[0].Priority // placeholder, overwritten on first match

	for i := 1; i <= n; i++ {
		idx := (previous + i) % n
		t := tasks[idx]
		if !pred(t) {
			continue
		}
		if bestIndex == -1 || t.Priority.IsMoreImportantThan(bestPriority) {
			bestIndex = idx
			bestPriority = t.Priority
		}
	}

	if bestIndex == -1 {
		return 0, false
	}
	return bestIndex, true
}

// Select returns the next task to run: the most important runnable task,
// searched in round-robin order starting after previous. It panics if no
// task is runnable — the kernel's boot image is required to configure an
// always-runnable task, so this can only happen if that invariant was
// violated (spec.md §9 Open Questions).
func Select(previous int, tasks []*task.Task) int {
	idx, ok := PriorityScan(previous, tasks, (*task.Task).IsRunnable)
	if !ok {
		panic("sched: no runnable task in table")
	}
	return idx
}
