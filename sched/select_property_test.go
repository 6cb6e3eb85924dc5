package sched

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microkernel-go/abi"
	"microkernel-go/arch"
	"microkernel-go/task"
)

func randomTaskTable(r *rand.Rand, n int) []*task.Task {
	tasks := make([]*task.Task, n)
	for i := range tasks {
		tk := task.New(arch.NewSimAdapter(), "t", abi.Priority(r.Intn(256)), nil, arch.EntryPoint{})
		if r.Intn(3) == 0 {
			tk.State = abi.HealthyState(abi.OpenReceive) // blocked, not runnable
		}
		tasks[i] = tk
	}
	return tasks
}

// Property 5, randomized: Select always returns a runnable task, and its
// priority is at least as important as every other runnable task's.
func TestSelectPropertyAlwaysPicksBestRunnable(t *testing.T) {
	r := rand.New(rand.NewSource(12345))

	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(12)
		tasks := randomTaskTable(r, n)

		// Guarantee at least one runnable task so Select can't panic.
		tasks[r.Intn(n)].State = abi.HealthyState(abi.RunnableState)

		previous := r.Intn(n)
		idx := Select(previous, tasks)

		require.True(t, tasks[idx].IsRunnable(), "trial %d: Select returned a non-runnable task", trial)

		for j, other := range tasks {
			if j == idx || !other.IsRunnable() {
				continue
			}
			assert.Falsef(t, other.Priority.IsMoreImportantThan(tasks[idx].Priority),
				"trial %d: task %d (priority %d) is more important than selected task %d (priority %d)",
				trial, j, other.Priority, idx, tasks[idx].Priority)
		}
	}
}

// Property 6: among several equally-most-important runnable
// tasks, repeated Select calls visit each at least once before repeating,
// i.e. PriorityScan's round robin doesn't starve any of them.
func TestSelectPropertyRoundRobinNoStarvation(t *testing.T) {
	tasks := make([]*task.Task, 4)
	for i := range tasks {
		tasks[i] = task.New(arch.NewSimAdapter(), "t", 5, nil, arch.EntryPoint{})
	}

	visited := map[int]bool{}
	previous := 0
	for i := 0; i < len(tasks); i++ {
		previous = Select(previous, tasks)
		visited[previous] = true
	}

	assert.Len(t, visited, len(tasks), "round robin should visit every equal-priority task once per cycle")
}
