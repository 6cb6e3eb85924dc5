package timer

import (
	"testing"

	"microkernel-go/abi"
	"microkernel-go/arch"
	"microkernel-go/task"
)

// Scenario S7: timer processing wakes an open-receive task and clears its
// deadline.
func TestProcessTimersWakesTask(t *testing.T) {
	tasks := make([]*task.Task, 3)
	for i := range tasks {
		tasks[i] = task.New(arch.NewSimAdapter(), "t", 1, nil, arch.EntryPoint{})
	}
	deadline := abi.Timestamp(100)
	tasks[2].SetTimer(&deadline, 1)
	tasks[2].Mask = 1
	tasks[2].State = abi.HealthyState(abi.OpenReceive)

	hint := ProcessTimers(tasks, 150)

	if want := abi.SpecificTask(2); hint != want {
		t.Errorf("ProcessTimers hint = %v, want %v", hint, want)
	}
	if !tasks[2].IsRunnable() {
		t.Errorf("tasks[2].State = %v, want Healthy(Runnable)", tasks[2].State)
	}
	if tasks[2].Timer.Deadline != nil {
		t.Errorf("tasks[2].Timer.Deadline = %v, want nil", tasks[2].Timer.Deadline)
	}
}

func TestProcessTimersIgnoresFutureDeadlines(t *testing.T) {
	tasks := make([]*task.Task, 1)
	tasks[0] = task.New(arch.NewSimAdapter(), "t", 1, nil, arch.EntryPoint{})
	deadline := abi.Timestamp(200)
	tasks[0].SetTimer(&deadline, 1)

	hint := ProcessTimers(tasks, 150)

	if hint != abi.SameTask {
		t.Errorf("hint = %v, want Same", hint)
	}
	if tasks[0].Timer.Deadline == nil {
		t.Error("future deadline was cleared, want untouched")
	}
}

func TestProcessTimersOrderingAndCombination(t *testing.T) {
	tasks := make([]*task.Task, 2)
	for i := range tasks {
		tasks[i] = task.New(arch.NewSimAdapter(), "t", 1, nil, arch.EntryPoint{})
		tasks[i].Mask = 1
		tasks[i].State = abi.HealthyState(abi.OpenReceive)
		d := abi.Timestamp(10)
		tasks[i].SetTimer(&d, 1)
	}

	hint := ProcessTimers(tasks, 20)

	// Two tasks fire in the same pass: Specific(0).Combine(Specific(1))
	// disagrees, so the accumulated hint collapses to Other.
	if hint != abi.OtherTask {
		t.Errorf("hint = %v, want Other (two tasks fired in one pass)", hint)
	}
	for i, tk := range tasks {
		if !tk.IsRunnable() {
			t.Errorf("tasks[%d] not woken", i)
		}
	}
}

func TestProcessTimersNoTimers(t *testing.T) {
	tasks := []*task.Task{task.New(arch.NewSimAdapter(), "t", 1, nil, arch.EntryPoint{})}
	if hint := ProcessTimers(tasks, 1000); hint != abi.SameTask {
		t.Errorf("hint = %v, want Same", hint)
	}
}
