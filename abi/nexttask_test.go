package abi

import "testing"

func allNextTasks() []NextTask {
	return []NextTask{
		SameTask,
		OtherTask,
		SpecificTask(0),
		SpecificTask(1),
		SpecificTask(2),
	}
}

// Property 7: NextTask.Combine is commutative and idempotent on equal
// arguments.
func TestNextTaskCombineCommutative(t *testing.T) {
	vals := allNextTasks()
	for _, a := range vals {
		for _, b := range vals {
			if got, want := a.Combine(b), b.Combine(a); got != want {
				t.Errorf("Combine not commutative: %v.Combine(%v) = %v, %v.Combine(%v) = %v", a, b, got, b, a, want)
			}
		}
	}
}

func TestNextTaskCombineIdempotent(t *testing.T) {
	for _, a := range allNextTasks() {
		if got := a.Combine(a); got != a {
			t.Errorf("Combine(%v, %v) = %v, want %v", a, a, got, a)
		}
	}
}

func TestNextTaskCombineTable(t *testing.T) {
	tests := []struct {
		name string
		a, b NextTask
		want NextTask
	}{
		{"same+same", SameTask, SameTask, SameTask},
		{"same+other", SameTask, OtherTask, OtherTask},
		{"other+same", OtherTask, SameTask, OtherTask},
		{"other+other", OtherTask, OtherTask, OtherTask},
		{"specific+same", SpecificTask(2), SameTask, SpecificTask(2)},
		{"same+specific", SameTask, SpecificTask(2), SpecificTask(2)},
		{"specific+other", SpecificTask(2), OtherTask, SpecificTask(2)},
		{"specific+specific agree", SpecificTask(2), SpecificTask(2), SpecificTask(2)},
		{"specific+specific disagree", SpecificTask(2), SpecificTask(3), OtherTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Combine(tt.b); got != tt.want {
				t.Errorf("Combine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
