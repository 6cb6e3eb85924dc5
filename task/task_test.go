package task

import (
	"testing"

	"microkernel-go/abi"
	"microkernel-go/arch"
	"microkernel-go/memregion"
)

func TestNewIsRunnable(t *testing.T) {
	tk := New(arch.NewSimAdapter(), "supervisor", 0, nil, arch.EntryPoint{})
	if !tk.IsRunnable() {
		t.Error("New task is not runnable")
	}
	if tk.Generation != 0 {
		t.Errorf("Generation = %v, want 0", tk.Generation)
	}
}

func TestReinitializeAdvancesGenerationAndResetsState(t *testing.T) {
	tk := New(arch.NewSimAdapter(), "t", 1, nil, arch.EntryPoint{PC: 0x200, StackPointer: 0x1000})
	deadline := abi.Timestamp(500)
	tk.SetTimer(&deadline, 0x4)
	tk.Pending = 0xFF
	tk.Mask = 0xFF
	tk.State = abi.TaskState{Faulted: true, Fault: abi.PanicFault("boom")}

	tk.Reinitialize()

	if tk.Generation != 1 {
		t.Errorf("Generation = %v, want 1", tk.Generation)
	}
	if tk.Timer.Deadline != nil {
		t.Errorf("Timer.Deadline = %v, want nil", tk.Timer.Deadline)
	}
	if tk.Pending != 0 || tk.Mask != 0 {
		t.Errorf("Pending/Mask = %v/%v, want 0/0", tk.Pending, tk.Mask)
	}
	if !tk.IsRunnable() {
		t.Errorf("state after Reinitialize = %v, want Healthy(Runnable)", tk.State)
	}

	sim := tk.Adapter.(*arch.SimAdapter)
	if got := sim.StackPointer(); got != 0x1000 {
		t.Errorf("StackPointer() = %#x, want 0x1000", got)
	}
}

func TestCanReadWriteForwardsToMemregion(t *testing.T) {
	regions := []memregion.RegionDesc{
		{Base: 0x1000, Length: 0x100, Attributes: memregion.Read},
	}
	tk := New(arch.NewSimAdapter(), "t", 1, regions, arch.EntryPoint{})

	readable := arch.Slice{Base: 0x1010, Len: 0x10}
	if !tk.CanRead(readable) {
		t.Error("CanRead = false for a slice inside a READ region")
	}
	if tk.CanWrite(readable) {
		t.Error("CanWrite = true for a READ-only region")
	}
}
