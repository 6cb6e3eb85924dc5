package arch

import "testing"

func TestSimAdapterSetters(t *testing.T) {
	a := NewSimAdapter()
	SetErrorResponse(a, 4)
	if rets := a.Rets(); rets[0] != 4 || rets[1] != 0 {
		t.Errorf("SetErrorResponse: rets = %v, want [4 0 ...]", rets)
	}

	a = NewSimAdapter()
	SetSendResponseAndLength(a, 0, 128)
	if rets := a.Rets(); rets[0] != 0 || rets[1] != 128 {
		t.Errorf("SetSendResponseAndLength: rets = %v", rets)
	}

	a = NewSimAdapter()
	SetRecvResult(a, 7, 3, 64, 128, 2)
	want := [6]uint32{0, 7, 3, 64, 128, 2}
	if rets := a.Rets(); rets != want {
		t.Errorf("SetRecvResult: rets = %v, want %v", rets, want)
	}

	a = NewSimAdapter()
	SetBorrowResponseAndLength(a, 1, 8)
	if rets := a.Rets(); rets[0] != 1 || rets[1] != 8 {
		t.Errorf("SetBorrowResponseAndLength: rets = %v", rets)
	}

	a = NewSimAdapter()
	SetBorrowInfo(a, 0b11, 256)
	if rets := a.Rets(); rets[0] != 0 || rets[1] != 0b11 || rets[2] != 256 {
		t.Errorf("SetBorrowInfo: rets = %v", rets)
	}
}

func TestSimAdapterReinitialize(t *testing.T) {
	a := NewSimAdapter()
	a.SetArgs(9, [7]uint32{1, 2, 3, 4, 5, 6, 7})
	a.SetRet0(99)

	a.Reinitialize(EntryPoint{PC: 0x1000, StackPointer: 0x2000, Arg0: 11, Arg1: 22})

	if got := a.StackPointer(); got != 0x2000 {
		t.Errorf("StackPointer() = %#x, want 0x2000", got)
	}
	if got := a.Arg0(); got != 11 {
		t.Errorf("Arg0() = %v, want 11", got)
	}
	if got := a.Arg1(); got != 22 {
		t.Errorf("Arg1() = %v, want 22", got)
	}
	if got := a.SyscallDescriptor(); got != 0 {
		t.Errorf("SyscallDescriptor() = %v, want 0 after reinitialize", got)
	}
	if rets := a.Rets(); rets[0] != 0 {
		t.Errorf("ret0 = %v, want 0 after reinitialize", rets[0])
	}
}
