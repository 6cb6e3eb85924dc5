package arch

// SimAdapter is a host-simulated register file: a flat argument array, a
// return-value array, and a descriptor word. It is the only Adapter
// implementation shipped with this repo; engine and every test use it in
// place of a real ARM/RISC-V exception-frame backend, which is out of the
// core's scope.
type SimAdapter struct {
	args [7]uint32
	rets [6]uint32
	desc uint32
	sp   uint32
}

// NewSimAdapter returns a zeroed adapter.
func NewSimAdapter() *SimAdapter {
	return &SimAdapter{}
}

func (s *SimAdapter) Arg0() uint32 { return s.args[0] }
func (s *SimAdapter) Arg1() uint32 { return s.args[1] }
func (s *SimAdapter) Arg2() uint32 { return s.args[2] }
func (s *SimAdapter) Arg3() uint32 { return s.args[3] }
func (s *SimAdapter) Arg4() uint32 { return s.args[4] }
func (s *SimAdapter) Arg5() uint32 { return s.args[5] }
func (s *SimAdapter) Arg6() uint32 { return s.args[6] }

func (s *SimAdapter) SyscallDescriptor() uint32 { return s.desc }
func (s *SimAdapter) StackPointer() uint32       { return s.sp }

func (s *SimAdapter) SetRet0(v uint32) { s.rets[0] = v }
func (s *SimAdapter) SetRet1(v uint32) { s.rets[1] = v }
func (s *SimAdapter) SetRet2(v uint32) { s.rets[2] = v }
func (s *SimAdapter) SetRet3(v uint32) { s.rets[3] = v }
func (s *SimAdapter) SetRet4(v uint32) { s.rets[4] = v }
func (s *SimAdapter) SetRet5(v uint32) { s.rets[5] = v }

// Reinitialize resets the saved register file to the given entry point:
// a fresh stack pointer, cleared return registers and descriptor, and the
// first two argument registers carrying the task's boot-time args. The
// simulated register file has no program counter, so entry.PC is not
// stored.
func (s *SimAdapter) Reinitialize(entry EntryPoint) {
	s.args = [7]uint32{}
	s.rets = [6]uint32{}
	s.args[0] = entry.Arg0
	s.args[1] = entry.Arg1
	s.sp = entry.StackPointer
	s.desc = 0
}

// SetArgs lets tests and the engine's syscall-entry path load the register
// file before a dispatch, standing in for what a real trap handler would
// copy out of the exception frame.
func (s *SimAdapter) SetArgs(desc uint32, args [7]uint32) {
	s.desc = desc
	s.args = args
}

// Rets returns a snapshot of the six return registers, for tests asserting
// on what a dispatch wrote back.
func (s *SimAdapter) Rets() [6]uint32 {
	return s.rets
}
