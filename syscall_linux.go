//go:build linux

package rawsys

import "golang.org/x/sys/unix"

// reg is one machine-word register slot of the kernel calling convention.
// It carries no meaning until an encoder produces it or a decoder consumes
// it.
type reg uintptr

// pack folds the split (value, errno) pair x/sys reports back into the
// kernel's single signed return word, so every decoder sees the same shape
// it would see on the raw ABI.
func pack(r1 uintptr, errno unix.Errno) reg {
	if errno != 0 {
		return reg(-uintptr(errno))
	}
	return reg(r1)
}

// The Readonly variants are for calls with no observable memory effect
// beyond the return word; they skip the scheduler handoff. Classifying a
// mutating call as readonly is a correctness bug, not a tuning knob.

func syscall0Readonly(nr uintptr) reg {
	r1, _, e := unix.RawSyscall6(nr, 0, 0, 0, 0, 0, 0)
	return pack(r1, e)
}

func syscall1Readonly(nr uintptr, a0 reg) reg {
	r1, _, e := unix.RawSyscall6(nr, uintptr(a0), 0, 0, 0, 0, 0)
	return pack(r1, e)
}

func syscall2Readonly(nr uintptr, a0, a1 reg) reg {
	r1, _, e := unix.RawSyscall6(nr, uintptr(a0), uintptr(a1), 0, 0, 0, 0)
	return pack(r1, e)
}

func syscall3Readonly(nr uintptr, a0, a1, a2 reg) reg {
	r1, _, e := unix.RawSyscall6(nr, uintptr(a0), uintptr(a1), uintptr(a2), 0, 0, 0)
	return pack(r1, e)
}

func syscall1(nr uintptr, a0 reg) reg {
	r1, _, e := unix.Syscall6(nr, uintptr(a0), 0, 0, 0, 0, 0)
	return pack(r1, e)
}

func syscall2(nr uintptr, a0, a1 reg) reg {
	r1, _, e := unix.Syscall6(nr, uintptr(a0), uintptr(a1), 0, 0, 0, 0)
	return pack(r1, e)
}

func syscall3(nr uintptr, a0, a1, a2 reg) reg {
	r1, _, e := unix.Syscall6(nr, uintptr(a0), uintptr(a1), uintptr(a2), 0, 0, 0)
	return pack(r1, e)
}

func syscall4(nr uintptr, a0, a1, a2, a3 reg) reg {
	r1, _, e := unix.Syscall6(nr, uintptr(a0), uintptr(a1), uintptr(a2), uintptr(a3), 0, 0)
	return pack(r1, e)
}

// syscall1Noreturn dispatches a call that must not come back, such as
// exit_group. The kernel returning anyway means the contract is broken.
func syscall1Noreturn(nr uintptr, a0 reg) {
	unix.Syscall(nr, uintptr(a0), 0, 0)
	panic("rawsys: noreturn syscall returned")
}
