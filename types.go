package rawsys

// Pid is a process identifier. Zero is never a real process; operations
// that take a Pid treat zero as "the calling process" where the kernel
// does, and operations that return one use zero for "none".
type Pid uint32

// Uid is a user identifier.
type Uid uint32

// Gid is a group identifier.
type Gid uint32

// Cpuid is a CPU number as used by the scheduler interfaces.
type Cpuid uint32

// BorrowedFd is a non-owning reference to an open file descriptor. The
// layer encodes it into calls but never closes or duplicates it; the
// caller keeps it open for the duration of any call it is passed to.
type BorrowedFd struct {
	raw int32
}

// Borrow is the explicit borrow step turning a raw descriptor number into
// a BorrowedFd.
func Borrow(fd int) BorrowedFd {
	return BorrowedFd{raw: int32(fd)}
}

// Raw returns the descriptor number.
func (fd BorrowedFd) Raw() int {
	return int(fd.raw)
}
