//go:build linux

package rawsys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Chdir changes the working directory of the calling process.
func Chdir(path string) error {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return EINVAL
	}
	r := syscall1Readonly(unix.SYS_CHDIR, cStr(p))
	runtime.KeepAlive(p)
	return retUnit(r)
}

// Fchdir changes the working directory to the one fd refers to.
func Fchdir(fd BorrowedFd) error {
	return retUnit(syscall1Readonly(unix.SYS_FCHDIR, borrowedFd(fd)))
}

// Getcwd fills buf with the working directory and returns the number of
// bytes written, including the terminating NUL.
func Getcwd(buf []byte) (int, error) {
	p, n := sliceMut(buf)
	r := syscall2(unix.SYS_GETCWD, p, n)
	runtime.KeepAlive(buf)
	return retUsize(r)
}

// Getpid returns the process identifier of the calling process. The kernel
// never reports zero here; seeing one is a broken invariant.
func Getpid() Pid {
	pid := retUsizeInfallible(syscall0Readonly(unix.SYS_GETPID))
	if pid == 0 {
		panic("rawsys: getpid returned zero")
	}
	return Pid(pid)
}

// Getppid returns the parent process identifier, zero if there is none.
func Getppid() Pid {
	return Pid(retUsizeInfallible(syscall0Readonly(unix.SYS_GETPPID)))
}

// Getuid returns the real user identifier of the calling process.
func Getuid() Uid {
	return Uid(retUsizeInfallible(syscall0Readonly(nrGetuid)))
}

// Geteuid returns the effective user identifier of the calling process.
func Geteuid() Uid {
	return Uid(retUsizeInfallible(syscall0Readonly(nrGeteuid)))
}

// Getgid returns the real group identifier of the calling process.
func Getgid() Gid {
	return Gid(retUsizeInfallible(syscall0Readonly(nrGetgid)))
}

// Getegid returns the effective group identifier of the calling process.
func Getegid() Gid {
	return Gid(retUsizeInfallible(syscall0Readonly(nrGetegid)))
}

// SchedYield relinquishes the CPU. The call cannot fail.
func SchedYield() {
	syscall0Readonly(unix.SYS_SCHED_YIELD)
}

// Utsname holds the system identification strings as fixed-size
// NUL-terminated fields, exactly as the kernel fills them.
type Utsname struct {
	sysname    [65]byte
	nodename   [65]byte
	release    [65]byte
	version    [65]byte
	machine    [65]byte
	domainname [65]byte
}

func (u *Utsname) Sysname() string    { return cField(&u.sysname) }
func (u *Utsname) Nodename() string   { return cField(&u.nodename) }
func (u *Utsname) Release() string    { return cField(&u.release) }
func (u *Utsname) Version() string    { return cField(&u.version) }
func (u *Utsname) Machine() string    { return cField(&u.machine) }
func (u *Utsname) Domainname() string { return cField(&u.domainname) }

func cField(b *[65]byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b[:])
}

// Uname returns the system identification. uname only fails on a bad
// address, which this layer cannot produce.
func Uname() Utsname {
	var u Utsname
	retInfallible(syscall1(unix.SYS_UNAME, out(unsafe.Pointer(&u))))
	runtime.KeepAlive(&u)
	return u
}

// ExitGroup terminates all threads of the calling process. It does not
// return.
func ExitGroup(code int) {
	syscall1Noreturn(unix.SYS_EXIT_GROUP, cInt(int32(code)))
}
