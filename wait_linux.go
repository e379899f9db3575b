//go:build linux

package rawsys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// WaitOptions alters what Wait and Waitpid report.
type WaitOptions uint32

const (
	WNohang    WaitOptions = 1
	WUntraced  WaitOptions = 2
	WContinued WaitOptions = 8
)

// WaitStatus is the packed child-state word wait4 reports.
type WaitStatus uint32

// Exited reports whether the child terminated normally.
func (w WaitStatus) Exited() bool { return w&0x7f == 0 }

// ExitStatus returns the exit code, or -1 if the child did not exit.
func (w WaitStatus) ExitStatus() int {
	if !w.Exited() {
		return -1
	}
	return int(w>>8) & 0xff
}

// Signaled reports whether the child was terminated by a signal.
func (w WaitStatus) Signaled() bool {
	return w&0x7f != 0x7f && w&0x7f != 0
}

// Signal returns the terminating signal number, or -1 if the child was not
// signaled.
func (w WaitStatus) Signal() int {
	if !w.Signaled() {
		return -1
	}
	return int(w & 0x7f)
}

// Stopped reports whether the child is stopped by a signal.
func (w WaitStatus) Stopped() bool { return w&0xff == 0x7f }

// StopSignal returns the stopping signal number, or -1 if the child is not
// stopped.
func (w WaitStatus) StopSignal() int {
	if !w.Stopped() {
		return -1
	}
	return int(w>>8) & 0xff
}

// Continued reports whether the child resumed after a stop.
func (w WaitStatus) Continued() bool { return w == 0xffff }

// waitOutcome decodes the wait4 result. A zero pid with no error is the
// distinguished "no state change available" case and must stay separate
// from both success-with-child and failure.
func waitOutcome(r reg, status uint32) (Pid, WaitStatus, error) {
	pid, err := retCUint(r)
	if err != nil {
		return 0, 0, err
	}
	if pid == 0 {
		return 0, 0, nil
	}
	return Pid(pid), WaitStatus(status), nil
}

func wait4(pid int32, opts WaitOptions) (Pid, WaitStatus, error) {
	var status uint32
	r := syscall4(unix.SYS_WAIT4,
		cInt(pid),
		out(unsafe.Pointer(&status)),
		cInt(int32(opts)),
		zeroArg()) // no rusage
	runtime.KeepAlive(&status)
	return waitOutcome(r, status)
}

// Wait waits for any child process. A zero Pid with a nil error means no
// child had a state change to report (only possible with WNohang).
func Wait(opts WaitOptions) (Pid, WaitStatus, error) {
	return wait4(-1, opts)
}

// Waitpid waits for the child pid, or for any child in the caller's
// process group when pid is zero.
func Waitpid(pid Pid, opts WaitOptions) (Pid, WaitStatus, error) {
	return wait4(int32(pid), opts)
}
