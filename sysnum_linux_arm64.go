//go:build linux && arm64

package rawsys

import "golang.org/x/sys/unix"

// Identity syscall family for this architecture.
const (
	nrGetuid  = unix.SYS_GETUID
	nrGeteuid = unix.SYS_GETEUID
	nrGetgid  = unix.SYS_GETGID
	nrGetegid = unix.SYS_GETEGID
)
