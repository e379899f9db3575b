//go:build linux && arm

package rawsys

import "golang.org/x/sys/unix"

// This architecture predates 32-bit identifiers; the *32 family returns
// them unsplit. The legacy family is never used here.
const (
	nrGetuid  = unix.SYS_GETUID32
	nrGeteuid = unix.SYS_GETEUID32
	nrGetgid  = unix.SYS_GETGID32
	nrGetegid = unix.SYS_GETEGID32
)
