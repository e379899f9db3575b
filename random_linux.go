//go:build linux

package rawsys

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Getrandom flags.
const (
	GrndNonblock uint32 = 0x0001
	GrndRandom   uint32 = 0x0002
)

// Getrandom fills buf from the kernel entropy pool and returns how many
// bytes were written.
func Getrandom(buf []byte, flags uint32) (int, error) {
	p, n := sliceMut(buf)
	r := syscall3(unix.SYS_GETRANDOM, p, n, cUint(flags))
	runtime.KeepAlive(buf)
	return retUsize(r)
}
