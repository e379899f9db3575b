//go:build linux && (386 || arm)

package rawsys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rlimitLegacy is the narrow limit structure of the pre-2.6.36 interface.
type rlimitLegacy struct {
	rlim_cur culong
	rlim_max culong
}

const legacyRlimInfinity = ^culong(0)

func getrlimit(res Resource) Rlimit {
	return getrlimitCompat(res, prlimit64Into, legacyGetrlimit)
}

// legacyGetrlimit issues the old narrow-width query. It exists on every
// kernel the 32-bit targets support, so failure is an invariant breach.
func legacyGetrlimit(res Resource) (cur, max, inf uint64) {
	var lim rlimitLegacy
	retInfallible(syscall2(unix.SYS_UGETRLIMIT, cUint(uint32(res)), out(unsafe.Pointer(&lim))))
	runtime.KeepAlive(&lim)
	return uint64(lim.rlim_cur), uint64(lim.rlim_max), uint64(legacyRlimInfinity)
}
