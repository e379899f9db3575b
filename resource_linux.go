//go:build linux

package rawsys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Resource selects a per-process limit for Getrlimit.
type Resource uint32

const (
	RlimitCpu        Resource = 0
	RlimitFsize      Resource = 1
	RlimitData       Resource = 2
	RlimitStack      Resource = 3
	RlimitCore       Resource = 4
	RlimitRss        Resource = 5
	RlimitNproc      Resource = 6
	RlimitNofile     Resource = 7
	RlimitMemlock    Resource = 8
	RlimitAs         Resource = 9
	RlimitLocks      Resource = 10
	RlimitSigpending Resource = 11
	RlimitMsgqueue   Resource = 12
	RlimitNice       Resource = 13
	RlimitRtprio     Resource = 14
	RlimitRttime     Resource = 15
)

// RlimInfinity marks an unbounded limit in Rlimit.
const RlimInfinity = ^uint64(0)

// Rlimit is a soft/hard limit pair. RlimInfinity in either field means the
// limit is unbounded.
type Rlimit struct {
	Cur uint64
	Max uint64
}

// rlimit64 mirrors the kernel's 64-bit limit structure used by prlimit64
// on every architecture.
type rlimit64 struct {
	rlim_cur uint64
	rlim_max uint64
}

const rlim64Infinity = ^uint64(0)

func prlimit64Into(res Resource, lim *rlimit64) error {
	r := syscall4(unix.SYS_PRLIMIT64,
		zeroArg(), // 0 = calling process
		cUint(uint32(res)),
		zeroArg(), // no new limit
		out(unsafe.Pointer(lim)))
	runtime.KeepAlive(lim)
	return retUnit(r)
}

func rlimitFrom64(lim rlimit64) Rlimit {
	res := Rlimit{Cur: RlimInfinity, Max: RlimInfinity}
	if lim.rlim_cur != rlim64Infinity {
		res.Cur = lim.rlim_cur
	}
	if lim.rlim_max != rlim64Infinity {
		res.Max = lim.rlim_max
	}
	return res
}

// rlimitFromLegacy widens a narrow-width limit pair, rewriting the legacy
// all-ones infinity marker inf to the open-ended sentinel.
func rlimitFromLegacy(cur, max, inf uint64) Rlimit {
	res := Rlimit{Cur: RlimInfinity, Max: RlimInfinity}
	if cur != inf {
		res.Cur = cur
	}
	if max != inf {
		res.Max = max
	}
	return res
}

// getrlimitCompat prefers the 64-bit encoding and retries exactly once
// through the legacy encoding when the running kernel does not implement
// prlimit64. The branch is taken at runtime because the binary must work
// against kernels older than its build target. Any failure other than
// "not implemented" breaks the call contract.
func getrlimitCompat(res Resource,
	primary func(Resource, *rlimit64) error,
	fallback func(Resource) (cur, max, inf uint64),
) Rlimit {
	var lim rlimit64
	err := primary(res, &lim)
	if err == nil {
		return rlimitFrom64(lim)
	}
	if err != ENOSYS {
		panic("rawsys: prlimit64 failed: " + err.Error())
	}
	return rlimitFromLegacy(fallback(res))
}

// Getrlimit returns the limit pair for res of the calling process.
func Getrlimit(res Resource) Rlimit {
	return getrlimit(res)
}
