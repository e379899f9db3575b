//go:build linux

package rawsys

import (
	"math/bits"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

const cpuSetWords = 16

// CpuSet is a fixed 1024-bit CPU mask matching the kernel's cpu_set_t
// layout on the supported little-endian targets.
type CpuSet struct {
	mask [cpuSetWords]uint64
}

// Set marks cpu as a member of the set.
func (s *CpuSet) Set(cpu Cpuid) {
	s.mask[cpu/64] |= 1 << (cpu % 64)
}

// Clear removes cpu from the set.
func (s *CpuSet) Clear(cpu Cpuid) {
	s.mask[cpu/64] &^= 1 << (cpu % 64)
}

// IsSet reports whether cpu is a member of the set.
func (s *CpuSet) IsSet(cpu Cpuid) bool {
	return s.mask[cpu/64]&(1<<(cpu%64)) != 0
}

// Count returns the number of CPUs in the set.
func (s *CpuSet) Count() int {
	n := 0
	for _, w := range s.mask {
		n += bits.OnesCount64(w)
	}
	return n
}

// SchedGetaffinity fills set with the CPU affinity mask of pid, or of the
// calling thread when pid is zero. The kernel reports how many bytes of
// mask it uses internally; every byte past that is cleared so stale caller
// data never reads as affinity.
func SchedGetaffinity(pid Pid, set *CpuSet) error {
	r := syscall3(unix.SYS_SCHED_GETAFFINITY,
		cUint(uint32(pid)),
		cSize(unsafe.Sizeof(set.mask)),
		out(unsafe.Pointer(&set.mask)))
	runtime.KeepAlive(set)
	size, err := retUsize(r)
	if err != nil {
		return err
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&set.mask[0])), int(unsafe.Sizeof(set.mask)))
	clear(b[size:])
	return nil
}

// SchedSetaffinity restricts pid, or the calling thread when pid is zero,
// to the CPUs in set.
func SchedSetaffinity(pid Pid, set *CpuSet) error {
	r := syscall3(unix.SYS_SCHED_SETAFFINITY,
		cUint(uint32(pid)),
		cSize(unsafe.Sizeof(set.mask)),
		out(unsafe.Pointer(&set.mask)))
	runtime.KeepAlive(set)
	return retUnit(r)
}
