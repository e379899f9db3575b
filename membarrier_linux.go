//go:build linux

package rawsys

import "golang.org/x/sys/unix"

// MembarrierCommand selects a memory-ordering barrier operation.
type MembarrierCommand int32

const (
	membarrierCmdQuery MembarrierCommand = 0

	MembarrierGlobal                           MembarrierCommand = 1 << 0
	MembarrierGlobalExpedited                  MembarrierCommand = 1 << 1
	MembarrierRegisterGlobalExpedited          MembarrierCommand = 1 << 2
	MembarrierPrivateExpedited                 MembarrierCommand = 1 << 3
	MembarrierRegisterPrivateExpedited         MembarrierCommand = 1 << 4
	MembarrierPrivateExpeditedSyncCore         MembarrierCommand = 1 << 5
	MembarrierRegisterPrivateExpeditedSyncCore MembarrierCommand = 1 << 6
	MembarrierPrivateExpeditedRseq             MembarrierCommand = 1 << 7
	MembarrierRegisterPrivateExpeditedRseq     MembarrierCommand = 1 << 8
)

const membarrierCmdFlagCpu = 1 << 0

// MembarrierQuery is the bit-set of barrier commands the running kernel
// supports. The zero value supports nothing.
type MembarrierQuery uint32

// Supports reports whether cmd can be issued on this kernel.
func (q MembarrierQuery) Supports(cmd MembarrierCommand) bool {
	return uint32(q)&uint32(cmd) != 0
}

// membarrierQueryFromBits reinterprets a kernel-returned flag word as the
// capability set without validation. Only ever applied to words sourced
// from the kernel boundary.
func membarrierQueryFromBits(bits uint32) MembarrierQuery {
	return MembarrierQuery(bits)
}

// membarrierQueryFromRaw decodes the query outcome. A kernel without
// membarrier is an expected state, not an error, so every failure decodes
// to the empty set.
func membarrierQueryFromRaw(r reg) MembarrierQuery {
	bits, err := retCUint(r)
	if err != nil {
		return 0
	}
	return membarrierQueryFromBits(bits)
}

// QueryMembarrier discovers which barrier commands the running kernel
// supports.
func QueryMembarrier() MembarrierQuery {
	r := syscall2(unix.SYS_MEMBARRIER, cInt(int32(membarrierCmdQuery)), cUint(0))
	return membarrierQueryFromRaw(r)
}

// Membarrier issues a memory-ordering barrier command.
func Membarrier(cmd MembarrierCommand) error {
	return retUnit(syscall2(unix.SYS_MEMBARRIER, cInt(int32(cmd)), cUint(0)))
}

// MembarrierCpu issues a barrier command scoped to one CPU. Only the rseq
// commands accept the CPU flag.
func MembarrierCpu(cmd MembarrierCommand, cpu Cpuid) error {
	return retUnit(syscall3(unix.SYS_MEMBARRIER,
		cInt(int32(cmd)), cUint(membarrierCmdFlagCpu), cUint(uint32(cpu))))
}
