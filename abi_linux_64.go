//go:build linux && (amd64 || arm64)

package rawsys

type clong = int64
type culong = uint64

// sysinfo as the kernel writes it for a 64-bit word width.
type sysinfoRaw struct {
	uptime    clong
	loads     [3]culong
	totalram  culong
	freeram   culong
	sharedram culong
	bufferram culong
	totalswap culong
	freeswap  culong
	procs     uint16
	pad       uint16
	totalhigh culong
	freehigh  culong
	mem_unit  uint32
}
