//go:build linux && (386 || arm)

package rawsys

type clong = int32
type culong = uint32

// sysinfo as the kernel writes it for a 32-bit word width.
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
	_f        [8]byte
}
