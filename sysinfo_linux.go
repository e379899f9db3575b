//go:build linux

package rawsys

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SystemInfo is the decoded sysinfo structure. Memory figures are in units
// of MemUnit bytes.
type SystemInfo struct {
	Uptime    int64
	Loads     [3]uint64
	TotalRAM  uint64
	FreeRAM   uint64
	SharedRAM uint64
	BufferRAM uint64
	TotalSwap uint64
	FreeSwap  uint64
	Procs     uint16
	TotalHigh uint64
	FreeHigh  uint64
	MemUnit   uint32
}

// Sysinfo returns overall system statistics.
func Sysinfo() (SystemInfo, error) {
	var raw sysinfoRaw
	r := syscall1(unix.SYS_SYSINFO, out(unsafe.Pointer(&raw)))
	runtime.KeepAlive(&raw)
	if err := retUnit(r); err != nil {
		return SystemInfo{}, err
	}
	return SystemInfo{
		Uptime:    int64(raw.uptime),
		Loads:     [3]uint64{uint64(raw.loads[0]), uint64(raw.loads[1]), uint64(raw.loads[2])},
		TotalRAM:  uint64(raw.totalram),
		FreeRAM:   uint64(raw.freeram),
		SharedRAM: uint64(raw.sharedram),
		BufferRAM: uint64(raw.bufferram),
		TotalSwap: uint64(raw.totalswap),
		FreeSwap:  uint64(raw.freeswap),
		Procs:     raw.procs,
		TotalHigh: uint64(raw.totalhigh),
		FreeHigh:  uint64(raw.freehigh),
		MemUnit:   raw.mem_unit,
	}, nil
}
