// Command procstat prints what the kernel knows about the calling process,
// queried through the raw syscall layer and cross-checked against procfs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/orivej/e"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/oxalica/rawsys"
)

var rlimitNames = []struct {
	res  rawsys.Resource
	name string
}{
	{rawsys.RlimitCpu, "cpu"},
	{rawsys.RlimitFsize, "fsize"},
	{rawsys.RlimitData, "data"},
	{rawsys.RlimitStack, "stack"},
	{rawsys.RlimitCore, "core"},
	{rawsys.RlimitRss, "rss"},
	{rawsys.RlimitNproc, "nproc"},
	{rawsys.RlimitNofile, "nofile"},
	{rawsys.RlimitMemlock, "memlock"},
	{rawsys.RlimitAs, "as"},
	{rawsys.RlimitLocks, "locks"},
	{rawsys.RlimitSigpending, "sigpending"},
	{rawsys.RlimitMsgqueue, "msgqueue"},
	{rawsys.RlimitNice, "nice"},
	{rawsys.RlimitRtprio, "rtprio"},
	{rawsys.RlimitRttime, "rttime"},
}

func limitString(v uint64) string {
	if v == rawsys.RlimInfinity {
		return "unlimited"
	}
	return fmt.Sprint(v)
}

func main() {
	flLimits := flag.Bool("l", false, "print the full resource limit table")
	flag.Parse()

	pid := rawsys.Getpid()
	fmt.Println("pid:", pid, "ppid:", rawsys.Getppid())
	fmt.Printf("uid: %d euid: %d gid: %d egid: %d\n",
		rawsys.Getuid(), rawsys.Geteuid(), rawsys.Getgid(), rawsys.Getegid())

	prio, err := rawsys.GetpriorityProcess(0)
	e.Exit(err)
	fmt.Println("nice:", prio)

	buf := make([]byte, 4096)
	n, err := rawsys.Getcwd(buf)
	e.Exit(err)
	fmt.Println("cwd:", string(buf[:n-1]))

	u := rawsys.Uname()
	fmt.Println("uname:", u.Sysname(), u.Release(), u.Machine(), u.Nodename())

	var set rawsys.CpuSet
	err = rawsys.SchedGetaffinity(0, &set)
	e.Exit(err)
	fmt.Println("cpus:", set.Count())

	q := rawsys.QueryMembarrier()
	fmt.Printf("membarrier: %#x\n", uint32(q))

	si, err := rawsys.Sysinfo()
	e.Exit(err)
	unit := uint64(si.MemUnit)
	fmt.Printf("uptime: %ds procs: %d ram: %d/%d MiB\n",
		si.Uptime, si.Procs, si.FreeRAM*unit>>20, si.TotalRAM*unit>>20)

	proc, err := process.NewProcess(int32(pid))
	e.Exit(err)
	name, err := proc.Name()
	e.Exit(err)
	nice, err := proc.Nice()
	e.Exit(err)
	fmt.Println("procfs:", name, "nice:", nice)
	if int(nice) != prio {
		fmt.Fprintln(os.Stderr, "procfs nice disagrees with getpriority")
		os.Exit(1)
	}

	if *flLimits {
		for _, r := range rlimitNames {
			lim := rawsys.Getrlimit(r.res)
			fmt.Printf("rlimit %-10s %s / %s\n", r.name, limitString(lim.Cur), limitString(lim.Max))
		}
	}
}
