//go:build linux

package rawsys

import "golang.org/x/sys/unix"

// Scheduling priority targets.
const (
	prioProcess = 0
	prioPgrp    = 1
	prioUser    = 2
)

// The kernel biases getpriority by 20 so the return word stays
// non-negative; decoding undoes the bias.
func getpriority(which, who uint32) (int, error) {
	v, err := retCInt(syscall2Readonly(unix.SYS_GETPRIORITY, cUint(which), cUint(who)))
	if err != nil {
		return 0, err
	}
	return 20 - int(v), nil
}

func setpriority(which, who uint32, prio int) error {
	return retUnit(syscall3Readonly(unix.SYS_SETPRIORITY, cUint(which), cUint(who), cInt(int32(prio))))
}

// GetpriorityProcess returns the nice value of pid, or of the calling
// process when pid is zero.
func GetpriorityProcess(pid Pid) (int, error) {
	return getpriority(prioProcess, uint32(pid))
}

// GetpriorityPgrp returns the highest (most negative) nice value in the
// process group pgid, or in the caller's group when pgid is zero.
func GetpriorityPgrp(pgid Pid) (int, error) {
	return getpriority(prioPgrp, uint32(pgid))
}

// GetpriorityUser returns the highest nice value among processes owned by
// uid.
func GetpriorityUser(uid Uid) (int, error) {
	return getpriority(prioUser, uint32(uid))
}

// SetpriorityProcess sets the nice value of pid, or of the calling process
// when pid is zero.
func SetpriorityProcess(pid Pid, prio int) error {
	return setpriority(prioProcess, uint32(pid), prio)
}

// SetpriorityPgrp sets the nice value of every process in pgid.
func SetpriorityPgrp(pgid Pid, prio int) error {
	return setpriority(prioPgrp, uint32(pgid), prio)
}

// SetpriorityUser sets the nice value of every process owned by uid.
func SetpriorityUser(uid Uid, prio int) error {
	return setpriority(prioUser, uint32(uid), prio)
}

// niceTarget computes the priority Nice applies: increments inside
// [-40, 40) are relative to current, anything else is taken as-is, and the
// result is clamped to the valid nice range.
func niceTarget(inc, current int) int {
	prio := inc
	if inc > -40 && inc < 40 {
		prio += current
	}
	if prio > 19 {
		prio = 19
	} else if prio < -20 {
		prio = -20
	}
	return prio
}

// Nice adjusts the calling process's nice value by inc and returns the
// value that was applied.
func Nice(inc int) (int, error) {
	current := 0
	if inc > -40 && inc < 40 {
		var err error
		current, err = GetpriorityProcess(0)
		if err != nil {
			return 0, err
		}
	}
	prio := niceTarget(inc, current)
	if err := SetpriorityProcess(0, prio); err != nil {
		return 0, err
	}
	return prio, nil
}
