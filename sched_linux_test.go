package rawsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpuSetOps(t *testing.T) {
	var set CpuSet
	assert.Zero(t, set.Count())

	set.Set(0)
	set.Set(63)
	set.Set(64)
	set.Set(1023)
	assert.Equal(t, 4, set.Count())
	assert.True(t, set.IsSet(0))
	assert.True(t, set.IsSet(63))
	assert.True(t, set.IsSet(64))
	assert.True(t, set.IsSet(1023))
	assert.False(t, set.IsSet(1))

	set.Clear(63)
	assert.False(t, set.IsSet(63))
	assert.Equal(t, 3, set.Count())
}

func TestSchedAffinityRoundTrip(t *testing.T) {
	var set CpuSet
	require.NoError(t, SchedGetaffinity(0, &set))
	require.Positive(t, set.Count())

	require.NoError(t, SchedSetaffinity(0, &set))

	var again CpuSet
	require.NoError(t, SchedGetaffinity(0, &again))
	assert.Equal(t, set, again)
}

func TestSchedGetaffinityClearsStaleBytes(t *testing.T) {
	// Pre-poison the mask: bits the kernel does not write back must read
	// as empty, not as leftover caller data.
	var poisoned CpuSet
	for i := range poisoned.mask {
		poisoned.mask[i] = ^uint64(0)
	}
	require.NoError(t, SchedGetaffinity(0, &poisoned))

	var clean CpuSet
	require.NoError(t, SchedGetaffinity(0, &clean))
	assert.Equal(t, clean, poisoned)
}

func TestSchedGetaffinityNoSuchPid(t *testing.T) {
	var set CpuSet
	assert.ErrorIs(t, SchedGetaffinity(Pid(1<<22), &set), ESRCH)
}
