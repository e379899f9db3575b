package rawsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysinfoLive(t *testing.T) {
	si, err := Sysinfo()
	require.NoError(t, err)
	assert.Positive(t, si.Uptime)
	assert.Positive(t, si.TotalRAM)
	assert.Positive(t, si.Procs)
	assert.NotZero(t, si.MemUnit)
	unit := uint64(si.MemUnit)
	assert.LessOrEqual(t, si.FreeRAM*unit, si.TotalRAM*unit)
}
