package rawsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMembarrierQueryDecodesBits(t *testing.T) {
	q := membarrierQueryFromRaw(reg(uint32(MembarrierGlobal | MembarrierPrivateExpedited)))
	assert.True(t, q.Supports(MembarrierGlobal))
	assert.True(t, q.Supports(MembarrierPrivateExpedited))
	assert.False(t, q.Supports(MembarrierGlobalExpedited))
	assert.False(t, q.Supports(MembarrierRegisterPrivateExpeditedRseq))
}

func TestMembarrierQueryFailureIsEmpty(t *testing.T) {
	// A kernel without membarrier is an expected state: every failure
	// shape decodes to the empty capability set.
	for _, e := range []Errno{ENOSYS, EPERM, EINVAL} {
		q := membarrierQueryFromRaw(negReg(uint32(e)))
		assert.Equal(t, MembarrierQuery(0), q, e.Error())
		assert.False(t, q.Supports(MembarrierGlobal))
	}
	q := membarrierQueryFromRaw(negReg(9999))
	assert.Equal(t, MembarrierQuery(0), q)
}

func TestQueryMembarrierLive(t *testing.T) {
	q := QueryMembarrier()
	if q == 0 {
		t.Log("kernel reports no membarrier support")
		return
	}
	// Issuing a supported register command must not error.
	if q.Supports(MembarrierRegisterPrivateExpedited) {
		assert.NoError(t, Membarrier(MembarrierRegisterPrivateExpedited))
		assert.NoError(t, Membarrier(MembarrierPrivateExpedited))
	}
}
