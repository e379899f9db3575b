package rawsys

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// negReg builds the raw return word for a negated error code, the way the
// kernel reports failure.
func negReg(code uint32) reg {
	v := uintptr(code)
	return reg(-v)
}

func TestRetUnit(t *testing.T) {
	assert.NoError(t, retUnit(0))
	assert.NoError(t, retUnit(reg(1)))

	err := retUnit(negReg(uint32(ENOSYS)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ENOSYS)
}

func TestRetUsizeRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 2, 127, 4096, math.MaxInt32} {
		got, err := retUsize(reg(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestRetCIntRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, 19, 40, math.MaxInt32} {
		got, err := retCInt(reg(int(v)))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestRetCUintRoundTrip(t *testing.T) {
	vals := []uint32{0, 1, 0x7fffffff}
	if bits.UintSize == 64 {
		// The full uint32 range is only a non-negative payload on a
		// 64-bit word.
		vals = append(vals, math.MaxUint32)
	}
	for _, v := range vals {
		got, err := retCUint(reg(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestRetKnownErrors(t *testing.T) {
	for _, e := range []Errno{EPERM, ENOENT, EINTR, ECHILD, EAGAIN, EINVAL, ERANGE, ENOSYS, EHWPOISON} {
		_, err := retUsize(negReg(uint32(e)))
		assert.ErrorIs(t, err, e, "code %d", uint32(e))
	}
}

func TestRetUnrecognizedErrors(t *testing.T) {
	// Gaps in the errno table, codes past the known set, and garbage all
	// decode to the catch-all, never to a panic or a silent zero.
	for _, code := range []uint32{41, 58, 134, 200, 4095, 9999} {
		_, err := retUsize(negReg(code))
		require.Error(t, err, "code %d", code)
		assert.ErrorIs(t, err, EUNKNOWN, "code %d", code)
	}
}

func TestRetInfallibleAbortsOnFailure(t *testing.T) {
	assert.Panics(t, func() { retInfallible(negReg(uint32(EINVAL))) })
	assert.Panics(t, func() { retUsizeInfallible(negReg(uint32(EFAULT))) })
	assert.NotPanics(t, func() { retInfallible(0) })
	assert.Equal(t, 42, retUsizeInfallible(reg(42)))
}

func TestRetNarrowingAborts(t *testing.T) {
	if bits.UintSize != 64 {
		t.Skip("payload cannot exceed 32 bits on a 32-bit word")
	}
	assert.Panics(t, func() { retCInt(reg(uintptr(math.MaxInt32) + 1)) })
	assert.Panics(t, func() { retCUint(reg(uintptr(math.MaxUint32) + 1)) })
}
