package rawsys

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestCIntSignExtends(t *testing.T) {
	assert.Equal(t, reg(0), cInt(0))
	assert.Equal(t, reg(1), cInt(1))
	assert.Equal(t, ^reg(0), cInt(-1))
	assert.Equal(t, ^reg(99), cInt(-100))
}

func TestCUintZeroExtends(t *testing.T) {
	assert.Equal(t, reg(0), cUint(0))
	assert.Equal(t, reg(0xffffffff), cUint(0xffffffff))
}

func TestBorrowedFdEncoding(t *testing.T) {
	assert.Equal(t, reg(3), borrowedFd(Borrow(3)))
	// AT_FDCWD style sentinels stay sign-extended.
	assert.Equal(t, ^reg(99), borrowedFd(Borrow(-100)))
	assert.Equal(t, -100, Borrow(-100).Raw())
}

func TestSliceMut(t *testing.T) {
	p, n := sliceMut(nil)
	assert.Equal(t, reg(0), p)
	assert.Equal(t, reg(0), n)

	buf := make([]byte, 32)
	p, n = sliceMut(buf)
	assert.Equal(t, reg(uintptr(unsafe.Pointer(&buf[0]))), p)
	assert.Equal(t, reg(32), n)
}
