//go:build linux

package rawsys

import "unsafe"

// Argument encoders. Each produces exactly one register slot. Pointer-like
// encodings hold the address only; the wrapper owning the memory keeps it
// alive across dispatch with runtime.KeepAlive.

func cInt(v int32) reg {
	return reg(int(v)) // sign-extend to the native word
}

func cUint(v uint32) reg {
	return reg(v)
}

func zeroArg() reg {
	return 0
}

// cSize encodes a byte count, typically a structure size.
func cSize(v uintptr) reg {
	return reg(v)
}

// cStr encodes the address of a NUL-terminated byte sequence.
func cStr(p *byte) reg {
	return reg(uintptr(unsafe.Pointer(p)))
}

// out encodes an output slot: caller-owned memory the kernel fills. The
// slot holds nothing readable until the decoder reports success.
func out(p unsafe.Pointer) reg {
	return reg(uintptr(p))
}

// sliceMut encodes a byte buffer as its address and length registers. A nil
// or empty slice encodes as a null address with zero length.
func sliceMut(b []byte) (reg, reg) {
	if len(b) == 0 {
		return 0, 0
	}
	return reg(uintptr(unsafe.Pointer(&b[0]))), reg(len(b))
}

func borrowedFd(fd BorrowedFd) reg {
	return reg(int(fd.raw)) // AT_FDCWD and friends are negative
}
