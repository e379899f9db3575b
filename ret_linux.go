//go:build linux

package rawsys

import "math"

// Result decoders. A negative return word is a negated kernel error code;
// anything else is the success payload, narrowed to the requested width.
// Payloads that do not fit the requested width mean the encode/decode
// contract itself is broken, so narrowing failures abort rather than
// return.

func retUnit(r reg) error {
	if v := int(r); v < 0 {
		return errnoOf(v)
	}
	return nil
}

func retUsize(r reg) (int, error) {
	if v := int(r); v < 0 {
		return 0, errnoOf(v)
	}
	return int(r), nil
}

func retCInt(r reg) (int32, error) {
	v := int(r)
	if v < 0 {
		return 0, errnoOf(v)
	}
	if uint64(r) > math.MaxInt32 {
		panic("rawsys: syscall result out of int32 range")
	}
	return int32(v), nil
}

func retCUint(r reg) (uint32, error) {
	if v := int(r); v < 0 {
		return 0, errnoOf(v)
	}
	if uint64(r) > math.MaxUint32 {
		panic("rawsys: syscall result out of uint32 range")
	}
	return uint32(r), nil
}

// retInfallible decodes a call the caller asserts cannot fail. A failure
// here is not an error condition, it is a broken invariant.
func retInfallible(r reg) {
	if v := int(r); v < 0 {
		panic("rawsys: infallible syscall failed: " + errnoOf(v).Error())
	}
}

func retUsizeInfallible(r reg) int {
	if v := int(r); v < 0 {
		panic("rawsys: infallible syscall failed: " + errnoOf(v).Error())
	}
	return int(r)
}
