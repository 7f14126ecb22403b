// Package primint contains bit-manipulation helpers generic over the
// primitive integer widths, statically dispatched via type parameters.
package primint

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// hostBigEndian reports the byte order the process runs under.
var hostBigEndian = func() bool {
	x := uint16(0x0102)

	return *(*byte)(unsafe.Pointer(&x)) == 0x01
}()

// width returns the size of T in bits.
func width[T constraints.Integer]() uint {
	var z T

	return uint(unsafe.Sizeof(z)) * 8
}

// toBits widens v to uint64 masked to the width of T, undoing the sign
// extension Go's conversion applies to negative values.
func toBits[T constraints.Integer](v T) (uint64, uint) {
	w := width[T]()

	return uint64(v) & (^uint64(0) >> (64 - w)), w
}

// CountOnes returns the number of set bits in v.
func CountOnes[T constraints.Integer](v T) int {
	u, _ := toBits(v)

	return bits.OnesCount64(u)
}

// CountZeros returns the number of clear bits in v.
func CountZeros[T constraints.Integer](v T) int {
	u, w := toBits(v)

	return int(w) - bits.OnesCount64(u)
}

// LeadingZeros returns the number of clear bits above the most
// significant set bit.
func LeadingZeros[T constraints.Integer](v T) int {
	u, w := toBits(v)

	return bits.LeadingZeros64(u) - int(64-w)
}

// TrailingZeros returns the number of clear bits below the least
// significant set bit, or the full width for zero.
func TrailingZeros[T constraints.Integer](v T) int {
	u, w := toBits(v)
	if u == 0 {
		return int(w)
	}

	return bits.TrailingZeros64(u)
}

// RotateLeft rotates v left by n bits within its own width.
func RotateLeft[T constraints.Integer](v T, n uint) T {
	u, w := toBits(v)
	n %= w

	return T((u<<n | u>>(w-n)) & (^uint64(0) >> (64 - w)))
}

// RotateRight rotates v right by n bits within its own width.
func RotateRight[T constraints.Integer](v T, n uint) T {
	w := width[T]()

	return RotateLeft(v, w-n%w)
}

// UnsignedShiftRight shifts v right filling with zeros, regardless of
// the signedness of T.
func UnsignedShiftRight[T constraints.Integer](v T, n uint) T {
	u, w := toBits(v)
	if n >= w {
		return 0
	}

	return T(u >> n)
}

// SignedShiftRight shifts v right filling with copies of the sign bit,
// regardless of the signedness of T.
func SignedShiftRight[T constraints.Integer](v T, n uint) T {
	u, w := toBits(v)
	if n >= w {
		n = w - 1
	}

	// Sign-extend at the width of T before the arithmetic shift.
	s := int64(u<<(64-w)) >> (64 - w)

	return T(uint64(s>>n) & (^uint64(0) >> (64 - w)))
}

// SwapBytes reverses the byte order of v.
func SwapBytes[T constraints.Integer](v T) T {
	u, w := toBits(v)

	return T(bits.ReverseBytes64(u) >> (64 - w))
}

// ToBE converts v from host order to big-endian representation.
func ToBE[T constraints.Integer](v T) T {
	if hostBigEndian {
		return v
	}

	return SwapBytes(v)
}

// ToLE converts v from host order to little-endian representation.
func ToLE[T constraints.Integer](v T) T {
	if hostBigEndian {
		return SwapBytes(v)
	}

	return v
}

// FromBE converts v from big-endian representation to host order.
func FromBE[T constraints.Integer](v T) T { return ToBE(v) }

// FromLE converts v from little-endian representation to host order.
func FromLE[T constraints.Integer](v T) T { return ToLE(v) }

// onePerByte builds the 0x0101...01 constant of T's width by doubling
// the populated span until it covers the whole value.
func onePerByte[T constraints.Integer]() T {
	ret := T(1)
	shift := uint(8)
	b := uint(CountZeros(ret)) >> 3

	for b != 0 {
		ret = (ret << shift) | ret
		shift <<= 1
		b >>= 1
	}

	return ret
}

// ReverseBits mirrors the bits of v. The bytes are reversed wholesale,
// then each byte's nibbles, bit pairs and bits are swapped through the
// replicated-mask cascade.
func ReverseBits[T constraints.Integer](v T) T {
	rep01 := onePerByte[T]()
	rep03 := (rep01 << 1) | rep01
	rep05 := (rep01 << 2) | rep01
	rep0f := (rep03 << 2) | rep03
	rep33 := (rep03 << 4) | rep03
	rep55 := (rep05 << 4) | rep05

	ret := SwapBytes(v)
	ret = ((ret & rep0f) << 4) | ((ret >> 4) & rep0f)
	ret = ((ret & rep33) << 2) | ((ret >> 2) & rep33)
	ret = ((ret & rep55) << 1) | ((ret >> 1) & rep55)

	return ret
}

// Pow raises base to exp by repeated squaring. Overflow wraps as with
// the native multiplication operator.
func Pow[T constraints.Integer](base T, exp uint32) T {
	result := T(1)

	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}

		base *= base
		exp >>= 1
	}

	return result
}
