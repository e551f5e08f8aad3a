// Package ecmath provides point and scalar arithmetic
// on the edwards25519 curve used for asset generators
// and value commitments.
package ecmath

import (
	"crypto/subtle"
	"encoding/binary"

	"filippo.io/edwards25519"
)

// Scalar is a 256-bit little-endian scalar.
// Arithmetic results are always reduced mod L;
// inputs need not be.
type Scalar [32]byte

var (
	// Zero is the number 0.
	Zero Scalar

	// One is the number 1.
	One = Scalar{1}

	// Cofactor is the number 8, the cofactor of edwards25519.
	Cofactor = Scalar{8}

	// NegOne is the number -1 mod L
	NegOne = Scalar{
		0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}

	// L is the subgroup order:
	// 2^252 + 27742317777372353535851937790883648493
	L = Scalar{
		0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
)

// scalar converts s to the library representation,
// reducing it mod L.
func (s *Scalar) scalar() *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], s[:])
	x, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err) // impossible: wide is 64 bytes
	}
	return x
}

func (s *Scalar) set(x *edwards25519.Scalar) *Scalar {
	copy(s[:], x.Bytes())
	return s
}

// SetUint64 sets s to n.
func (s *Scalar) SetUint64(n uint64) {
	*s = Zero
	binary.LittleEndian.PutUint64(s[:8], n)
}

// Add computes x+y (mod L) and places the result in z, returning
// that. Any or all of x, y, and z may be the same pointer.
func (z *Scalar) Add(x, y *Scalar) *Scalar {
	return z.MulAdd(x, &One, y)
}

// Sub computes x-y (mod L) and places the result in z, returning
// that. Any or all of x, y, and z may be the same pointer.
func (z *Scalar) Sub(x, y *Scalar) *Scalar {
	return z.MulAdd(y, &NegOne, x)
}

// Neg negates x (mod L) and places the result in z, returning that. X
// and z may be the same pointer.
func (z *Scalar) Neg(x *Scalar) *Scalar {
	return z.MulAdd(x, &NegOne, &Zero)
}

// MulAdd computes ab+c (mod L) and places the result in z, returning
// that. Any or all of the pointers may be the same.
func (z *Scalar) MulAdd(a, b, c *Scalar) *Scalar {
	return z.set(edwards25519.NewScalar().MultiplyAdd(a.scalar(), b.scalar(), c.scalar()))
}

// Equal reports whether z and x are equal mod L.
func (z *Scalar) Equal(x *Scalar) bool {
	return z.scalar().Equal(x.scalar()) == 1
}

// Reduce takes a 512-bit scalar and reduces it mod L, placing the
// result in z and returning that.
func (z *Scalar) Reduce(x *[64]byte) *Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(x[:])
	if err != nil {
		panic(err) // impossible: x is 64 bytes
	}
	return z.set(s)
}

// IsCanonical reports whether z is fully reduced mod L.
func (z *Scalar) IsCanonical() bool {
	e := z.scalar().Bytes()
	return subtle.ConstantTimeCompare(e, z[:]) == 1
}
