package ecmath

import (
	"crypto/subtle"
	"encoding/hex"

	"filippo.io/edwards25519"
)

// Point is a point on the ed25519 curve.
// The zero value of Point is not a valid point;
// it may be used only as a receiver.
type Point edwards25519.Point

var (
	// ZeroPoint is the identity of the curve group (not the zero value of Point).
	ZeroPoint Point

	// BasePoint is the ed25519 base point, generating the subgroup of order L.
	BasePoint Point
)

func (z *Point) ge() *edwards25519.Point {
	return (*edwards25519.Point)(z)
}

// Add adds the points in x and y, storing the result in z and
// returning that. Any or all of x, y, and z may be the same pointers.
func (z *Point) Add(x, y *Point) *Point {
	z.ge().Add(x.ge(), y.ge())
	return z
}

// Sub subtracts y from x, storing the result in z and
// returning that. Any or all of x, y, and z may be the same pointers.
func (z *Point) Sub(x, y *Point) *Point {
	z.ge().Subtract(x.ge(), y.ge())
	return z
}

// ScMul multiplies the EC point x by the scalar y, placing the result
// in z and returning that. X and z may be the same pointer.
func (z *Point) ScMul(x *Point, y *Scalar) *Point {
	z.ge().ScalarMult(y.scalar(), x.ge())
	return z
}

// ScMulBase multiplies the ed25519 base point by x and places the
// result in z, returning that.
func (z *Point) ScMulBase(x *Scalar) *Point {
	z.ge().ScalarBaseMult(x.scalar())
	return z
}

// ScMulAdd computes xa+yB, where B is the ed25519 base point, and
// places the result in z, returning that.
func (z *Point) ScMulAdd(a *Point, x, y *Scalar) *Point {
	var xa, yb edwards25519.Point
	xa.ScalarMult(x.scalar(), a.ge())
	yb.ScalarBaseMult(y.scalar())
	z.ge().Add(&xa, &yb)
	return z
}

// MulByCofactor computes 8x, placing the result in z and returning
// that. The result always lies in the subgroup of order L.
func (z *Point) MulByCofactor(x *Point) *Point {
	z.ge().MultByCofactor(x.ge())
	return z
}

// Encode returns the 32-byte compressed encoding of z.
func (z *Point) Encode() [32]byte {
	var e [32]byte
	copy(e[:], z.ge().Bytes())
	return e
}

// Decode sets z to the point encoded by e and reports whether e
// was a valid encoding. Non-canonical encodings of valid points
// are accepted. On failure z is unchanged.
func (z *Point) Decode(e [32]byte) (*Point, bool) {
	_, err := z.ge().SetBytes(e[:])
	return z, err == nil
}

// DecodeCanonical is like Decode, but also rejects encodings that
// do not re-encode to exactly e. Distinct accepted byte strings
// therefore always denote distinct points.
func (z *Point) DecodeCanonical(e [32]byte) (*Point, bool) {
	var p Point
	if _, ok := p.Decode(e); !ok {
		return z, false
	}
	if p.Encode() != e {
		return z, false
	}
	z.ge().Set(p.ge())
	return z, true
}

// IsTorsionFree reports whether z lies in the subgroup of order L,
// that is, whether L·z is the identity.
func (z *Point) IsTorsionFree() bool {
	// L·z computed as (L-1)·z + z, since L itself is not a
	// representable scalar.
	var t edwards25519.Point
	t.ScalarMult(NegOne.scalar(), z.ge())
	t.Add(&t, z.ge())
	return t.Equal(ZeroPoint.ge()) == 1
}

// IsIdentity reports whether z is the identity of the group.
func (z *Point) IsIdentity() bool {
	return z.ge().Equal(ZeroPoint.ge()) == 1
}

// ConstTimeEqual reports whether z and x are the same point.
func (z *Point) ConstTimeEqual(x *Point) bool {
	xe := x.Encode()
	ze := z.Encode()
	return subtle.ConstantTimeCompare(xe[:], ze[:]) == 1
}

// String returns the hex encoding of z.
func (z *Point) String() string {
	e := z.Encode()
	return hex.EncodeToString(e[:])
}

func init() {
	ZeroPoint.ge().Set(edwards25519.NewIdentityPoint())
	BasePoint.ge().Set(edwards25519.NewGeneratorPoint())
}
