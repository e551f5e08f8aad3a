package asset

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"chain-shielded/crypto/ed25519/ecmath"
)

const vcRandomnessPersonalization = "ChainCA.VC.R"

// ValueCommitmentRandomnessGenerator is the generator R that blinds
// every value commitment. It is shared by all assets and independent
// of every asset generator.
var ValueCommitmentRandomnessGenerator = makeRandomnessGenerator()

func makeRandomnessGenerator() (R ecmath.Point) {
	base := ecmath.BasePoint.Encode()
	for ctr := uint64(0); ; ctr++ {
		// 1. Calculate `cSHAKE256(Encode(B) || uint64le(counter), 256, "", "ChainCA.VC.R")`
		h := sha3.NewCShake256(nil, []byte(vcRandomnessPersonalization))
		h.Write(base[:])
		var ctrle [8]byte
		binary.LittleEndian.PutUint64(ctrle[:], ctr)
		h.Write(ctrle[:])
		var b [32]byte
		h.Read(b[:])

		// 2. Decode the resulting hash as a point `P` on the elliptic curve.
		var P ecmath.Point
		if _, ok := P.Decode(b); !ok {
			continue
		}

		// 3. Calculate point `R = 8*P`, which belongs to the subgroup of order `L`.
		R.MulByCofactor(&P)
		if R.IsIdentity() {
			continue
		}
		return R
	}
}

// ValueCommitment is a Pedersen commitment to an amount of one asset:
//
//	value·V + blind·R
//
// where V is the asset's value commitment generator.
type ValueCommitment struct {
	p ecmath.Point
}

// CreateValueCommitment commits to value of the asset with the given id.
// A nil blind makes the commitment nonblinded.
func CreateValueCommitment(value uint64, id *ID, blind *ecmath.Scalar) *ValueCommitment {
	var v ecmath.Scalar
	v.SetUint64(value)

	V := id.ValueCommitmentGenerator()
	vc := new(ValueCommitment)
	vc.p.ScMul(&V, &v)
	if blind != nil {
		var T ecmath.Point
		T.ScMul(&ValueCommitmentRandomnessGenerator, blind)
		vc.p.Add(&vc.p, &T)
	}
	return vc
}

// Add sets vc to x+y and returns vc. The result commits to the sum of
// the values under the sum of the blinds, for the same asset.
func (vc *ValueCommitment) Add(x, y *ValueCommitment) *ValueCommitment {
	vc.p.Add(&x.p, &y.p)
	return vc
}

// Sub sets vc to x-y and returns vc.
func (vc *ValueCommitment) Sub(x, y *ValueCommitment) *ValueCommitment {
	vc.p.Sub(&x.p, &y.p)
	return vc
}

// Verify reports whether vc opens to value and blind for id.
func (vc *ValueCommitment) Verify(value uint64, id *ID, blind *ecmath.Scalar) bool {
	want := CreateValueCommitment(value, id, blind)
	return vc.p.ConstTimeEqual(&want.p)
}

// Point returns the committed point.
func (vc *ValueCommitment) Point() ecmath.Point { return vc.p }

func (vc *ValueCommitment) Bytes() []byte {
	e := vc.p.Encode()
	return e[:]
}
