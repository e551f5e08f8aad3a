package asset

import (
	"encoding/hex"
	"io"

	"chain-shielded/crypto/ed25519/ecmath"
	"chain-shielded/errors"
)

// ErrInvalidID is returned when a digest does not encode a
// generator of the prime-order subgroup. During nonce search
// it is routine, not exceptional.
var ErrInvalidID = errors.New("not a valid asset identifier")

// ID is the canonical 32-byte identifier of an asset.
// Its bytes are the canonical encoding of a point in the prime-order
// subgroup of edwards25519, from which the asset generator and the
// value commitment generator are derived once, at construction.
//
// IDs are immutable. Compare them with Equal; == does not compile.
type ID struct {
	b   [IDLength]byte
	gen ecmath.Point // asset generator
	vcg ecmath.Point // value commitment generator
}

// NewID validates b and derives its generators.
//
// The point encoded by b must decode canonically, lie in the subgroup
// of order L and not be the identity. The asset generator is that point;
// the value commitment generator is 8 times it.
func NewID(b [IDLength]byte) (ID, error) {
	var id ID
	if _, ok := id.gen.DecodeCanonical(b); !ok {
		return ID{}, ErrInvalidID
	}
	if !id.gen.IsTorsionFree() || id.gen.IsIdentity() {
		return ID{}, ErrInvalidID
	}
	id.b = b
	id.vcg.MulByCofactor(&id.gen)
	return id, nil
}

// Byte32 returns the identifier bytes.
func (id *ID) Byte32() [IDLength]byte { return id.b }

func (id *ID) Bytes() []byte {
	b := id.b
	return b[:]
}

// Equal reports whether id and other have the same bytes.
func (id *ID) Equal(other *ID) bool {
	return id.b == other.b
}

// IsZero reports whether id is the zero value, which is never valid.
func (id *ID) IsZero() bool {
	return id.b == [IDLength]byte{}
}

// AssetGenerator returns the point tagging value of this asset.
func (id *ID) AssetGenerator() ecmath.Point {
	return id.gen
}

// ValueCommitmentGenerator returns the generator of the prime-order
// subgroup used to commit to amounts of this asset.
func (id *ID) ValueCommitmentGenerator() ecmath.Point {
	return id.vcg
}

func (id ID) String() string {
	return hex.EncodeToString(id.b[:])
}

// MarshalText satisfies the TextMarshaler interface.
// It returns the bytes of id encoded in hex.
func (id ID) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(IDLength))
	hex.Encode(b, id.b[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
// It decodes hex data from b and validates the result.
func (id *ID) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(IDLength) {
		return errors.WithDetailf(ErrInvalidID, "got %d hex digits", len(b))
	}
	var raw [IDLength]byte
	if _, err := hex.Decode(raw[:], b); err != nil {
		return errors.Sub(ErrInvalidID, err)
	}
	v, err := NewID(raw)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// WriteTo satisfies the io.WriterTo interface.
func (id *ID) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(id.b[:])
	return int64(n), err
}

// ReadID reads IDLength bytes from r and validates them.
func ReadID(r io.Reader) (ID, error) {
	var b [IDLength]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return ID{}, errors.Wrap(err, "reading asset id")
	}
	return NewID(b)
}

