package keys

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/sha3"

	"chain-shielded/crypto/ed25519/ecmath"
	"chain-shielded/errors"
)

// SpendingKeySize is the width of an encoded spending key.
const SpendingKeySize = 32

var ErrBadKeyStr = errors.New("bad spending key string")

const spendingKeyPersonalization = "ChainCA.SpendingKey"

// SpendingKey is the secret scalar behind a public address.
type SpendingKey struct{ s ecmath.Scalar }

// NewSpendingKey takes a source of random bytes and produces a new
// SpendingKey. If r is nil, crypto/rand.Reader is used.
func NewSpendingKey(r io.Reader) (SpendingKey, error) {
	if r == nil {
		r = rand.Reader
	}
	var entropy [32]byte
	_, err := io.ReadFull(r, entropy[:])
	if err != nil {
		return SpendingKey{}, errors.Wrap(err, "reading entropy")
	}
	return RootSpendingKey(entropy[:]), nil
}

// RootSpendingKey deterministically derives a SpendingKey from seed.
// The seed is expanded to 512 bits with cSHAKE256 and reduced mod L.
func RootSpendingKey(seed []byte) SpendingKey {
	h := sha3.NewCShake256(nil, []byte(spendingKeyPersonalization))
	h.Write(seed)
	var wide [64]byte
	h.Read(wide[:])

	var k SpendingKey
	k.s.Reduce(&wide)
	if k.s == ecmath.Zero {
		// Unreachable for any practical seed.
		k.s = ecmath.One
	}
	return k
}

// PublicAddress returns s·B.
func (k SpendingKey) PublicAddress() PublicAddress {
	var P ecmath.Point
	P.ScMulBase(&k.s)
	return P.Encode()
}

// Scalar returns the secret scalar of k.
func (k SpendingKey) Scalar() ecmath.Scalar {
	return k.s
}

func (k SpendingKey) Bytes() []byte {
	b := k.s
	return b[:]
}

func (k SpendingKey) String() string {
	return hex.EncodeToString(k.s[:])
}

func (k SpendingKey) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(SpendingKeySize))
	hex.Encode(b, k.s[:])
	return b, nil
}

// UnmarshalText decodes a hex-encoded spending key. The scalar must be
// canonical and nonzero.
func (k *SpendingKey) UnmarshalText(inp []byte) error {
	if len(inp) != hex.EncodedLen(SpendingKeySize) {
		return ErrBadKeyStr
	}
	var s ecmath.Scalar
	if _, err := hex.Decode(s[:], inp); err != nil {
		return errors.Sub(ErrBadKeyStr, err)
	}
	if !s.IsCanonical() || s == ecmath.Zero {
		return ErrBadKeyStr
	}
	k.s = s
	return nil
}
