// Package keys implements the public address that owns an asset
// and the spending key it is derived from.
//
// A public address is the 32-byte compressed encoding of a point in
// the prime-order subgroup of edwards25519. Only its fixed-width
// encoding and equality matter to asset derivation.
package keys

import (
	"encoding/hex"
	"io"

	"chain-shielded/crypto/ed25519/ecmath"
	"chain-shielded/errors"
)

// PublicAddressSize is the width of an encoded public address.
const PublicAddressSize = 32

var (
	ErrBadAddressLen  = errors.New("bad public address length")
	ErrInvalidAddress = errors.New("invalid public address")
)

// PublicAddress is the canonical encoding of an owner's public key.
// Values obtained from this package are always valid; use ==
// to compare them.
type PublicAddress [PublicAddressSize]byte

// NewPublicAddress validates b and returns it as a PublicAddress.
func NewPublicAddress(b []byte) (PublicAddress, error) {
	var a PublicAddress
	if len(b) != PublicAddressSize {
		return a, errors.WithDetailf(ErrBadAddressLen, "got %d bytes", len(b))
	}
	copy(a[:], b)
	if !a.valid() {
		return PublicAddress{}, errors.WithDetail(ErrInvalidAddress, "not a point of the prime-order subgroup")
	}
	return a, nil
}

func (a PublicAddress) valid() bool {
	var p ecmath.Point
	if _, ok := p.DecodeCanonical(a); !ok {
		return false
	}
	return p.IsTorsionFree() && !p.IsIdentity()
}

// ReadPublicAddress reads and validates a public address from r.
func ReadPublicAddress(r io.Reader) (PublicAddress, error) {
	var b [PublicAddressSize]byte
	_, err := io.ReadFull(r, b[:])
	if err != nil {
		return PublicAddress{}, errors.Wrap(err, "reading public address")
	}
	return NewPublicAddress(b[:])
}

// WriteTo satisfies the io.WriterTo interface.
func (a PublicAddress) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a[:])
	return int64(n), err
}

func (a PublicAddress) Bytes() []byte {
	return a[:]
}

func (a PublicAddress) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText satisfies the TextMarshaler interface.
// It returns the bytes of a encoded in hex.
func (a PublicAddress) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(PublicAddressSize))
	hex.Encode(b, a[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
// It decodes and validates hex data from b.
func (a *PublicAddress) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(PublicAddressSize) {
		return errors.WithDetailf(ErrBadAddressLen, "got %d hex digits", len(b))
	}
	var raw [PublicAddressSize]byte
	if _, err := hex.Decode(raw[:], b); err != nil {
		return errors.Sub(ErrInvalidAddress, err)
	}
	addr, err := NewPublicAddress(raw[:])
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
