package asset

import (
	"bytes"
	"io"

	"chain-shielded/crypto/keys"
	"chain-shielded/errors"
)

// ErrMalformedAsset is the root of every decoding failure:
// short input, an invalid owner, or fields that do not
// yield a valid ID. Cause recovers which.
var ErrMalformedAsset = errors.New("malformed asset encoding")

// malformed roots err at ErrMalformedAsset, keeping
// the original root as the error's "cause" data item.
func malformed(err error) error {
	return errors.WithData(errors.Sub(ErrMalformedAsset, err), "cause", errors.Root(err))
}

// Cause returns the underlying reason for a decoding error
// rooted at ErrMalformedAsset, such as ErrInvalidID,
// keys.ErrInvalidAddress or io.ErrUnexpectedEOF.
// It returns nil if err carries no cause.
func Cause(err error) error {
	cause, _ := errors.Data(err)["cause"].(error)
	return cause
}

// WriteTo writes the fixed-width encoding of a:
//
//	owner || name || metadata || nonce
//
// There is no framing and no ID; readers recompute it.
func (a *Asset) WriteTo(w io.Writer) (int64, error) {
	var buf [AssetLength]byte
	a.encode(&buf)
	n, err := w.Write(buf[:])
	return int64(n), err
}

// Bytes returns the fixed-width encoding of a.
func (a *Asset) Bytes() []byte {
	var buf [AssetLength]byte
	a.encode(&buf)
	return buf[:]
}

func (a *Asset) encode(buf *[AssetLength]byte) {
	b := buf[:0]
	b = append(b, a.owner[:]...)
	b = append(b, a.name[:]...)
	b = append(b, a.metadata[:]...)
	b = append(b, a.nonce)
}

// Read reads one encoded asset from r and re-derives its ID.
// No partial asset is ever returned.
func Read(r io.Reader) (*Asset, error) {
	er := errors.NewReader(r)

	var (
		owner    [keys.PublicAddressSize]byte
		name     [NameLength]byte
		metadata [MetadataLength]byte
		nonce    [1]byte
	)
	er.ReadFull(owner[:])
	er.ReadFull(name[:])
	er.ReadFull(metadata[:])
	er.ReadFull(nonce[:])
	if err := er.Err(); err != nil {
		return nil, malformed(errors.Wrapf(err, "after %d bytes", er.BytesRead()))
	}

	addr, err := keys.NewPublicAddress(owner[:])
	if err != nil {
		return nil, malformed(err)
	}

	a, err := NewWithNonce(addr, name, metadata, nonce[0])
	if err != nil {
		return nil, malformed(err)
	}
	return a, nil
}

// Decode decodes an asset from exactly AssetLength bytes.
func Decode(b []byte) (*Asset, error) {
	if len(b) != AssetLength {
		return nil, errors.WithDetailf(ErrMalformedAsset, "got %d bytes, want %d", len(b), AssetLength)
	}
	return Read(bytes.NewReader(b))
}
