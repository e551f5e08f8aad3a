package asset

import (
	"bytes"

	"chain-shielded/crypto/keys"
)

const (
	// NameLength is the width of the encoded asset name.
	NameLength = 32

	// MetadataLength is the width of the encoded asset metadata.
	MetadataLength = 96

	// IDLength is the width of an asset identifier.
	IDLength = 32

	// AssetLength is the width of an encoded Asset:
	// owner, name, metadata and the nonce byte.
	AssetLength = keys.PublicAddressSize + NameLength + MetadataLength + 1
)

// EncodeName returns the fixed-width encoding of s.
// It does not trim s; New does that before encoding.
func EncodeName(s string) (b [NameLength]byte) {
	strToArray(b[:], s)
	return b
}

// EncodeMetadata returns the fixed-width encoding of s.
func EncodeMetadata(s string) (b [MetadataLength]byte) {
	strToArray(b[:], s)
	return b
}

// strToArray copies the UTF-8 bytes of s into dst, truncating
// silently at len(dst) (possibly inside a multi-byte character)
// and leaving the remainder zero.
func strToArray(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// TrimField returns b without its trailing zero padding.
// It is for display only; fields are otherwise opaque bytes.
func TrimField(b []byte) []byte {
	return bytes.TrimRight(b, "\x00")
}
