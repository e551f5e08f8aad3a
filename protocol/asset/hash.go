package asset

import (
	"golang.org/x/crypto/sha3"

	"chain-shielded/crypto/keys"
)

// idPersonalization is the cSHAKE customization string for
// asset identifier candidates. No other hash in the protocol uses it.
const idPersonalization = "ChainCA.AssetID"

// firstBlock is the protocol constant hashed ahead of every
// candidate, a nothing-up-my-sleeve value fixed at 64 bytes.
const firstBlock = "096b36a5804bfacef1691e173c366a47ff5ba84a44f26ddd7e8d9f79d5b42df0"

// hashCandidate computes the candidate identifier
//
//	cSHAKE256(firstBlock || owner || name || metadata || nonce, 256, "", idPersonalization)
//
// It never fails.
func hashCandidate(owner keys.PublicAddress, name *[NameLength]byte, metadata *[MetadataLength]byte, nonce uint8) (digest [IDLength]byte) {
	h := sha3.NewCShake256(nil, []byte(idPersonalization))
	h.Write([]byte(firstBlock)) // error is impossible
	h.Write(owner[:])
	h.Write(name[:])
	h.Write(metadata[:])
	h.Write([]byte{nonce})
	h.Read(digest[:])
	return digest
}
