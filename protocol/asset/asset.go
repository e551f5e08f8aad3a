// Package asset derives and validates the identity of a fungible
// asset in the shielded network, and encodes assets for the wire.
//
// An asset is named by its owner, name and metadata. Its ID is the
// first hash of those fields, over nonces 0 through 255, that encodes
// a valid generator point; the ID is always recomputed, never stored.
package asset

import (
	"encoding/json"
	"strings"

	"chain-shielded/crypto/ed25519/ecmath"
	"chain-shielded/crypto/keys"
	"chain-shielded/errors"
)

// MaxNonce is the last nonce tried by New.
const MaxNonce = 255

var (
	// ErrInvalidData is returned for an empty (after trimming) name.
	ErrInvalidData = errors.New("invalid asset data")

	// ErrRandomness is returned when no nonce yields a valid ID.
	ErrRandomness = errors.New("no valid asset identifier for any nonce")
)

// newID validates each candidate; tests substitute it.
var newID = NewID

// Asset describes the fields necessary to create and transact
// with an asset. Assets are immutable once constructed.
type Asset struct {
	name     [NameLength]byte
	metadata [MetadataLength]byte
	owner    keys.PublicAddress // the only address allowed to mint
	nonce    uint8
	id       ID
}

// New creates the asset owned by owner with the given name and metadata,
// searching for the smallest nonce that yields a valid ID.
// The name is trimmed of surrounding white space and must not be empty.
func New(owner keys.PublicAddress, name, metadata string) (*Asset, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.WithDetail(ErrInvalidData, "asset name must not be empty")
	}

	nameBytes := EncodeName(trimmed)
	metadataBytes := EncodeMetadata(metadata)

	for nonce := 0; nonce <= MaxNonce; nonce++ {
		a, err := NewWithNonce(owner, nameBytes, metadataBytes, uint8(nonce))
		if err == nil {
			return a, nil
		}
	}
	return nil, errors.WithDetailf(ErrRandomness, "asset %q", trimmed)
}

// NewWithNonce creates the asset for exactly the given nonce, without
// searching. It returns ErrInvalidID if that nonce does not yield a
// valid ID. Use it to reconstruct an asset whose nonce is known.
func NewWithNonce(owner keys.PublicAddress, name [NameLength]byte, metadata [MetadataLength]byte, nonce uint8) (*Asset, error) {
	id, err := newID(hashCandidate(owner, &name, &metadata, nonce))
	if err != nil {
		return nil, err
	}
	return &Asset{
		name:     name,
		metadata: metadata,
		owner:    owner,
		nonce:    nonce,
		id:       id,
	}, nil
}

func (a *Asset) Name() []byte {
	b := a.name
	return b[:]
}

func (a *Asset) Metadata() []byte {
	b := a.metadata
	return b[:]
}

func (a *Asset) Nonce() uint8 { return a.nonce }

// Owner returns the encoded public address of the owner.
func (a *Asset) Owner() [keys.PublicAddressSize]byte { return a.owner }

func (a *Asset) OwnerAddress() keys.PublicAddress { return a.owner }

func (a *Asset) ID() *ID { return &a.id }

func (a *Asset) AssetGenerator() ecmath.Point { return a.id.AssetGenerator() }

func (a *Asset) ValueCommitmentGenerator() ecmath.Point {
	return a.id.ValueCommitmentGenerator()
}

func (a *Asset) String() string { return a.id.String() }

type assetJSON struct {
	ID       ID                 `json:"id"`
	Owner    keys.PublicAddress `json:"owner"`
	Name     string             `json:"name"`
	Metadata string             `json:"metadata"`
	Nonce    uint8              `json:"nonce"`
}

// MarshalJSON renders a for tools, with name and metadata
// stripped of their padding.
func (a *Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(assetJSON{
		ID:       a.id,
		Owner:    a.owner,
		Name:     string(TrimField(a.name[:])),
		Metadata: string(TrimField(a.metadata[:])),
		Nonce:    a.nonce,
	})
}
