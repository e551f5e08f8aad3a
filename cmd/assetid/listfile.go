package main

import (
	"io"

	"chain-shielded/encoding/blockchain"
	"chain-shielded/errors"
	"chain-shielded/protocol/asset"
)

const (
	listFileTag    = "assetid list v1"
	maxListFileTag = 64
)

var errListFile = errors.New("not an asset list file")

// writeListFile writes the header tag and then assets.
func writeListFile(w io.Writer, assets []*asset.Asset) error {
	_, err := blockchain.WriteVarstr31(w, []byte(listFileTag))
	if err != nil {
		return errors.Wrap(err, "writing list header")
	}
	_, err = asset.WriteList(w, assets)
	return err
}

func readListFile(r io.Reader) ([]*asset.Asset, error) {
	tag, _, err := blockchain.ReadVarstr31(r, maxListFileTag)
	if err != nil {
		return nil, errors.Sub(errListFile, err)
	}
	if string(tag) != listFileTag {
		return nil, errors.WithDetailf(errListFile, "header %q", tag)
	}
	return asset.ReadList(r)
}
