package asset

import (
	"io"

	"chain-shielded/encoding/blockchain"
	"chain-shielded/errors"
)

// MaxListLen bounds the number of assets ReadList accepts.
const MaxListLen = 1 << 20

// WriteList writes a varint31 count followed by
// the fixed-width encoding of each asset.
func WriteList(w io.Writer, assets []*Asset) (int64, error) {
	n, err := blockchain.WriteVarint31(w, uint64(len(assets)))
	total := int64(n)
	if err != nil {
		return total, errors.Wrap(err, "writing asset count")
	}
	for i, a := range assets {
		n, err := a.WriteTo(w)
		total += n
		if err != nil {
			return total, errors.Wrapf(err, "writing asset %d", i)
		}
	}
	return total, nil
}

// ReadList reads a list written by WriteList.
// Every asset is re-derived as it is read; the first
// failure aborts the whole list.
func ReadList(r io.Reader) ([]*Asset, error) {
	count, _, err := blockchain.ReadVarint31(r)
	if err != nil {
		return nil, errors.Sub(ErrMalformedAsset, errors.Wrap(err, "reading asset count"))
	}
	if count > MaxListLen {
		return nil, errors.WithDetailf(ErrMalformedAsset, "list of %d assets exceeds max %d", count, MaxListLen)
	}
	assets := make([]*Asset, 0, count)
	for i := uint32(0); i < count; i++ {
		a, err := Read(r)
		if err != nil {
			return nil, errors.Wrapf(err, "asset %d", i)
		}
		assets = append(assets, a)
	}
	return assets, nil
}
