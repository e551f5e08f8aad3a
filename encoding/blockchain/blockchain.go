// Package blockchain provides the tools for encoding
// variable-length framing around fixed-width records.
package blockchain

import (
	"encoding/binary"
	"io"
	"math"

	"chain-shielded/errors"
)

var ErrRange = errors.New("value out of range")

// ReadVarint31 reads a uvarint from r that must fit in 31 bits.
// It returns the value and the number of bytes read.
func ReadVarint31(r io.Reader) (uint32, int, error) {
	br := &byteReader{r: r}
	val, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, br.n, err
	}
	if val > math.MaxInt32 {
		return 0, br.n, ErrRange
	}
	return uint32(val), br.n, nil
}

// ReadVarstr31 reads a varint31 length prefix and that many bytes.
// A length greater than max is rejected before anything is allocated.
func ReadVarstr31(r io.Reader, max uint32) ([]byte, int, error) {
	l, n, err := ReadVarint31(r)
	if err != nil {
		return nil, n, err
	}
	if l > max {
		return nil, n, errors.WithDetailf(ErrRange, "length %d exceeds max %d", l, max)
	}
	if l == 0 {
		return nil, n, nil
	}
	buf := make([]byte, l)
	n2, err := io.ReadFull(r, buf)
	return buf, n + n2, err
}

func WriteVarint31(w io.Writer, val uint64) (int, error) {
	if val > math.MaxInt32 {
		return 0, ErrRange
	}
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], val)
	return w.Write(buf[:n])
}

func WriteVarstr31(w io.Writer, str []byte) (int, error) {
	n, err := WriteVarint31(w, uint64(len(str)))
	if err != nil {
		return n, err
	}
	n2, err := w.Write(str)
	return n + n2, err
}

// byteReader wraps io.Reader, satisfies io.ByteReader, keeps a
// count of the number of bytes read, and has sticky errors
type byteReader struct {
	n int
	r io.Reader
	e error
}

func (r *byteReader) ReadByte() (byte, error) {
	if r.e != nil {
		return 0, r.e
	}
	var b [1]byte
	n, err := r.r.Read(b[:])
	if n > 0 {
		// If there was an error, don't return it now, to prevent the
		// caller from ignoring the valid byte. Hold onto the error and
		// return it on the next call.
		r.e = err
		r.n++
		return b[0], nil
	}
	return 0, err
}
