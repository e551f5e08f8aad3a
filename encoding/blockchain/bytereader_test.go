package blockchain

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"
)

func TestByteReader(t *testing.T) {
	r := byteReader{r: reader{bytes.NewReader([]byte{1})}}
	c, err := r.ReadByte()
	if err != nil {
		t.Errorf("err = %v want nil", err)
	}
	if c != 1 {
		t.Errorf("c = %d want 1", c)
	}
	_, err = r.ReadByte()
	if err != io.EOF {
		t.Errorf("err = %v want %v", err, io.EOF)
	}
	if r.n != 1 {
		t.Errorf("n = %d want 1", r.n)
	}
}

func TestDataErrByteReader(t *testing.T) {
	r := byteReader{r: iotest.DataErrReader(bytes.NewReader([]byte{1}))}
	c, err := r.ReadByte()
	if err != nil {
		t.Errorf("err = %v want nil", err)
	}
	if c != 1 {
		t.Errorf("c = %d want 1", c)
	}
	// the EOF delivered with the last byte is held until now
	_, err = r.ReadByte()
	if err != io.EOF {
		t.Errorf("err = %v want %v", err, io.EOF)
	}
	_, err = r.ReadByte()
	if err != io.EOF {
		t.Errorf("sticky err = %v want %v", err, io.EOF)
	}
}

type reader struct{ io.Reader }
