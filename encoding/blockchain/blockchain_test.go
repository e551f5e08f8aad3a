package blockchain

import (
	"bytes"
	"math"
	"testing"

	"chain-shielded/errors"
)

func TestVarint31(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, math.MaxInt32}
	for _, c := range cases {
		var buf bytes.Buffer
		n, err := WriteVarint31(&buf, c)
		if err != nil {
			t.Fatalf("WriteVarint31(%d): %v", c, err)
		}
		got, n2, err := ReadVarint31(&buf)
		if err != nil {
			t.Fatalf("ReadVarint31 after writing %d: %v", c, err)
		}
		if uint64(got) != c || n2 != n {
			t.Errorf("read (%d, %d bytes) want (%d, %d bytes)", got, n2, c, n)
		}
	}

	_, err := WriteVarint31(new(bytes.Buffer), math.MaxInt32+1)
	if err != ErrRange {
		t.Errorf("err = %v want %v", err, ErrRange)
	}
}

func TestReadVarstrMax(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteVarstr31(&buf, make([]byte, 20))
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = ReadVarstr31(&buf, 10)
	if errors.Root(err) != ErrRange {
		t.Fatalf("err = %v want %v", err, ErrRange)
	}
}

func TestVarstr31(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteVarstr31(&buf, []byte("asset"))
	if err != nil {
		t.Fatal(err)
	}
	got, n, err := ReadVarstr31(&buf, 100)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "asset" || n != 6 {
		t.Errorf("got (%q, %d) want (%q, 6)", got, n, "asset")
	}
}
