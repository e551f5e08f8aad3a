package errors

import (
	"bytes"
	"io"
	"testing"
)

func TestReader(t *testing.T) {
	errX := New("x")
	tw := testReader{nil, errX, nil}
	r := NewReader(&tw)
	_, err := r.Read([]byte{0})
	if err != nil {
		t.Error("unexpected error", err)
	}
	if g := r.BytesRead(); g != 1 {
		t.Errorf("r.BytesRead() = %d want 1", g)
	}
	if len(tw) != 2 {
		t.Errorf("len(tw) = %d want 2", len(tw))
	}
	for i := 0; i < 10; i++ {
		_, err = r.Read([]byte{0})
		if err != errX {
			t.Errorf("err = %v want %v", err, errX)
		}
		if g := r.BytesRead(); g != 2 {
			t.Errorf("r.BytesRead() = %d want 2", g)
		}
		if len(tw) != 1 {
			t.Errorf("len(tw) = %d want 1", len(tw))
		}
	}
	if got := r.Err(); got != errX {
		t.Errorf("r.Err() = %v want %v", got, errX)
	}
}

func TestReaderReadFull(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3}))

	var a [2]byte
	r.ReadFull(a[:])
	if r.Err() != nil {
		t.Fatal("unexpected error", r.Err())
	}
	if a != [2]byte{1, 2} {
		t.Errorf("a = %v want [1 2]", a)
	}

	var b [2]byte
	r.ReadFull(b[:])
	if r.Err() != io.ErrUnexpectedEOF {
		t.Errorf("r.Err() = %v want %v", r.Err(), io.ErrUnexpectedEOF)
	}

	var c [1]byte
	r.ReadFull(c[:])
	if r.Err() != io.ErrUnexpectedEOF {
		t.Errorf("sticky error lost: r.Err() = %v", r.Err())
	}
	if g := r.BytesRead(); g != 3 {
		t.Errorf("r.BytesRead() = %d want 3", g)
	}

	empty := NewReader(bytes.NewReader(nil))
	empty.ReadFull(c[:])
	if empty.Err() != io.ErrUnexpectedEOF {
		t.Errorf("empty.Err() = %v want %v", empty.Err(), io.ErrUnexpectedEOF)
	}
}

// testReader returns its errors in order.
// elements of a testReader may be nil.
// if its len is 0, it returns io.EOF.
type testReader []error

func (tw *testReader) Read(p []byte) (int, error) {
	if len(*tw) == 0 {
		return 0, io.EOF
	}
	err := (*tw)[0]
	*tw = (*tw)[1:]
	return len(p), err
}
