package asset

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"chain-shielded/crypto/ed25519/ecmath"
	"chain-shielded/testutil"
)

func mustDecodeHex32(t testing.TB, s string) (b [32]byte) {
	t.Helper()
	n, err := hex.Decode(b[:], []byte(s))
	if err != nil || n != 32 {
		t.Fatalf("bad hex %q", s)
	}
	return b
}

// invalidDigest returns a candidate digest, for the test owner
// and name "foo", that NewID rejects.
func invalidDigest(t testing.TB) [IDLength]byte {
	t.Helper()
	name := EncodeName("foo")
	var metadata [MetadataLength]byte
	for nonce := 0; nonce <= MaxNonce; nonce++ {
		h := hashCandidate(testutil.TestPublicAddress, &name, &metadata, uint8(nonce))
		if _, err := NewID(h); err != nil {
			return h
		}
	}
	t.Fatal("every nonce yields a valid id")
	panic("unreachable")
}

func TestNewIDInvalid(t *testing.T) {
	cases := []struct {
		name string
		b    [IDLength]byte
	}{
		{"zero", [IDLength]byte{}},
		{"identity", mustDecodeHex32(t, "0100000000000000000000000000000000000000000000000000000000000000")},
		{"noncanonical identity", mustDecodeHex32(t, "eeffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")},
		{"order 2", mustDecodeHex32(t, "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")},
		{"hash candidate", invalidDigest(t)},
	}
	for _, c := range cases {
		_, err := NewID(c.b)
		if err != ErrInvalidID {
			t.Errorf("%s: NewID err = %v, want %v", c.name, err, ErrInvalidID)
		}
	}
}

func TestNewIDGenerators(t *testing.T) {
	a, err := New(testutil.TestPublicAddress, "foo", "")
	if err != nil {
		testutil.FatalErr(t, err)
	}
	id, err := NewID(a.ID().Byte32())
	if err != nil {
		testutil.FatalErr(t, err)
	}

	gen := id.AssetGenerator()
	if gen.Encode() != id.Byte32() {
		t.Errorf("asset generator %s does not encode to id %s", gen.String(), id.String())
	}

	vcg := id.ValueCommitmentGenerator()
	var want ecmath.Point
	want.MulByCofactor(&gen)
	if !vcg.ConstTimeEqual(&want) {
		t.Errorf("value commitment generator = %s want %s", vcg.String(), want.String())
	}
	if !vcg.IsTorsionFree() || vcg.IsIdentity() {
		t.Errorf("value commitment generator %s is not a subgroup generator", vcg.String())
	}
	if vcg.ConstTimeEqual(&gen) {
		t.Error("generators must differ")
	}
}

func TestIDText(t *testing.T) {
	a, err := New(testutil.TestPublicAddress, "foo", "bar")
	if err != nil {
		testutil.FatalErr(t, err)
	}
	text, err := a.ID().MarshalText()
	if err != nil {
		testutil.FatalErr(t, err)
	}
	if string(text) != a.ID().String() {
		t.Errorf("MarshalText = %s, String = %s", text, a.ID().String())
	}

	var got ID
	err = got.UnmarshalText(text)
	if err != nil {
		testutil.FatalErr(t, err)
	}
	if !got.Equal(a.ID()) {
		t.Errorf("UnmarshalText(%s) = %s", text, got.String())
	}

	bad := invalidDigest(t)
	cases := []string{
		"",
		"zz",
		strings.Repeat("z", 64),
		hex.EncodeToString(bad[:]),
		string(text) + "00",
	}
	for _, c := range cases {
		var id ID
		testutil.ExpectError(t, ErrInvalidID, "UnmarshalText("+c+")", func() error {
			return id.UnmarshalText([]byte(c))
		})
		if !id.IsZero() {
			t.Errorf("UnmarshalText(%s) modified its receiver", c)
		}
	}
}

func TestIDReadWrite(t *testing.T) {
	a, err := New(testutil.TestPublicAddress, "foo", "")
	if err != nil {
		testutil.FatalErr(t, err)
	}
	var buf bytes.Buffer
	n, err := a.ID().WriteTo(&buf)
	if err != nil {
		testutil.FatalErr(t, err)
	}
	testutil.ExpectEqual(t, n, int64(IDLength), "bytes written")

	id, err := ReadID(&buf)
	if err != nil {
		testutil.FatalErr(t, err)
	}
	if !id.Equal(a.ID()) {
		t.Errorf("ReadID = %s want %s", id.String(), a.ID().String())
	}

	_, err = ReadID(bytes.NewReader(make([]byte, IDLength-1)))
	if err == nil {
		t.Error("ReadID of short input succeeded")
	}
}
