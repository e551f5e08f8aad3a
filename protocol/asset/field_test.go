package asset

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeName(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"", nil},
		{"foo", []byte("foo")},
		{strings.Repeat("a", NameLength), []byte(strings.Repeat("a", NameLength))},
		{strings.Repeat("a", NameLength+8), []byte(strings.Repeat("a", NameLength))},
		// 2-byte characters; the 17th is split by truncation
		{strings.Repeat("é", 17), []byte(strings.Repeat("é", 17))[:NameLength]},
	}
	for _, c := range cases {
		got := EncodeName(c.in)
		if !bytes.Equal(got[:len(c.want)], c.want) {
			t.Errorf("EncodeName(%q) prefix = %x want %x", c.in, got[:len(c.want)], c.want)
		}
		for i := len(c.want); i < NameLength; i++ {
			if got[i] != 0 {
				t.Errorf("EncodeName(%q)[%d] = %d, want padding", c.in, i, got[i])
			}
		}
	}
}

func TestEncodeMetadata(t *testing.T) {
	long := strings.Repeat("m", MetadataLength+1)
	got := EncodeMetadata(long)
	if string(got[:]) != long[:MetadataLength] {
		t.Errorf("EncodeMetadata did not truncate to %d bytes", MetadataLength)
	}

	got = EncodeMetadata("x")
	if got[0] != 'x' || !bytes.Equal(got[1:], make([]byte, MetadataLength-1)) {
		t.Errorf("EncodeMetadata(\"x\") = %x", got)
	}
}

func TestTrimField(t *testing.T) {
	name := EncodeName("foo")
	if got := TrimField(name[:]); string(got) != "foo" {
		t.Errorf("TrimField = %q want foo", got)
	}
	empty := EncodeName("")
	if got := TrimField(empty[:]); len(got) != 0 {
		t.Errorf("TrimField of padding = %q, want empty", got)
	}
}
