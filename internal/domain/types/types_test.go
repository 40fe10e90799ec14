package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	domaintypes "ducat/internal/domain/types"
)

func TestDigest_String_Shape(t *testing.T) {
	var d domaintypes.Digest
	for i := range d {
		d[i] = byte(i)
	}
	s := d.String()
	if len(s) != 2*domaintypes.DigestSize {
		t.Fatalf("got %d hex chars, want %d", len(s), 2*domaintypes.DigestSize)
	}
	if s != strings.ToLower(s) {
		t.Fatalf("digest hex is not lowercase: %q", s)
	}
}

func TestDigest_MapKey(t *testing.T) {
	a := domaintypes.Digest{1}
	b := domaintypes.Digest{1}
	seen := map[domaintypes.Digest]int{a: 1}
	if seen[b] != 1 {
		t.Fatal("equal digests should collide as map keys")
	}
}

func TestPublicKey_TextRoundTrip(t *testing.T) {
	var pk domaintypes.PublicKey
	for i := range pk {
		pk[i] = byte(255 - i)
	}
	b, err := json.Marshal(pk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got domaintypes.PublicKey
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != pk {
		t.Fatalf("got %s, want %s", got, pk)
	}
}

func TestPublicKey_UnmarshalText_BadLength(t *testing.T) {
	var pk domaintypes.PublicKey
	if err := pk.UnmarshalText([]byte("abcd")); err == nil {
		t.Fatal("expected error for short hex")
	}
}
