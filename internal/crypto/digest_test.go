package crypto_test

import (
	"bytes"
	"testing"

	"ducat/internal/crypto"
)

func TestSum_EmptyInput_KnownVector(t *testing.T) {
	// Published BLAKE2b-512 digest of the empty string.
	const want = "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419" +
		"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"

	got := crypto.Sum(nil)
	if got.String() != want {
		t.Fatalf("empty digest:\n got %s\nwant %s", got, want)
	}
	if got != crypto.Sum([]byte{}) {
		t.Fatal("nil and empty slice should hash identically")
	}
}

func TestSum_Deterministic(t *testing.T) {
	msg := []byte("transfer 10 ducats to alice")
	a := crypto.Sum(msg)
	b := crypto.Sum(bytes.Clone(msg))
	if a != b {
		t.Fatalf("same input produced different digests:\n%s\n%s", a, b)
	}
}

func TestSum_DistinctInputs(t *testing.T) {
	a := crypto.Sum([]byte("transfer 10 ducats to alice"))
	b := crypto.Sum([]byte("transfer 11 ducats to alice"))
	if a == b {
		t.Fatal("distinct inputs produced the same digest")
	}

	msg := bytes.Repeat([]byte{0xAB}, 1024)
	before := crypto.Sum(msg)
	msg[512] ^= 1
	after := crypto.Sum(msg)
	if before == after {
		t.Fatal("single flipped bit did not change the digest")
	}
}
