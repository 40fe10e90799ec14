package crypto

import (
	"golang.org/x/crypto/blake2b"

	"ducat/internal/domain"
)

// Sum returns the BLAKE2b-512 digest of data.
//
// The digest is deterministic: equal inputs produce equal digests, byte for
// byte, across runs and platforms. Empty input is valid and hashes to the
// digest of the empty string.
func Sum(data []byte) domain.Digest {
	return domain.Digest(blake2b.Sum512(data))
}
