package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"ducat/internal/domain"
)

// fingerprintLen is the number of digest bytes kept in a fingerprint.
const fingerprintLen = 10

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with BLAKE2b-512 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := blake2b.Sum512(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintLen]))
}
