package types

import "time"

// KeypairRecord is the on-disk description of a stored keypair. The secret
// half never appears here in the clear: Sealed carries the
// passphrase-encrypted seed and Checksum detects corruption of those bytes
// before any decryption is attempted. The store stamps Checksum when it
// writes the record; until then it is empty.
type KeypairRecord struct {
	PublicKey   PublicKey   `json:"public_key"`
	Fingerprint Fingerprint `json:"fingerprint"`
	CreatedAt   time.Time   `json:"created_at"`
	Sealed      []byte      `json:"sealed"`
	Checksum    string      `json:"checksum"`
}
