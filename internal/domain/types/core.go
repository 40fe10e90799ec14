package types

import "encoding/hex"

// DigestSize is the byte length of a content digest.
const DigestSize = 64

// Digest is the fixed-length BLAKE2b-512 hash of a byte sequence.
//
// It is a plain value: two digests are equal under == exactly when their
// bytes match, so a Digest can key a map directly.
type Digest [DigestSize]byte

// String returns the canonical rendering: lowercase hex, no prefix,
// 2*DigestSize characters.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Slice returns the digest as a []byte.
func (d Digest) Slice() []byte { return d[:] }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
