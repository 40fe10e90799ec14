package types

import (
	"encoding/hex"
	"fmt"
)

// PublicKeySize is the byte length of an Ed25519 public key.
const PublicKeySize = 32

// SignatureSize is the byte length of an Ed25519 signature.
const SignatureSize = 64

// PublicKey is an Ed25519 signing public key. It is freely copyable; only
// public material ever lives in this type.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// String returns the key as lowercase hex.
func (p PublicKey) String() string { return hex.EncodeToString(p[:]) }

// MarshalText implements encoding.TextMarshaler using the hex form.
func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be
// exactly 2*PublicKeySize hex characters.
func (p *PublicKey) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	if len(raw) != PublicKeySize {
		return fmt.Errorf("decode public key: got %d bytes, want %d", len(raw), PublicKeySize)
	}
	copy(p[:], raw)
	return nil
}

// Signature is a detached Ed25519 signature over a message.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// String returns the signature as lowercase hex.
func (s Signature) String() string { return hex.EncodeToString(s[:]) }
