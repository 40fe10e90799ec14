package crypto

import (
	"crypto/ed25519"

	"filippo.io/edwards25519"

	"ducat/internal/domain"
)

// VerifySignature checks a detached Ed25519 signature over message. It is
// self-contained: any public key and signature can be checked, not just
// ones produced by this process.
//
// Malformed inputs are reported separately from an honest mismatch:
//
//   - ErrMalformedPublicKey: the key is not 32 bytes or does not decode to
//     a curve point.
//   - ErrMalformedSignature: the signature is not 64 bytes or its scalar
//     half is not canonical.
//   - ErrVerificationFailed: both inputs parsed but the signature does not
//     match the message under the key.
//
// A nil return means the signature is valid.
func VerifySignature(publicKey, message, signature []byte) error {
	if len(publicKey) != domain.PublicKeySize {
		return ErrMalformedPublicKey
	}
	if _, err := (&edwards25519.Point{}).SetBytes(publicKey); err != nil {
		return ErrMalformedPublicKey
	}
	if len(signature) != domain.SignatureSize {
		return ErrMalformedSignature
	}
	if _, err := (&edwards25519.Scalar{}).SetCanonicalBytes(signature[32:]); err != nil {
		return ErrMalformedSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return ErrVerificationFailed
	}
	return nil
}
