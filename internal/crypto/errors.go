package crypto

import "errors"

var (
	// ErrMalformedPublicKey is returned when a public key has the wrong
	// length or does not decode to a curve point.
	ErrMalformedPublicKey = errors.New("malformed public key")

	// ErrMalformedSignature is returned when a signature has the wrong
	// length or a non-canonical scalar half.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrVerificationFailed is returned when well-formed inputs fail the
	// signature equation. It never wraps a malformed-input error.
	ErrVerificationFailed = errors.New("signature verification failed")

	// ErrEntropyUnavailable is returned when the operating system's
	// entropy source cannot supply random bytes. Key generation never
	// degrades to a weaker source.
	ErrEntropyUnavailable = errors.New("system entropy unavailable")

	// ErrWrongPassphrase is returned when a sealed keypair cannot be
	// opened. A wrong passphrase and tampered ciphertext are
	// indistinguishable.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keypair")
)
