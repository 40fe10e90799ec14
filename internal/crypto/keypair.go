package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"ducat/internal/domain"
)

// Keypair holds an Ed25519 signing keypair. The secret half stays inside
// this package: a Keypair exposes only its public key, signatures, and the
// sealed form produced by Seal.
type Keypair struct {
	signingKey ed25519.PrivateKey
	public     domain.PublicKey
}

// GenerateKeypair returns a fresh keypair drawn from the operating system's
// entropy source. It fails with ErrEntropyUnavailable rather than fall back
// to anything weaker.
func GenerateKeypair() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return newKeypair(priv, pub), nil
}

func newKeypair(priv ed25519.PrivateKey, pub ed25519.PublicKey) Keypair {
	kp := Keypair{signingKey: priv}
	copy(kp.public[:], pub)
	return kp
}

// Sign returns the detached signature over message. Signing is
// deterministic: the same keypair and message always produce the same
// signature. An empty message is valid.
func (k Keypair) Sign(message []byte) domain.Signature {
	var sig domain.Signature
	copy(sig[:], ed25519.Sign(k.signingKey, message))
	return sig
}

// Public returns the public half of the keypair.
func (k Keypair) Public() domain.PublicKey { return k.public }

// Fingerprint returns the short fingerprint of the public key.
func (k Keypair) Fingerprint() domain.Fingerprint {
	return Fingerprint(k.public.Slice())
}

// String identifies the keypair by fingerprint only.
func (k Keypair) String() string {
	return "Keypair(" + string(k.Fingerprint()) + ")"
}

// Format implements fmt.Formatter so that every verb, including %+v, %#v
// and numeric verbs, renders the fingerprint form. Reflection-based verbs
// would otherwise walk the struct and print the secret key bytes.
func (k Keypair) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte(k.String()))
}
