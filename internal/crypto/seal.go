package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed keypair format.
	sealFormatVersion = 1
)

// sealedBlob is the JSON structure holding the encrypted seed and KDF
// parameters.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParams() (N, r, p int) { return 1 << 15, 8, 1 }

// Seal encrypts the keypair's seed under passphrase and returns the sealed
// bytes. The sealed form is the only way secret material leaves the
// package; callers persist it as an opaque blob.
func (k Keypair) Seal(passphrase string) ([]byte, error) {
	seed := k.signingKey.Seed()
	defer Wipe(seed)

	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	N, r, p := scryptParams()
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], seed, salt[:])

	return json.Marshal(sealedBlob{
		V:      sealFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// OpenKeypair decrypts sealed bytes produced by Seal and reconstructs the
// keypair. A wrong passphrase and a tampered blob are indistinguishable;
// both return ErrWrongPassphrase.
func OpenKeypair(passphrase string, sealed []byte) (Keypair, error) {
	var bl sealedBlob
	if err := json.Unmarshal(sealed, &bl); err != nil {
		return Keypair{}, fmt.Errorf("parse sealed keypair: %w", err)
	}
	if bl.V > sealFormatVersion {
		return Keypair{}, fmt.Errorf("unsupported sealed keypair version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return Keypair{}, err
	}
	defer Wipe(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return Keypair{}, err
	}
	var nonce [12]byte
	seed, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return Keypair{}, ErrWrongPassphrase
	}
	defer Wipe(seed)
	if len(seed) != ed25519.SeedSize {
		return Keypair{}, ErrWrongPassphrase
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return newKeypair(priv, priv.Public().(ed25519.PublicKey)), nil
}
