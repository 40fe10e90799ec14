package wallet

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"ducat/internal/crypto"
	"ducat/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrWalletExists is returned by Create when a wallet already exists
	// and force was not set.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrNoWallet is returned when an operation needs a stored wallet and
	// none has been created yet.
	ErrNoWallet = errors.New("no wallet found (run init first)")
)

// Service manages the wallet keypair using a backing store.
//
// The keypair is a single Ed25519 signing pair. Secret material stays
// inside internal/crypto: the service only ever handles the sealed form,
// the public key, and signatures.
type Service struct {
	store domain.KeypairStore
}

// New returns a wallet service backed by the given store.
func New(s domain.KeypairStore) *Service { return &Service{store: s} }

// Create generates a new keypair, seals it under the passphrase, and
// persists the record. It refuses to replace an existing wallet unless
// force is set. The store stamps the record's integrity checksum at write
// time.
func (s *Service) Create(passphrase string, force bool) (domain.KeypairRecord, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeypairRecord{}, ErrWeakPassphrase
	}
	if !force {
		_, ok, err := s.store.LoadKeypair()
		if err != nil {
			return domain.KeypairRecord{}, err
		}
		if ok {
			return domain.KeypairRecord{}, ErrWalletExists
		}
	}

	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return domain.KeypairRecord{}, err
	}
	sealed, err := kp.Seal(passphrase)
	if err != nil {
		return domain.KeypairRecord{}, err
	}

	rec := domain.KeypairRecord{
		PublicKey:   kp.Public(),
		Fingerprint: kp.Fingerprint(),
		CreatedAt:   time.Now().UTC(),
		Sealed:      sealed,
	}
	if err := s.store.SaveKeypair(rec); err != nil {
		return domain.KeypairRecord{}, err
	}
	return rec, nil
}

// Sign opens the stored keypair with the passphrase and signs message.
func (s *Service) Sign(passphrase string, message []byte) (domain.Signature, error) {
	kp, err := s.open(passphrase)
	if err != nil {
		return domain.Signature{}, err
	}
	return kp.Sign(message), nil
}

// Verify checks a detached signature. It needs no stored state and no
// passphrase; any public key and signature can be checked.
func (s *Service) Verify(publicKey, message, signature []byte) error {
	return crypto.VerifySignature(publicKey, message, signature)
}

// PublicKey returns the stored public key without opening the seal.
func (s *Service) PublicKey() (domain.PublicKey, error) {
	rec, ok, err := s.store.LoadKeypair()
	if err != nil {
		return domain.PublicKey{}, err
	}
	if !ok {
		return domain.PublicKey{}, ErrNoWallet
	}
	return rec.PublicKey, nil
}

// Fingerprint returns the stored fingerprint without opening the seal.
func (s *Service) Fingerprint() (domain.Fingerprint, error) {
	rec, ok, err := s.store.LoadKeypair()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoWallet
	}
	return rec.Fingerprint, nil
}

// open loads the record and unseals the keypair.
func (s *Service) open(passphrase string) (crypto.Keypair, error) {
	rec, ok, err := s.store.LoadKeypair()
	if err != nil {
		return crypto.Keypair{}, err
	}
	if !ok {
		return crypto.Keypair{}, ErrNoWallet
	}
	return crypto.OpenKeypair(passphrase, rec.Sealed)
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.WalletService.
var _ domain.WalletService = (*Service)(nil)
