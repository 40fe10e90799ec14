package interfaces

import domaintypes "ducat/internal/domain/types"

// WalletService creates, inspects, and uses the wallet's signing keypair.
type WalletService interface {
	// Create generates a fresh keypair and persists it sealed under the
	// passphrase. With force it replaces an existing wallet.
	Create(passphrase string, force bool) (domaintypes.KeypairRecord, error)

	// Sign opens the stored keypair and signs message.
	Sign(passphrase string, message []byte) (domaintypes.Signature, error)

	// Verify checks a detached signature without touching any stored state.
	Verify(publicKey, message, signature []byte) error

	// PublicKey and Fingerprint read public material only; neither needs
	// the passphrase.
	PublicKey() (domaintypes.PublicKey, error)
	Fingerprint() (domaintypes.Fingerprint, error)
}
