package domain

import (
	interfaces "ducat/internal/domain/interfaces"
	types "ducat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Digest        = types.Digest
	Fingerprint   = types.Fingerprint
	PublicKey     = types.PublicKey
	Signature     = types.Signature
	KeypairRecord = types.KeypairRecord
)

// Size constants re-exported alongside the types they describe.
const (
	DigestSize    = types.DigestSize
	PublicKeySize = types.PublicKeySize
	SignatureSize = types.SignatureSize
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	WalletService = interfaces.WalletService
	KeypairStore  = interfaces.KeypairStore
)
