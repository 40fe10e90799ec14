package interfaces

import domaintypes "ducat/internal/domain/types"

// KeypairStore persists the wallet's signing keypair record.
type KeypairStore interface {
	// SaveKeypair writes the record, replacing any existing one.
	SaveKeypair(rec domaintypes.KeypairRecord) error

	// LoadKeypair reads the stored record. ok reports whether a record
	// exists; err reports read or integrity failures.
	LoadKeypair() (rec domaintypes.KeypairRecord, ok bool, err error)
}
