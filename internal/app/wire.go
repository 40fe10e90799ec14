package app

import (
	"ducat/internal/domain"
	walletsvc "ducat/internal/services/wallet"
	"ducat/internal/store"
)

// Wire bundles the services for the CLI.
type Wire struct {
	Wallet domain.WalletService
}

// NewWire constructs the dependency graph from cfg. The keypair store is an
// implementation detail of the wallet service; commands never touch it
// directly.
func NewWire(cfg Config) (*Wire, error) {
	keypairStore := store.NewKeypairFileStore(cfg.Home)

	return &Wire{
		Wallet: walletsvc.New(keypairStore),
	}, nil
}
