// Package wallet manages creation, sealing and use of the wallet keypair.
//
// It enforces passphrase policy, generates the Ed25519 signing pair, and
// persists the sealed record via the domain.KeypairStore. Signing requires
// the passphrase; reading the public key or fingerprint does not.
package wallet
