// Package crypto exposes the primitives at the core of Ducat.
//
// Contents
//
//   - BLAKE2b-512 content digests (Sum)
//   - Ed25519 keypair generation, signing and standalone verification
//     (GenerateKeypair, Keypair.Sign, VerifySignature)
//   - Passphrase sealing of keypairs for storage (Keypair.Seal, OpenKeypair)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Secret key material never leaves this package in the clear. Keypair keeps
// its private half unexported, prints as a fingerprint under every fmt verb,
// and exports secrets only in the sealed form produced by Seal. Verification
// reports malformed inputs (ErrMalformedPublicKey, ErrMalformedSignature)
// separately from an honest mismatch (ErrVerificationFailed).
//
// A Keypair is immutable after construction and signing has no side effects,
// so a single Keypair is safe for concurrent use.
package crypto
