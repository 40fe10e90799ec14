// Package store provides file-based persistence for Ducat's keypair record.
//
// It contains the concrete implementation of the domain storage interface,
// serialising the record as JSON on disk. Secret material arrives already
// sealed by internal/crypto; this package never sees a cleartext key. All
// methods are concurrency-safe via internal locking, and writes go through
// a temp file plus rename so a crash never leaves a half-written keystore.
// Stored files live under the user's configured home directory.
package store
