package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"lukechampine.com/blake3"

	"ducat/internal/domain"
)

const keypairFilename = "keypair.json"

// ErrCorruptKeystore is returned when the stored record does not parse or
// its sealed bytes fail the checksum.
var ErrCorruptKeystore = errors.New("keystore is corrupt")

// KeypairFileStore persists the wallet keypair record to disk.
type KeypairFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeypairFileStore returns a KeypairFileStore rooted at dir.
func NewKeypairFileStore(dir string) *KeypairFileStore {
	return &KeypairFileStore{dir: dir}
}

// SaveKeypair writes the record, stamping a fresh checksum over the sealed
// bytes. Any existing record is replaced atomically.
func (s *KeypairFileStore) SaveKeypair(rec domain.KeypairRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Checksum = sealedChecksum(rec.Sealed)
	path := filepath.Join(s.dir, keypairFilename)
	return writeJSON(path, rec, 0o600)
}

// LoadKeypair reads the stored record. ok is false when no record exists.
// A record that does not parse, or whose sealed bytes fail the checksum,
// returns ErrCorruptKeystore before any passphrase work happens.
func (s *KeypairFileStore) LoadKeypair() (domain.KeypairRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, keypairFilename)
	b, err := readFile(path)
	if err != nil {
		return domain.KeypairRecord{}, false, err
	}
	if b == nil {
		return domain.KeypairRecord{}, false, nil
	}

	var rec domain.KeypairRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.KeypairRecord{}, false, fmt.Errorf("%w: %v", ErrCorruptKeystore, err)
	}
	if rec.Checksum != sealedChecksum(rec.Sealed) {
		return domain.KeypairRecord{}, false, fmt.Errorf("%w: sealed bytes fail checksum", ErrCorruptKeystore)
	}
	return rec, true, nil
}

// sealedChecksum returns the hex BLAKE3 checksum of the sealed bytes.
func sealedChecksum(sealed []byte) string {
	sum := blake3.Sum256(sealed)
	return hex.EncodeToString(sum[:])
}

// Compile-time assertion that KeypairFileStore implements domain.KeypairStore.
var _ domain.KeypairStore = (*KeypairFileStore)(nil)
