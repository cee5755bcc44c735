package store

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Hash is the keccak256 digest of an encoded value; it addresses the value
// in the store.
type Hash [32]byte

// HashOf returns keccak256(b).
func HashOf(b []byte) Hash {
	var h Hash
	d := sha3.NewLegacyKeccak256()
	d.Write(b)
	d.Sum(h[:0])
	return h
}

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// ParseHash parses 64 hex digits, with or without a 0x prefix.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if len(s) >= 2 && s[:2] == "0x" {
		s = s[2:]
	}
	if len(s) != 2*len(h) {
		return h, fmt.Errorf("store: hash must be %d hex digits, got %d", 2*len(h), len(s))
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("store: bad hash: %w", err)
	}
	return h, nil
}
