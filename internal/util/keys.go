package util

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// SortedUnique returns a sorted copy of keys without duplicates.
func SortedUnique(keys []string) []string {
	s := slices.Clone(keys)
	slices.Sort(s)
	return slices.Compact(s)
}

// BulkKey returns a deterministic composite key for a set of member keys:
// prefix + ":" + the first 16 hex chars of sha256 over the sorted, deduplicated
// members. Order and repetition in keys do not change the result.
func BulkKey(prefix string, keys []string) string {
	sum := sha256.Sum256([]byte(strings.Join(SortedUnique(keys), ",")))
	return prefix + ":" + hex.EncodeToString(sum[:8])
}
