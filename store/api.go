// Package store keeps RLP values in a byte Provider under their keccak256
// content hash.
//
// Entries are immutable: a hash always names the same bytes, so writes need no
// generations or compare-and-swap. Reads re-verify what the provider returns
// (hash, canonical encoding, size) and delete entries that fail.
package store

import (
	"context"
	"time"

	"github.com/unkn0wn-root/rlp"
	pr "github.com/unkn0wn-root/rlp/provider"
)

type SetCostFunc func(key string, raw []byte, isBulk bool, bulkCount int) int64

// Store is the content-addressed API.
type Store interface {
	Close(context.Context) error

	// Single
	Put(ctx context.Context, v rlp.Value) (Hash, error)
	PutRaw(ctx context.Context, enc []byte) (Hash, error)
	Get(ctx context.Context, h Hash) (v rlp.Value, ok bool, err error)
	GetRaw(ctx context.Context, h Hash) (enc []byte, ok bool, err error)
	Has(ctx context.Context, h Hash) (bool, error)
	Delete(ctx context.Context, h Hash) error

	// Bulk (order-agnostic return; hashes are returned in input order by PutMany)
	PutMany(ctx context.Context, vs []rlp.Value) ([]Hash, error)
	GetMany(ctx context.Context, hs []Hash) (values map[Hash]rlp.Value, missing []Hash, err error)
}

// Options tune the store.
// Only Namespace and Provider are required; others have sensible defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "blocks", "receipts"
	Provider  pr.Provider

	Logger         rlp.Logger    // if nil, rlp.NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	TTL            time.Duration // singles; 0 => no expiry
	BulkTTL        time.Duration // bulks; 0 => TTL
	MaxValueSize   int           // encoded bytes; 0 => unlimited
	MaxDepth       int           // list nesting accepted on read; 0 => rlp.DefaultMaxDepth
	ComputeSetCost SetCostFunc   // default len(raw)
	DisableBulk    bool          // default false => bulk enabled
}

func New(opts Options) (Store, error) {
	s, err := newStore(opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}
