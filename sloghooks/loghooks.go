// Package sloghooks implements store.Hooks on top of log/slog with optional
// sampling for the noisy events.
package sloghooks

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/unkn0wn-root/rlp/store"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery   uint64
	BulkRejectEvery uint64
	// Optional key rewriter, e.g. ShortKey. Keys are content hashes, so they
	// are logged as is by default.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr   atomic.Uint64
	bulkRejectCtr atomic.Uint64
}

var _ store.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	return k
}

// ShortKey keeps the keyspace and namespace of a storage key and cuts the hash
// to its first 8 hex digits: "rlp:blocks:1dcc4de8dec7..." -> "rlp:blocks:1dcc4de8".
func ShortKey(k string) string {
	i := strings.LastIndexByte(k, ':')
	if i < 0 || len(k)-i-1 <= 8 {
		return k
	}
	return k[:i+9]
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Warn("rlpstore.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) BulkRejected(ns string, requested int, reason string) {
	if h.l == nil || !sample(h.opts.BulkRejectEvery, &h.bulkRejectCtr) {
		return
	}
	h.l.Info("rlpstore.bulk_rejected",
		"ns", ns,
		"requested", requested,
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string, isBulk bool) {
	if h.l == nil {
		return
	}
	h.l.Debug("rlpstore.provider_set_rejected",
		"key", h.redact(storageKey),
		"is_bulk", isBulk)
}

func (h *Hooks) ProviderError(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("rlpstore.provider_error",
		"op", op,
		"err", err)
}
