package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/rlp"
	c "github.com/unkn0wn-root/rlp/codec"
	"github.com/unkn0wn-root/rlp/internal/util"
	pr "github.com/unkn0wn-root/rlp/provider"
)

type store struct {
	ns             string
	provider       pr.Provider
	values         c.Codec[rlp.Value]
	raw            c.Codec[[]byte]
	log            rlp.Logger
	hooks          Hooks
	ttl            time.Duration
	bulkTTL        time.Duration
	maxSize        int
	computeSetCost SetCostFunc
	bulk           bool
}

func newStore(opts Options) (*store, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("store: namespace is required")
	}
	if opts.MaxValueSize < 0 || opts.MaxDepth < 0 {
		return nil, fmt.Errorf("store: negative limits")
	}

	s := &store{
		ns:       opts.Namespace,
		provider: opts.Provider,
		maxSize:  opts.MaxValueSize,
		ttl:      opts.TTL,
		bulk:     !opts.DisableBulk,
	}

	// defaults
	s.log = util.Coalesce[rlp.Logger](opts.Logger, rlp.NopLogger{})
	s.hooks = util.Coalesce[Hooks](opts.Hooks, NopHooks{})
	s.bulkTTL = util.Coalesce(opts.BulkTTL, opts.TTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(_ string, raw []byte, _ bool, _ int) int64 { return int64(len(raw)) }
	}

	dec := rlp.NewDecoder(rlp.Options{MaxDepth: opts.MaxDepth, Logger: s.log})
	s.values = c.LimitCodec[rlp.Value]{Inner: c.RLP{Decoder: dec}, MaxDecode: s.maxSize}
	s.raw = c.LimitCodec[[]byte]{Inner: c.Raw{Decoder: dec}, MaxDecode: s.maxSize}
	return s, nil
}

func (s *store) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store) Put(ctx context.Context, v rlp.Value) (Hash, error) {
	enc, err := s.values.Encode(v)
	if err != nil {
		return Hash{}, err
	}
	return s.putEncoded(ctx, enc)
}

func (s *store) PutRaw(ctx context.Context, enc []byte) (Hash, error) {
	if _, err := s.raw.Encode(enc); err != nil {
		return Hash{}, fmt.Errorf("store: put raw: %w", err)
	}
	return s.putEncoded(ctx, enc)
}

func (s *store) putEncoded(ctx context.Context, enc []byte) (Hash, error) {
	if s.maxSize > 0 && len(enc) > s.maxSize {
		return Hash{}, fmt.Errorf("store: %w: %d > %d", c.ErrTooLarge, len(enc), s.maxSize)
	}
	h := HashOf(enc)
	k := s.singleKey(h)
	if err := s.set(ctx, k, enc, false, 1, s.ttl); err != nil {
		return Hash{}, err
	}
	return h, nil
}

func (s *store) Get(ctx context.Context, h Hash) (rlp.Value, bool, error) {
	k := s.singleKey(h)
	enc, ok, err := s.load(ctx, k)
	if err != nil || !ok {
		return rlp.Value{}, false, err
	}
	if HashOf(enc) != h {
		s.heal(ctx, k, "hash_mismatch")
		return rlp.Value{}, false, nil
	}
	v, err := s.values.Decode(enc)
	if err != nil {
		s.heal(ctx, k, decodeReason(err))
		return rlp.Value{}, false, nil
	}
	return v, true, nil
}

func (s *store) GetRaw(ctx context.Context, h Hash) ([]byte, bool, error) {
	k := s.singleKey(h)
	enc, ok, err := s.load(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}
	if HashOf(enc) != h {
		s.heal(ctx, k, "hash_mismatch")
		return nil, false, nil
	}
	if _, err := s.raw.Decode(enc); err != nil {
		s.heal(ctx, k, decodeReason(err))
		return nil, false, nil
	}
	return enc, true, nil
}

func (s *store) Has(ctx context.Context, h Hash) (bool, error) {
	_, ok, err := s.GetRaw(ctx, h)
	return ok, err
}

func (s *store) Delete(ctx context.Context, h Hash) error {
	k := s.singleKey(h)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", err)
		return fmt.Errorf("store: delete %s: %w", k, err)
	}
	return nil
}

// PutMany stores every value as a single and, when bulk is enabled and there
// is more than one distinct value, one bulk entry holding the whole set as an
// RLP list.
func (s *store) PutMany(ctx context.Context, vs []rlp.Value) ([]Hash, error) {
	hs := make([]Hash, len(vs))
	members := make(map[Hash]rlp.Value, len(vs))
	for i, v := range vs {
		h, err := s.Put(ctx, v)
		if err != nil {
			return nil, err
		}
		hs[i] = h
		members[h] = v
	}
	if !s.bulk || len(members) < 2 {
		return hs, nil
	}

	uniq := sortedHashes(hs)
	items := make([]rlp.Value, len(uniq))
	for i, h := range uniq {
		items[i] = members[h]
	}
	enc := rlp.Encode(rlp.ListOf(items...))
	if err := s.set(ctx, s.bulkKey(uniq), enc, true, len(uniq), s.bulkTTL); err != nil {
		// singles are already stored; the bulk entry is only an accelerator
		s.log.Warn("bulk set failed", rlp.Fields{"ns": s.ns, "count": len(uniq), "err": err})
	}
	return hs, nil
}

func (s *store) GetMany(ctx context.Context, hs []Hash) (map[Hash]rlp.Value, []Hash, error) {
	out := make(map[Hash]rlp.Value, len(hs))
	if len(hs) == 0 {
		return out, nil, nil
	}

	uniq := sortedHashes(hs)
	if s.bulk && len(uniq) > 1 {
		bk := s.bulkKey(uniq)
		enc, ok, err := s.load(ctx, bk)
		if err == nil && ok {
			vals, reason := s.decodeBulk(enc, uniq)
			if reason == "" {
				for h, v := range vals {
					out[h] = v
				}
				return out, nil, nil
			}
			// stale or corrupt bulk; drop
			_ = s.provider.Del(ctx, bk)
			s.hooks.BulkRejected(s.ns, len(uniq), reason)
			s.log.Debug("bulk rejected", rlp.Fields{"key": bk, "reason": reason})
		}
	}

	// Fallback: try singles
	var missing []Hash
	for _, h := range uniq {
		v, ok, err := s.Get(ctx, h)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			out[h] = v
		} else {
			missing = append(missing, h)
		}
	}
	return out, missing, nil
}

// decodeBulk checks that enc is a list whose members hash to exactly want.
func (s *store) decodeBulk(enc []byte, want []Hash) (map[Hash]rlp.Value, string) {
	content, rest, err := rlp.SplitList(enc)
	if err != nil || len(rest) != 0 {
		return nil, "decode_error"
	}
	vals := make(map[Hash]rlp.Value, len(want))
	for len(content) > 0 {
		_, _, next, err := rlp.Split(content)
		if err != nil {
			return nil, "decode_error"
		}
		item := content[:len(content)-len(next)]
		content = next

		v, err := s.values.Decode(item)
		if err != nil {
			return nil, "decode_error"
		}
		vals[HashOf(item)] = v
	}
	if len(vals) != len(want) {
		return nil, "member_mismatch"
	}
	for _, h := range want {
		if _, ok := vals[h]; !ok {
			return nil, "member_mismatch"
		}
	}
	return vals, ""
}

func (s *store) load(ctx context.Context, k string) ([]byte, bool, error) {
	b, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", err)
		return nil, false, fmt.Errorf("store: get %s: %w", k, err)
	}
	return b, ok, nil
}

func (s *store) set(ctx context.Context, k string, enc []byte, isBulk bool, n int, ttl time.Duration) error {
	ok, err := s.provider.Set(ctx, k, enc, s.computeSetCost(k, enc, isBulk, n), ttl)
	if err != nil {
		s.hooks.ProviderError("set", err)
		return fmt.Errorf("store: set %s: %w", k, err)
	}
	if !ok {
		s.log.Debug("Set rejected by provider (pressure)", rlp.Fields{"key": k, "bulk": isBulk})
		s.hooks.ProviderSetRejected(k, isBulk)
	}
	return nil
}

func (s *store) heal(ctx context.Context, k, reason string) {
	_ = s.provider.Del(ctx, k)
	s.hooks.SelfHeal(k, reason)
	s.log.Warn("self-heal: deleted entry", rlp.Fields{"key": k, "reason": reason})
}

func decodeReason(err error) string {
	if errors.Is(err, c.ErrTooLarge) {
		return "too_large"
	}
	return "decode_error"
}

func (s *store) singleKey(h Hash) string {
	// isolate by namespace
	return "rlp:" + s.ns + ":" + h.String()
}

func (s *store) bulkKey(sorted []Hash) string {
	keys := make([]string, len(sorted))
	for i, h := range sorted {
		keys[i] = h.String()
	}
	return util.BulkKey("rlpbulk:"+s.ns, keys)
}

func sortedHashes(hs []Hash) []Hash {
	keys := make([]string, len(hs))
	for i, h := range hs {
		keys[i] = string(h[:])
	}
	keys = util.SortedUnique(keys)
	out := make([]Hash, len(keys))
	for i, k := range keys {
		copy(out[i][:], k)
	}
	return out
}
