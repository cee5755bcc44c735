// Package bigcache backs the store with allegro/bigcache. Entries share one
// global LifeWindow; per-entry TTLs are ignored, which suits immutable
// content-addressed values.
package bigcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/rlp"
	pr "github.com/unkn0wn-root/rlp/provider"
)

const DefaultLifeWindow = 10 * time.Minute

type Provider struct {
	c *bc.BigCache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	LifeWindow         time.Duration // eviction age; 0 => DefaultLifeWindow
	CleanWindow        time.Duration
	Shards             int // power of two; 0 => bigcache default
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int        // ~ memory limit; 0 = unlimited
	Logger             rlp.Logger // bigcache diagnostics at Debug; nil => silent
}

func New(cfg Config) (*Provider, error) {
	lw := cfg.LifeWindow
	if lw <= 0 {
		lw = DefaultLifeWindow
	}
	conf := bc.DefaultConfig(lw)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.Shards > 0 {
		conf.Shards = cfg.Shards
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	conf.Verbose = cfg.Logger != nil
	if cfg.Logger != nil {
		conf.Logger = printfLogger{cfg.Logger}
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	return b, err == nil, err
}

// Set copies value into the shard ring; ttl is ignored (see LifeWindow).
func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	return true, p.c.Set(key, value)
}

func (p *Provider) Del(_ context.Context, key string) error {
	if err := p.c.Delete(key); err != nil && !errors.Is(err, bc.ErrEntryNotFound) {
		return err
	}
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}

// Len is the number of live entries.
func (p *Provider) Len() int { return p.c.Len() }

type printfLogger struct{ l rlp.Logger }

func (p printfLogger) Printf(format string, v ...interface{}) {
	p.l.Debug(fmt.Sprintf("bigcache: "+format, v...), nil)
}
