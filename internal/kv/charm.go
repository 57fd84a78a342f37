// ABOUTME: Charm KV Backend with automatic cloud sync after each write.
// ABOUTME: Auto-sync can be turned off to batch writes into one sync at Close.
package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

// DefaultCharmHost is the Charm server used when none is configured.
const DefaultCharmHost = "charm.2389.dev"

// AutoSyncer is a Backend that pushes to a remote after every write.
type AutoSyncer interface {
	SetAutoSync(enabled bool)
}

// Charm wraps a Charm KV database.
type Charm struct {
	kv       *charmkv.KV
	autoSync bool
	mu       sync.RWMutex
}

var (
	_ Backend    = (*Charm)(nil)
	_ AutoSyncer = (*Charm)(nil)
)

// OpenCharm opens the named Charm KV database against host and pulls
// remote data once.
func OpenCharm(name, host string) (*Charm, error) {
	if host == "" {
		host = DefaultCharmHost
	}
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", host); err != nil {
		return nil, fmt.Errorf("set charm host: %w", err)
	}

	db, err := charmkv.OpenWithDefaults(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	c := &Charm{kv: db, autoSync: true}
	_ = db.Sync()
	return c, nil
}

// Get reads a value by key.
func (c *Charm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a value and syncs if auto-sync is enabled.
func (c *Charm) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if c.autoSync {
		_ = c.kv.Sync()
	}
	return nil
}

// Close closes the KV database. With auto-sync off, pending writes are
// pushed in one sync first.
func (c *Charm) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv == nil {
		return nil
	}
	var syncErr error
	if !c.autoSync {
		syncErr = c.kv.Sync()
	}
	if err := c.kv.Close(); err != nil {
		return err
	}
	if syncErr != nil {
		return fmt.Errorf("sync on close: %w", syncErr)
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (c *Charm) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Sync()
}

// SetAutoSync enables or disables the sync after every write.
func (c *Charm) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the linked account.
func (c *Charm) ID() (string, error) {
	return c.kv.Client().ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (c *Charm) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}
