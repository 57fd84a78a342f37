// ABOUTME: Badger-backed Backend for a local, sync-free key-value directory.
// ABOUTME: Supports an in-memory mode and routes badger logs to charm log.
package kv

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"
)

// Badger wraps a badger database.
type Badger struct {
	db *badger.DB
}

var _ Backend = (*Badger)(nil)

// OpenBadger opens (or creates) a badger database in dir.
// An empty dir opens an in-memory database.
func OpenBadger(dir string, logger *log.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger.WithPrefix("badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

// Get reads a value by key.
func (b *Badger) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes a value.
func (b *Badger) Set(ctx context.Context, key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// badgerLogger adapts charm log to badger.Logger.
type badgerLogger struct {
	l *log.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{})   { b.l.Errorf(format, args...) }
func (b badgerLogger) Warningf(format string, args ...interface{}) { b.l.Warnf(format, args...) }
func (b badgerLogger) Infof(format string, args ...interface{})    { b.l.Debugf(format, args...) }
func (b badgerLogger) Debugf(format string, args ...interface{})   { b.l.Debugf(format, args...) }
