// ABOUTME: Key-value persistence contract shared by every storage backend.
// ABOUTME: Two operations (Get, Set) plus Close; absence is not an error.
package kv

import "context"

// Backend is the storage boundary. Get reports absence with ok=false and a
// nil error; only real read failures return an error.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
