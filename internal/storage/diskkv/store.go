// Package diskkv implements the key-value port as one file per key.
package diskkv

import (
	"context"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

type Store struct {
	d *diskv.Diskv
}

func New(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *Store) Remove(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys, ctx.Err()
}

type ctxKey struct{}

// TransactionManager serializes read-modify-write sequences. Files are not
// rolled back when fn fails.
type TransactionManager struct {
	mu sync.Mutex
}

func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(ctxKey{}) != nil {
		return fn(ctx)
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return fn(context.WithValue(ctx, ctxKey{}, true))
}
