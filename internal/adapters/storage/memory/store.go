// Package memory provides an in-process storage backend. Records live in a
// map for the lifetime of the process, which suits local runs and tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

// Store is a concurrency-safe map of todo records.
type Store struct {
	mu    sync.RWMutex
	items map[todo.Key]record.Item
}

// New creates an empty Store.
func New() *Store {
	return &Store{items: make(map[todo.Key]record.Item)}
}

// Name returns "memory".
func (s *Store) Name() string { return "memory" }

// Save stores a copy of item under its pK/sK attributes.
func (s *Store) Save(ctx context.Context, item record.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := todo.Key{UserID: item[record.AttrPartitionKey], TodoID: item[record.AttrSortKey]}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = maps.Clone(item)
	return nil
}

// Find returns a copy of the record stored under key.
func (s *Store) Find(ctx context.Context, key todo.Key) (record.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", record.ErrNotFound, key)
	}
	return maps.Clone(item), nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
