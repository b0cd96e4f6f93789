package permstore

import (
	"context"
	"sync"
)

// Storage is the persisted key-value slot holding the whole matrix as a
// single serialized blob. The slot is shared across independent
// processes with no locking: reads and writes are whole-blob operations
// and concurrent writers race with last-writer-wins semantics. Callers
// needing stronger guarantees must add their own compare-and-swap layer.
type Storage interface {
	// Get reads the blob. The second return value reports whether the
	// slot holds a value at all.
	Get(ctx context.Context) ([]byte, bool, error)

	// Set overwrites the blob.
	Set(ctx context.Context, data []byte) error
}

// MemoryStorage is a process-local Storage, used in tests and in
// single-process deployments.
type MemoryStorage struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewMemoryStorage creates an empty in-memory slot.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Get(ctx context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

func (s *MemoryStorage) Set(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}
