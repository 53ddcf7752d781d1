package storage

import (
	"errors"
	"sync"
)

var (
	// ErrNoRecord is returned by Load when no record exists for the key.
	ErrNoRecord = errors.New("record not found")
)

// RecordStore persists independently keyed records as serialized text.
// Collections (wishlist, orders) are stored whole under a fixed key and
// rewritten after every mutation.
type RecordStore interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// MemoryStore is used for tests and local scenarios.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, ErrNoRecord
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[key] = stored
	return nil
}
