package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by tests in place of the
// file-backed one. Collections round-trip through JSON so load/save
// behave exactly like the file store, including field tags.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Collection][]byte
}

// NewMemoryStore creates a memory store with every collection empty.
func NewMemoryStore() *MemoryStore {
	data := make(map[Collection][]byte)
	for _, c := range Collections() {
		data[c] = []byte("[]")
	}
	return &MemoryStore{data: data}
}

// Load decodes the whole collection into out.
func (ms *MemoryStore) Load(c Collection, out interface{}) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	raw, ok := ms.data[c]
	if !ok {
		raw = []byte("[]")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupted, c, err)
	}
	return nil
}

// Save overwrites the whole collection with records.
func (ms *MemoryStore) Save(c Collection, records interface{}) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	ms.mu.Lock()
	ms.data[c] = raw
	ms.mu.Unlock()
	return nil
}

// Corrupt replaces the persisted content of a collection with bytes
// that will not decode. Test helper for the corruption path.
func (ms *MemoryStore) Corrupt(c Collection) {
	ms.mu.Lock()
	ms.data[c] = []byte("{not json")
	ms.mu.Unlock()
}
