// Package store provides the trade store and its local persistence.
package store

import "sync"

// DocumentStore persists a single serialized document per key. The trade
// list is stored as one JSON array under a fixed key: full-document read on
// hydration, full-document overwrite on every mutation. No delta writes.
type DocumentStore interface {
	// Load returns the document stored under key, or (nil, nil) when no
	// document exists.
	Load(key string) ([]byte, error)
	// Save overwrites the document stored under key.
	Save(key string, value []byte) error
	Close() error
}

// MemDocumentStore is an in-memory DocumentStore for tests.
type MemDocumentStore struct {
	mu   sync.Mutex
	docs map[string][]byte
	// FailSaves makes every Save return SaveErr, for exercising the
	// swallow-on-write-failure path.
	FailSaves bool
	SaveErr   error
}

// NewMemDocumentStore creates an empty in-memory document store.
func NewMemDocumentStore() *MemDocumentStore {
	return &MemDocumentStore{docs: make(map[string][]byte)}
}

// Load returns the stored document, or nil when absent.
func (m *MemDocumentStore) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), doc...), nil
}

// Save overwrites the stored document.
func (m *MemDocumentStore) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return m.SaveErr
	}
	m.docs[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (m *MemDocumentStore) Close() error {
	return nil
}
