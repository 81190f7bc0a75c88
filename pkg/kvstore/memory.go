package kvstore

import (
	"encoding/json"
	"sync"
)

// Memory is the in-memory Store used for tests and local development.
// Documents are kept as marshalled JSON so Get/Set have the same
// copy-on-read semantics as a real backing store.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Get(key string, into interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[key]
	if !ok {
		return ErrKeyNotFound
	}
	return json.Unmarshal(doc, into)
}

func (m *Memory) Set(key string, value interface{}) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = doc
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}
