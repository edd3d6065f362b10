// Package storagetest provides an in-memory object store for tests.
package storagetest

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/upparakash/AspireBrandApi/storage"
)

const BaseURL = "https://assets.test"

type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string

	// PutErr and DeleteErr inject failures per key when set.
	PutErr    func(key string) error
	DeleteErr func(key string) error
}

func New() *MemStore {
	return &MemStore{objects: map[string][]byte{}}
}

func (m *MemStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if m.PutErr != nil {
		if err := m.PutErr(key); err != nil {
			return "", err
		}
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return BaseURL + "/" + key, nil
}

func (m *MemStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, key)
	m.mu.Unlock()

	if m.DeleteErr != nil {
		if err := m.DeleteErr(key); err != nil {
			return err
		}
	}
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

// Seed stores an object directly and returns its URL.
func (m *MemStore) Seed(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = []byte(key)
	return BaseURL + "/" + key
}

func (m *MemStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Keys lists stored keys in sorted order.
func (m *MemStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Deleted lists every key Delete was called with, sorted.
func (m *MemStore) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]string(nil), m.deleted...)
	sort.Strings(out)
	return out
}

func (m *MemStore) Resolver() storage.KeyResolver {
	return storage.KeyResolver{PublicBaseURL: BaseURL}
}

func (m *MemStore) Janitor() *storage.Janitor {
	return storage.NewJanitor(m, m.Resolver())
}
