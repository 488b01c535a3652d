package cart

import (
	"context"
	"sync"
)

// MemoryStore keeps carts in process memory. Used in tests and for running
// the service without redis.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Line)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionKey string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.carts[sessionKey]
	if !ok {
		return New(), nil
	}
	return FromLines(lines), nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionKey string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionKey] = c.Lines()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionKey)
	return nil
}
