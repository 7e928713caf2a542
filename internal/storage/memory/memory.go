// memory - in-process реализация storage.Storage.
// Используется в env=local и в тестах; значения живут до остановки процесса.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pribylovaa/hacker-stories/internal/storage"
)

type Storage struct {
	mu    sync.RWMutex
	terms map[string]string
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{terms: make(map[string]string)}
}

func (s *Storage) Term(_ context.Context, key string) (string, error) {
	const op = "storage.memory.Term"

	s.mu.RLock()
	defer s.mu.RUnlock()

	term, ok := s.terms[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return term, nil
}

func (s *Storage) SaveTerm(_ context.Context, key, term string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.terms[key] = term
	return nil
}

// Close - no-op, нужен для соответствия storage.Storage.
func (s *Storage) Close() {}

var _ storage.Storage = (*Storage)(nil)
