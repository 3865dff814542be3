// Package session selección de empresa en memoria del proceso, para despliegues sin Redis.
package session

import (
	"context"
	"sync"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
)

var _ ports.SelectionStore = (*MemoryStore)(nil)

// MemoryStore mapa protegido por mutex; se pierde al reiniciar.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[userID], nil
}

func (s *MemoryStore) Set(_ context.Context, userID, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if companyID == "" {
		delete(s.byID, userID)
		return nil
	}
	s.byID[userID] = companyID
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, userID)
	return nil
}
