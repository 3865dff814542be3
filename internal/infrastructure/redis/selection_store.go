// Package redis guarda en Redis la empresa de trabajo elegida por cada agente.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
)

var _ ports.SelectionStore = (*SelectionStore)(nil)

const keyPrefix = "ginebra:selection:"

// SelectionStore una clave por agente con TTL; se renueva en cada Set.
type SelectionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewSelectionStore construye el almacén. ttl <= 0 deja las claves sin vencimiento.
func NewSelectionStore(client *goredis.Client, ttl time.Duration) *SelectionStore {
	if ttl < 0 {
		ttl = 0
	}
	return &SelectionStore{client: client, ttl: ttl}
}

func key(userID string) string { return keyPrefix + userID }

// Get devuelve "" si el agente no tiene selección o venció.
func (s *SelectionStore) Get(ctx context.Context, userID string) (string, error) {
	companyID, err := s.client.Get(ctx, key(userID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get selection: %w", err)
	}
	return companyID, nil
}

// Set guarda la empresa elegida. companyID vacío equivale a Clear.
func (s *SelectionStore) Set(ctx context.Context, userID, companyID string) error {
	if companyID == "" {
		return s.Clear(ctx, userID)
	}
	if err := s.client.Set(ctx, key(userID), companyID, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set selection: %w", err)
	}
	return nil
}

// Clear elimina la selección.
func (s *SelectionStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("redis clear selection: %w", err)
	}
	return nil
}

// Ping comprueba la conexión; lo usa el health check.
func (s *SelectionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
