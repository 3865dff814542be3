package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "u1", "c1"))
	require.NoError(t, s.Set(ctx, "u2", "c2"))
	got, _ := s.Get(ctx, "u1")
	assert.Equal(t, "c1", got)

	require.NoError(t, s.Clear(ctx, "u1"))
	got, _ = s.Get(ctx, "u1")
	assert.Empty(t, got)
	got, _ = s.Get(ctx, "u2")
	assert.Equal(t, "c2", got)
}
