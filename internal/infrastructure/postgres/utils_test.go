package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ginebra-api/internal/domain"
)

func TestWhere(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	w.add("company_id::text = ?", "c1")
	w.add("(name ILIKE ? OR service ILIKE ?)", "%sol%")
	assert.Equal(t, " WHERE company_id::text = $1 AND (name ILIKE $2 OR service ILIKE $2)", w.String())
	assert.Equal(t, []any{"c1", "%sol%"}, w.args)
}

func TestPage(t *testing.T) {
	q, args := page("SELECT 1", []any{"x"}, 10, 20)
	assert.Equal(t, "SELECT 1 LIMIT $2 OFFSET $3", q)
	assert.Equal(t, []any{"x", 10, 20}, args)

	q, args = page("SELECT 1", nil, 0, 5)
	assert.Equal(t, "SELECT 1", q)
	assert.Empty(t, args)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(3))
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, "b.id, b.agent_id, b.created_at", prefixed("id, agent_id,\n\tcreated_at", "b"))
}

func TestWriteErr(t *testing.T) {
	assert.ErrorIs(t, writeErr("insert agent", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, writeErr("delete companies", &pgconn.PgError{Code: "23503"}), domain.ErrHasDependents)

	plain := errors.New("conexión cerrada")
	err := writeErr("update booking", plain)
	assert.ErrorIs(t, err, plain)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("9b2f8f0e-1c1a-4a53-9b8e-2f7f1d2c3a4b"))
	assert.False(t, validID("no-es-uuid"))
	assert.False(t, validID(""))
}
