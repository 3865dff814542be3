package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "c1", "ejecutivo", "ginebra", 5)
	require.NoError(t, err)

	uid, cid, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "c1", cid)
	assert.Equal(t, "ejecutivo", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "", "admin", "ginebra", 5)
	require.NoError(t, err)
	_, _, _, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "", "admin", "ginebra", -1)
	require.NoError(t, err)
	_, _, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestReset_NoIntercambiableConAcceso(t *testing.T) {
	reset, err := jwt.GenerateReset(secret, "u1", "fp", "ginebra", 60)
	require.NoError(t, err)
	access, err := jwt.Generate(secret, "u1", "", "admin", "ginebra", 60)
	require.NoError(t, err)

	uid, fp, err := jwt.ParseReset(secret, reset)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "fp", fp)

	_, _, _, err = jwt.Parse(secret, reset)
	assert.Error(t, err, "un token de recuperación no autentica")
	_, _, err = jwt.ParseReset(secret, access)
	assert.Error(t, err, "un token de acceso no recupera contraseña")
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "", "admin", "ginebra", 5)
	assert.Error(t, err)
}
