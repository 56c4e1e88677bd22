package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarYParsearToken(t *testing.T) {
	token, err := GenerarToken(42, "superadmin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.ID)
	assert.Equal(t, "superadmin", claims.Rol)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseTokenBasura(t *testing.T) {
	_, err := ParseToken("no-es-un-jwt")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenFirmaAlterada(t *testing.T) {
	token, err := GenerarToken(1, "moderador")
	require.NoError(t, err)

	// Cambiar el encabezado invalida el token
	alterado := "X" + token[1:]
	_, err = ParseToken(alterado)
	assert.Error(t, err)
}
