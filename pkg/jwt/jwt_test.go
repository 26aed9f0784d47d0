package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/painel-bi/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func identity() pkgjwt.Identity {
	return pkgjwt.Identity{UserID: "u-1", CompanyID: "c-1", Username: "Maria", Role: "vendedor"}
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identity(), "painel-bi-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, identity(), id)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identity(), "painel-bi-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identity(), "painel-bi-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", identity(), "x", 60)
	assert.Error(t, err)
}

func TestTokenEnContexto(t *testing.T) {
	ctx := pkgjwt.ContextWithToken(context.Background(), "abc")
	assert.Equal(t, "abc", pkgjwt.TokenFromContext(ctx))
	assert.Equal(t, "", pkgjwt.TokenFromContext(context.Background()))
}
