package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
)

const testSecret = "secret-de-prueba"

func TestGenerateYParse(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "u1", "c1", "admin", "pos-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, cid, role, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "c1", cid)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "u1", "c1", "admin", "pos-api-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "u1", "c1", "admin", "pos-api-test", -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u1", "c1", "admin", "pos-api-test", 60)
	assert.Error(t, err)
}
