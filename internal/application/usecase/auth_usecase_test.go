package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/config"
	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "pos-api-test",
		},
		Auth: config.AuthConfig{
			DefaultCompanyID: testClient,
			DefaultUserID:    testUser,
		},
	}
}

func newAuthFixture(users ...*entity.User) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(&fakeUserRepo{users: users}, authTestConfig(), testLogger())
}

// El login sin credenciales conserva el comportamiento del despliegue legado:
// sesión por defecto, sin token.
func TestAuthLogin_SinCredencialesDevuelveSesionPorDefecto(t *testing.T) {
	uc := newAuthFixture()

	session, err := uc.Login(context.Background(), dto.LoginRequest{})
	require.NoError(t, err)

	assert.Equal(t, testUser, session.User.ID)
	assert.Equal(t, testClient, session.Client.ID)
	assert.Empty(t, session.Token)
}

func TestAuthLogin_CredencialesValidasEmiteToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := newAuthFixture(&entity.User{
		ID:           "u1",
		Client:       testClient,
		Name:         "Cajera",
		Email:        "cajera@example.com",
		PasswordHash: string(hash),
		Role:         "cashier",
	})

	session, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "cajera@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	uid, cid, role, err := pkgjwt.Parse("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, testClient, cid)
	assert.Equal(t, "cashier", role)
}

func TestAuthLogin_PasswordIncorrecta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := newAuthFixture(&entity.User{
		ID:           "u1",
		Email:        "cajera@example.com",
		PasswordHash: string(hash),
	})

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "cajera@example.com",
		Password: "otra-cosa",
	})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

// Un email desconocido responde igual que una password mala: el error no
// revela si la cuenta existe.
func TestAuthLogin_EmailDesconocido(t *testing.T) {
	uc := newAuthFixture()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthStatus_IdentidadPorDefecto(t *testing.T) {
	uc := newAuthFixture()

	status := uc.Status(context.Background(), testUser, testClient)

	assert.True(t, status.IsAuthenticated)
	assert.Equal(t, testUser, status.User.ID)
	assert.Equal(t, testClient, status.Client.ID)
}

func TestAuthStatus_UsuarioRealResuelto(t *testing.T) {
	uc := newAuthFixture(&entity.User{
		ID:    "u1",
		Name:  "Cajera",
		Email: "cajera@example.com",
		Role:  "cashier",
	})

	status := uc.Status(context.Background(), "u1", testClient)

	assert.Equal(t, "Cajera", status.User.Name)
	assert.Equal(t, "cashier", status.User.Role)
}
