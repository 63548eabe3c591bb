package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/jwt"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// Identidad por defecto del despliegue original de un solo inquilino. Se
// responde igual cuando llega un login sin credenciales.
const (
	defaultUserName   = "Олег Кицюк"
	defaultUserEmail  = "o_kytsuk@mail.ru"
	defaultUserRole   = "admin"
	defaultClientName = "Loveiska Toys"
)

// AuthUseCase sesiones: login contra la tabla users con bcrypt y emisión de
// JWT. El login sin credenciales conserva el comportamiento del despliegue
// legado (sesión por defecto, sin token).
type AuthUseCase struct {
	users repository.UserRepository
	jwt   config.JWTConfig
	auth  config.AuthConfig
	log   *logger.Logger
}

func NewAuthUseCase(users repository.UserRepository, cfg *config.Config, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: cfg.JWT, auth: cfg.Auth, log: log}
}

func (uc *AuthUseCase) defaultSession() dto.LoginResponse {
	return dto.LoginResponse{
		User: dto.AuthUser{
			ID:    uc.auth.DefaultUserID,
			Name:  defaultUserName,
			Email: defaultUserEmail,
			Role:  defaultUserRole,
		},
		Client: dto.AuthClient{
			ID:   uc.auth.DefaultCompanyID,
			Name: defaultClientName,
		},
	}
}

// Login valida credenciales y emite un token. Sin email se devuelve la
// sesión por defecto sin token.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" {
		session := uc.defaultSession()
		return &session, nil
	}

	user, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrBadCredentials
	}

	client := user.Client
	if client == "" {
		client = uc.auth.DefaultCompanyID
	}

	token, err := jwt.Generate(uc.jwt.Secret, user.ID, client, user.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user", user.ID).Str("client", client).Msg("Sesión iniciada")

	return &dto.LoginResponse{
		User: dto.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Client: dto.AuthClient{ID: client, Name: defaultClientName},
		Token:  token,
	}, nil
}

// Status devuelve la sesión asociada a la identidad resuelta por el
// middleware. Un userID desconocido cae a la identidad por defecto.
func (uc *AuthUseCase) Status(ctx context.Context, userID, companyID string) dto.StatusResponse {
	session := uc.defaultSession()
	resp := dto.StatusResponse{
		IsAuthenticated: true,
		User:            session.User,
		Client:          session.Client,
	}

	if userID != "" && userID != uc.auth.DefaultUserID {
		if user, err := uc.users.GetByID(ctx, userID); err == nil {
			resp.User = dto.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
		}
	}
	if companyID != "" {
		resp.Client.ID = companyID
	}
	return resp
}
