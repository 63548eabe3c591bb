package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/jwt"
)

// Locals keys para UserID y CompanyID en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
)

// AuthMiddleware resuelve la identidad de la petición. Con Bearer válido usa
// los claims del token; sin token (o con token inválido) cae a la identidad
// por defecto configurada, igual que el despliegue legado de una sola
// empresa. La autorización real la hace RequireCompany contra la ruta.
func AuthMiddleware(jwtSecret string, defaults config.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := defaults.DefaultUserID
		companyID := defaults.DefaultCompanyID

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token := strings.TrimSpace(parts[1])
				if uid, cid, _, err := jwt.Parse(jwtSecret, token); err == nil {
					userID = uid
					companyID = cid
				}
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalCompanyID, companyID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequireCompany compara el :companyId de la ruta con el inquilino de la
// sesión. Devuelve el inquilino y false si ya respondió el 403.
func RequireCompany(c *fiber.Ctx) (string, bool) {
	companyID := c.Params("companyId")
	if companyID == "" || companyID != GetCompanyID(c) {
		_ = c.Status(fiber.StatusForbidden).JSON(dto.Err("Access denied"))
		return "", false
	}
	return companyID, true
}

// respondError mapea errores de dominio al sobre y código HTTP legados.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("Not found"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
	case errors.Is(err, domain.ErrBadCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Invalid credentials"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("Access denied"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err(err.Error()))
	}
}

// pagination lee limit/offset de la query con un límite por defecto.
func pagination(c *fiber.Ctx, defaultLimit int) (limit, offset int) {
	limit = c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
