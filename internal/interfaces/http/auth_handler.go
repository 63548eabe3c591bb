package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// AuthHandler maneja login, logout y estado de sesión.
type AuthHandler struct {
	auth *usecase.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(auth *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Con email y password valida contra la tabla users y emite un
// @Description  JWT. Sin credenciales responde la sesión por defecto (modo
// @Description  legado de una sola empresa).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		// El frontend legado manda el cuerpo vacío: se tolera.
		in = dto.LoginRequest{}
	}

	session, err := h.auth.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(session))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Las sesiones son stateless: no hay nada que invalidar en el servidor.
	return c.JSON(dto.Envelope{Status: true, Message: "Logged out"})
}

// Status godoc
// @Summary      Estado de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /auth/status [get]
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	resp := h.auth.Status(c.Context(), GetUserID(c), GetCompanyID(c))
	return c.JSON(dto.OK(resp))
}
