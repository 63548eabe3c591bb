package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones de clientes (compradores).
type ClientHandler struct {
	customers *usecase.CustomerUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(customers *usecase.CustomerUseCase) *ClientHandler {
	return &ClientHandler{customers: customers}
}

// List godoc
// @Summary      Listar clientes del inquilino
// @Tags         clients
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "Límite"  default(1000)
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pagination(c, 1000)

	items, total, err := h.customers.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Get godoc
// @Summary      Obtener un cliente
// @Tags         clients
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        clientId   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /data/{companyId}/clients/{clientId} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	item, err := h.customers.Get(c.Context(), companyID, c.Params("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                     true  "ID de la empresa"
// @Param        body       body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /data/{companyId}/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.customers.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// Update godoc
// @Summary      Actualizar cliente (parcial)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                     true  "ID de la empresa"
// @Param        clientId   path  string                     true  "ID del cliente"
// @Param        body       body  dto.UpdateCustomerRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /data/{companyId}/clients/{clientId} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.customers.Update(c.Context(), companyID, c.Params("clientId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}
