package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// StoreHandler maneja las peticiones de tiendas y bodegas.
type StoreHandler struct {
	stores *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(stores *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// List godoc
// @Summary      Listar tiendas del inquilino
// @Tags         stores
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	items, err := h.stores.List(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), len(items), items))
}

// Create godoc
// @Summary      Crear tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                  true  "ID de la empresa"
// @Param        body       body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /data/{companyId}/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.stores.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// Update godoc
// @Summary      Actualizar tienda (parcial)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                  true  "ID de la empresa"
// @Param        storeId    path  string                  true  "ID de la tienda"
// @Param        body       body  dto.UpdateStoreRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /data/{companyId}/stores/{storeId} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.stores.Update(c.Context(), companyID, c.Params("storeId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}
