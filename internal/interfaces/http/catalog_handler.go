package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// CatalogHandler maneja las peticiones del catálogo de productos.
type CatalogHandler struct {
	products *usecase.ProductUseCase
	stats    *usecase.StatsUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *usecase.ProductUseCase, stats *usecase.StatsUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, stats: stats}
}

// List godoc
// @Summary      Listar catálogo del inquilino
// @Tags         catalog
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "Límite"  default(1000)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /data/{companyId}/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pagination(c, 1000)

	items, total, err := h.products.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Get godoc
// @Summary      Obtener un producto
// @Tags         catalog
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /data/{companyId}/catalog/{productId} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	item, err := h.products.Get(c.Context(), companyID, c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// Create godoc
// @Summary      Crear producto
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        body       body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /data/{companyId}/catalog [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.products.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        productId  path  string                    true  "ID del producto"
// @Param        body       body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /data/{companyId}/catalog/{productId} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.products.Update(c.Context(), companyID, c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// Categories godoc
// @Summary      Listar categorías del catálogo
// @Tags         catalog
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	names, err := h.products.Categories(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(names), len(names), names))
}

// StockStats godoc
// @Summary      Agregados de inventario del inquilino
// @Tags         catalog
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/stock-stats [get]
func (h *CatalogHandler) StockStats(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	stats, err := h.stats.StockStats(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// Filtered godoc
// @Summary      Productos con problemas de inventario
// @Tags         catalog
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        filter     query  string  true   "zero_cost | negative_stock | expired"
// @Param        limit      query  int     false  "Límite"  default(100)
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /data/{companyId}/catalog/filtered [get]
func (h *CatalogHandler) Filtered(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pagination(c, 100)

	items, total, err := h.stats.FilteredProducts(c.Context(), companyID, c.Query("filter"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}
