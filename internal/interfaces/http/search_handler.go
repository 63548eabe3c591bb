package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// SearchHandler maneja las búsquedas paginadas (documentos, dinero, catálogo,
// clientes). Offset y límite viajan en la ruta, como en el API legado.
type SearchHandler struct {
	search    *usecase.SearchUseCase
	products  *usecase.ProductUseCase
	customers *usecase.CustomerUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(search *usecase.SearchUseCase, products *usecase.ProductUseCase, customers *usecase.CustomerUseCase) *SearchHandler {
	return &SearchHandler{search: search, products: products, customers: customers}
}

// pathPagination lee :offset/:limit de la ruta con un límite por defecto.
func pathPagination(c *fiber.Ctx, defaultLimit int) (limit, offset int) {
	offset, _ = strconv.Atoi(c.Params("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(c.Params("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	return limit, offset
}

// Docs godoc
// @Summary      Buscar documentos (con hidratación de nombres)
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                 true  "ID de la empresa"
// @Param        offset     path  int                    true  "Offset"
// @Param        limit      path  int                    true  "Límite"
// @Param        body       body  dto.SearchDocsRequest  true  "Filtros"
// @Success      200  {object}  dto.Envelope
// @Router       /search/docs/{companyId}/{offset}/{limit} [post]
func (h *SearchHandler) Docs(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pathPagination(c, 50)

	var in dto.SearchDocsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	items, total, err := h.search.Docs(c.Context(), companyID, in, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Money godoc
// @Summary      Buscar movimientos de dinero
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                  true  "ID de la empresa"
// @Param        offset     path  int                     true  "Offset"
// @Param        limit      path  int                     true  "Límite"
// @Param        body       body  dto.SearchMoneyRequest  true  "Filtros"
// @Success      200  {object}  dto.Envelope
// @Router       /search/money/{companyId}/{offset}/{limit} [post]
func (h *SearchHandler) Money(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pathPagination(c, 50)

	var in dto.SearchMoneyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	items, total, err := h.search.Money(c.Context(), companyID, in, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Catalog godoc
// @Summary      Buscar productos
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        offset     path  int                       true  "Offset"
// @Param        limit      path  int                       true  "Límite"
// @Param        body       body  dto.SearchCatalogRequest  true  "Filtros"
// @Success      200  {object}  dto.Envelope
// @Router       /search/catalog/{companyId}/{offset}/{limit} [post]
func (h *SearchHandler) Catalog(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pathPagination(c, 50)

	var in dto.SearchCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	items, total, err := h.products.Search(c.Context(), companyID, in, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Clients godoc
// @Summary      Buscar clientes
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        offset     path  int                       true  "Offset"
// @Param        limit      path  int                       true  "Límite"
// @Param        body       body  dto.SearchClientsRequest  true  "Filtros"
// @Success      200  {object}  dto.Envelope
// @Router       /search/clients/{companyId}/{offset}/{limit} [post]
func (h *SearchHandler) Clients(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pathPagination(c, 50)

	var in dto.SearchClientsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	items, total, err := h.customers.Search(c.Context(), companyID, in, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}
