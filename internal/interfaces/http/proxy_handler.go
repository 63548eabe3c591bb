package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// ProxyHandler replica la pasarela del API legado: el frontend manda
// /proxy?path=<ruta codificada>&timezone=<tz> y la ruta interna decide la
// operación. Se decodifica el path, se aplica el guard de inquilino y se
// despacha a los mismos casos de uso que las rutas directas.
type ProxyHandler struct {
	products  *usecase.ProductUseCase
	customers *usecase.CustomerUseCase
	stores    *usecase.StoreUseCase
	accounts  *usecase.AccountUseCase
	suppliers *usecase.SupplierUseCase
	registers *usecase.RegisterUseCase
	sources   *usecase.SourceUseCase
	docs      *usecase.DocumentUseCase
	search    *usecase.SearchUseCase
}

// NewProxyHandler construye el handler.
func NewProxyHandler(
	products *usecase.ProductUseCase,
	customers *usecase.CustomerUseCase,
	stores *usecase.StoreUseCase,
	accounts *usecase.AccountUseCase,
	suppliers *usecase.SupplierUseCase,
	registers *usecase.RegisterUseCase,
	sources *usecase.SourceUseCase,
	docs *usecase.DocumentUseCase,
	search *usecase.SearchUseCase,
) *ProxyHandler {
	return &ProxyHandler{
		products:  products,
		customers: customers,
		stores:    stores,
		accounts:  accounts,
		suppliers: suppliers,
		registers: registers,
		sources:   sources,
		docs:      docs,
		search:    search,
	}
}

// proxyPath ruta interna ya decodificada y desmenuzada.
type proxyPath struct {
	action   string // data | count | search
	company  string
	resource string
	rest     []string
	offset   int
	limit    int
}

var proxyResources = map[string]bool{
	"catalog": true, "clients": true, "stores": true, "accounts": true,
	"suppliers": true, "registers": true, "sources": true, "docs": true,
	"money": true,
}

// parseProxyPath desarma `{action}/{companyId}/{resource}[/...]` con los
// parámetros offset/limit del query string embebido. El frontend legado
// también manda `search/{resource}/{companyId}/{offset}/{limit}`, se aceptan
// ambos órdenes.
func parseProxyPath(raw string) (proxyPath, bool) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		decoded = raw
	}

	p := proxyPath{limit: 1000}

	pathPart, queryPart, hasQuery := strings.Cut(decoded, "?")
	if hasQuery {
		if vals, err := url.ParseQuery(queryPart); err == nil {
			if n, err := strconv.Atoi(vals.Get("offset")); err == nil && n >= 0 {
				p.offset = n
			}
			if n, err := strconv.Atoi(vals.Get("limit")); err == nil && n > 0 {
				p.limit = n
			}
		}
	}

	parts := []string{}
	for _, s := range strings.Split(pathPart, "/") {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) < 2 {
		return p, false
	}

	p.action = parts[0]
	p.company = parts[1]
	if len(parts) > 2 {
		p.resource = parts[2]
	}
	if proxyResources[parts[1]] && len(parts) > 2 && !proxyResources[parts[2]] {
		// Orden invertido: {action}/{resource}/{companyId}/...
		p.resource = parts[1]
		p.company = parts[2]
	}
	if len(parts) > 3 {
		p.rest = parts[3:]
	}

	// En las búsquedas el offset/limit viaja en la ruta.
	if p.action == "search" && len(p.rest) >= 2 {
		if n, err := strconv.Atoi(p.rest[0]); err == nil && n >= 0 {
			p.offset = n
		}
		if n, err := strconv.Atoi(p.rest[1]); err == nil && n > 0 {
			p.limit = n
		}
	}

	return p, true
}

// Handle godoc
// @Summary      Pasarela legada
// @Description  Decodifica path y despacha a la operación correspondiente.
// @Tags         proxy
// @Produce      json
// @Param        path      query  string  true   "Ruta interna codificada"
// @Param        timezone  query  string  false  "Zona horaria del cliente"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /proxy [get]
func (h *ProxyHandler) Handle(c *fiber.Ctx) error {
	raw := c.Query("path")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Path parameter is required"))
	}

	p, ok := parseProxyPath(raw)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid path format"))
	}
	if p.company != GetCompanyID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("Access denied to this company"))
	}

	switch p.action {
	case "data":
		return h.handleData(c, p)
	case "count":
		return h.handleCount(c, p)
	case "search":
		return h.handleSearch(c, p)
	default:
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("Unknown action"))
	}
}

func (h *ProxyHandler) handleData(c *fiber.Ctx, p proxyPath) error {
	switch p.resource {
	case "catalog":
		if len(p.rest) > 0 && p.rest[0] == "categories" {
			names, err := h.products.Categories(c.Context(), p.company)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(dto.Page(len(names), len(names), names))
		}
		items, total, err := h.products.List(c.Context(), p.company, p.limit, p.offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), total, items))

	case "clients":
		items, total, err := h.customers.List(c.Context(), p.company, p.limit, p.offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), total, items))

	case "stores":
		items, err := h.stores.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), len(items), items))

	case "accounts":
		items, err := h.accounts.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), len(items), items))

	case "suppliers":
		items, err := h.suppliers.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), len(items), items))

	case "registers":
		items, err := h.registers.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), len(items), items))

	case "sources":
		items, err := h.sources.List(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), len(items), items))

	default:
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("Resource not found"))
	}
}

func (h *ProxyHandler) handleCount(c *fiber.Ctx, p proxyPath) error {
	total := 0
	switch p.resource {
	case "catalog":
		_, n, err := h.products.List(c.Context(), p.company, 1, 0)
		if err != nil {
			return respondError(c, err)
		}
		total = n
	case "clients":
		_, n, err := h.customers.List(c.Context(), p.company, 1, 0)
		if err != nil {
			return respondError(c, err)
		}
		total = n
	case "docs":
		_, n, err := h.docs.List(c.Context(), p.company, "", 1, 0)
		if err != nil {
			return respondError(c, err)
		}
		total = n
	case "stores":
		items, err := h.stores.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		total = len(items)
	case "accounts":
		items, err := h.accounts.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		total = len(items)
	case "suppliers":
		items, err := h.suppliers.List(c.Context(), p.company)
		if err != nil {
			return respondError(c, err)
		}
		total = len(items)
	default:
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("Resource not found"))
	}

	return c.JSON(dto.OK(fiber.Map{"total": total}))
}

func (h *ProxyHandler) handleSearch(c *fiber.Ctx, p proxyPath) error {
	switch p.resource {
	case "docs":
		var in dto.SearchDocsRequest
		_ = c.BodyParser(&in)
		items, total, err := h.search.Docs(c.Context(), p.company, in, p.limit, p.offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), total, items))

	case "money":
		var in dto.SearchMoneyRequest
		_ = c.BodyParser(&in)
		items, total, err := h.search.Money(c.Context(), p.company, in, p.limit, p.offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), total, items))

	case "catalog":
		var in dto.SearchCatalogRequest
		_ = c.BodyParser(&in)
		items, total, err := h.products.Search(c.Context(), p.company, in, p.limit, p.offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), total, items))

	case "clients":
		var in dto.SearchClientsRequest
		_ = c.BodyParser(&in)
		items, total, err := h.customers.Search(c.Context(), p.company, in, p.limit, p.offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.Page(len(items), total, items))

	default:
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("Resource not found"))
	}
}
