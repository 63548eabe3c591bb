package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// ReferenceHandler maneja cuentas, proveedores, cajas y métodos de pago.
type ReferenceHandler struct {
	accounts  *usecase.AccountUseCase
	suppliers *usecase.SupplierUseCase
	registers *usecase.RegisterUseCase
	sources   *usecase.SourceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(
	accounts *usecase.AccountUseCase,
	suppliers *usecase.SupplierUseCase,
	registers *usecase.RegisterUseCase,
	sources *usecase.SourceUseCase,
) *ReferenceHandler {
	return &ReferenceHandler{
		accounts:  accounts,
		suppliers: suppliers,
		registers: registers,
		sources:   sources,
	}
}

// ── Accounts ──────────────────────────────────────────────────────────────────

// ListAccounts godoc
// @Summary      Listar cuentas financieras
// @Tags         accounts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/accounts [get]
func (h *ReferenceHandler) ListAccounts(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	items, err := h.accounts.List(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), len(items), items))
}

// CreateAccount godoc
// @Summary      Crear cuenta financiera
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        body       body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201  {object}  dto.Envelope
// @Router       /data/{companyId}/accounts [post]
func (h *ReferenceHandler) CreateAccount(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.accounts.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// UpdateAccount godoc
// @Summary      Actualizar cuenta financiera (parcial)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        accountId  path  string                    true  "ID de la cuenta"
// @Param        body       body  dto.UpdateAccountRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/accounts/{accountId} [put]
func (h *ReferenceHandler) UpdateAccount(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.accounts.Update(c.Context(), companyID, c.Params("accountId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/suppliers [get]
func (h *ReferenceHandler) ListSuppliers(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	items, err := h.suppliers.List(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), len(items), items))
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                     true  "ID de la empresa"
// @Param        body       body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201  {object}  dto.Envelope
// @Router       /data/{companyId}/suppliers [post]
func (h *ReferenceHandler) CreateSupplier(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.suppliers.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// UpdateSupplier godoc
// @Summary      Actualizar proveedor (parcial)
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        companyId   path  string                     true  "ID de la empresa"
// @Param        supplierId  path  string                     true  "ID del proveedor"
// @Param        body        body  dto.UpdateSupplierRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/suppliers/{supplierId} [put]
func (h *ReferenceHandler) UpdateSupplier(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.suppliers.Update(c.Context(), companyID, c.Params("supplierId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// ── Registers ─────────────────────────────────────────────────────────────────

// ListRegisters godoc
// @Summary      Listar cajas registradoras
// @Tags         registers
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/registers [get]
func (h *ReferenceHandler) ListRegisters(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	items, err := h.registers.List(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), len(items), items))
}

// CreateRegister godoc
// @Summary      Crear caja registradora
// @Tags         registers
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                     true  "ID de la empresa"
// @Param        body       body  dto.CreateRegisterRequest  true  "Datos de la caja"
// @Success      201  {object}  dto.Envelope
// @Router       /data/{companyId}/registers [post]
func (h *ReferenceHandler) CreateRegister(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.registers.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// UpdateRegister godoc
// @Summary      Actualizar caja registradora (parcial)
// @Tags         registers
// @Accept       json
// @Produce      json
// @Param        companyId   path  string                     true  "ID de la empresa"
// @Param        registerId  path  string                     true  "ID de la caja"
// @Param        body        body  dto.UpdateRegisterRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/registers/{registerId} [put]
func (h *ReferenceHandler) UpdateRegister(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.UpdateRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.registers.Update(c.Context(), companyID, c.Params("registerId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// ── Money sources ─────────────────────────────────────────────────────────────

// ListSources godoc
// @Summary      Listar métodos de pago (tabla global)
// @Tags         sources
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /data/{companyId}/sources [get]
func (h *ReferenceHandler) ListSources(c *fiber.Ctx) error {
	// El guard de inquilino aplica aunque la tabla sea global: la ruta
	// sigue siendo por empresa.
	if _, ok := RequireCompany(c); !ok {
		return nil
	}

	items, err := h.sources.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), len(items), items))
}

// CreateSource godoc
// @Summary      Crear método de pago (tabla global)
// @Tags         sources
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                   true  "ID de la empresa"
// @Param        body       body  dto.CreateSourceRequest  true  "Datos del método de pago"
// @Success      201  {object}  dto.Envelope
// @Router       /data/{companyId}/sources [post]
func (h *ReferenceHandler) CreateSource(c *fiber.Ctx) error {
	if _, ok := RequireCompany(c); !ok {
		return nil
	}

	var in dto.CreateSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.sources.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}
