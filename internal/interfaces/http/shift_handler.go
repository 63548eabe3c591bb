package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
)

// ShiftHandler maneja el ciclo de vida de los turnos de caja.
type ShiftHandler struct {
	shifts *usecase.ShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(shifts *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{shifts: shifts}
}

// OpenShift godoc
// @Summary      Turno abierto de la empresa
// @Tags         shift
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /shift/{companyId} [get]
func (h *ShiftHandler) OpenShift(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	shift, err := h.shifts.OpenForClient(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(shift))
}

// Current godoc
// @Summary      Turno abierto del operador
// @Tags         shift
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Router       /shift/{companyId}/current [get]
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	shift, err := h.shifts.Current(c.Context(), companyID, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	// Sin turno abierto: data null, status true (contrato legado).
	return c.JSON(dto.OK(shift))
}

// History godoc
// @Summary      Histórico de turnos
// @Tags         shift
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "Límite"  default(50)
// @Success      200  {object}  dto.Envelope
// @Router       /shift/{companyId}/history [get]
func (h *ShiftHandler) History(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pagination(c, 50)

	items, total, err := h.shifts.History(c.Context(), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Open godoc
// @Summary      Abrir turno
// @Description  Solo puede haber un turno abierto por operador. Si ya hay
// @Description  uno, responde 400 con el turno existente en data.
// @Tags         shift
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                true  "ID de la empresa"
// @Param        body       body  dto.OpenShiftRequest  true  "Datos de apertura"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /shift/{companyId}/open [post]
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.OpenShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	shift, err := h.shifts.Open(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrShiftAlreadyOpen) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrWithData(err.Error(), shift))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(shift))
}

// Close godoc
// @Summary      Cerrar turno
// @Tags         shift
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                 true  "ID de la empresa"
// @Param        body       body  dto.CloseShiftRequest  true  "Datos de cierre"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /shift/{companyId}/close [post]
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CloseShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	shift, err := h.shifts.Close(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoOpenShift) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
		}
		return respondError(c, err)
	}
	return c.JSON(dto.OK(shift))
}
