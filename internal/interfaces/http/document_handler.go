package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// DocumentHandler maneja las peticiones de documentos (ventas, compras,
// traslados, devoluciones).
type DocumentHandler struct {
	docs     *usecase.DocumentUseCase
	receipts *usecase.ReceiptUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(docs *usecase.DocumentUseCase, receipts *usecase.ReceiptUseCase) *DocumentHandler {
	return &DocumentHandler{docs: docs, receipts: receipts}
}

// List godoc
// @Summary      Listar documentos del inquilino
// @Tags         docs
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        type       query  string  false  "sales | purchase | transfer | return_sales"
// @Param        limit      query  int     false  "Límite"  default(100)
// @Success      200  {object}  dto.Envelope
// @Router       /docs/{companyId} [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}
	limit, offset := pagination(c, 100)

	items, total, err := h.docs.List(c.Context(), companyID, c.Query("type"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Page(len(items), total, items))
}

// Get godoc
// @Summary      Obtener un documento
// @Tags         docs
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        docId      path  string  true  "ID del documento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /docs/{companyId}/{docId} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	item, err := h.docs.Get(c.Context(), companyID, c.Params("docId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(item))
}

// Create godoc
// @Summary      Crear documento
// @Description  Registra la venta/compra/traslado y ajusta el stock en una
// @Description  sola transacción. El número es secuencial por empresa.
// @Tags         docs
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                     true  "ID de la empresa"
// @Param        body       body  dto.CreateDocumentRequest  true  "Documento"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /docs/{companyId} [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid body"))
	}

	item, err := h.docs.Create(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// ReceiptPDF godoc
// @Summary      Recibo del documento en PDF
// @Tags         docs
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        docId      path  string  true  "ID del documento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Envelope
// @Router       /docs/{companyId}/{docId}/pdf [get]
func (h *DocumentHandler) ReceiptPDF(c *fiber.Ctx) error {
	companyID, ok := RequireCompany(c)
	if !ok {
		return nil
	}

	pdfBytes, err := h.receipts.PDF(c.Context(), companyID, c.Params("docId"))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="receipt-%s.pdf"`, c.Params("docId")))
	return c.Send(pdfBytes)
}
