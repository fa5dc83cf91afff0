package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// InventoryHandler expone el libro de inventario (kardex) por producto.
type InventoryHandler struct {
	uc  *inventory.LedgerUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// GetLedger godoc
// @Summary      Libro de inventario del producto
// @Description  Compras y ventas ordenadas por fecha; a igual fecha las compras van primero.
// @Description  Un producto sin movimientos (o inexistente) devuelve una lista vacía.
// @Tags         inventory
// @Produce      json
// @Produce      xml
// @Param        product_id  path   string  true   "ID del producto"
// @Param        format      query  string  false  "json (defecto) o xml"
// @Success      200  {array}   dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [get]
func (h *InventoryHandler) GetLedger(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if strings.EqualFold(c.Query("format"), "xml") {
		out, err := h.uc.LedgerXML(c.UserContext(), productID)
		if err != nil {
			return writeError(c, h.log, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		return c.Send(out)
	}
	out, err := h.uc.ListLedger(c.UserContext(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MissingProductID responde GET /api/inventory sin product_id.
func (h *InventoryHandler) MissingProductID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PRODUCT_ID", Message: "product_id es requerido"})
}

// GetLedgerPDF godoc
// @Summary      Reporte PDF del libro de inventario
// @Tags         inventory
// @Produce      application/pdf
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/pdf [get]
func (h *InventoryHandler) GetLedgerPDF(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	out, err := h.uc.LedgerPDF(c.UserContext(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="kardex-`+productID+`.pdf"`)
	return c.Send(out)
}
