package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// MovementHandler registra compras y ventas.
type MovementHandler struct {
	purchases *inventory.PurchaseUseCase
	sales     *inventory.SaleUseCase
	log       *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(purchases *inventory.PurchaseUseCase, sales *inventory.SaleUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{purchases: purchases, sales: sales, log: log}
}

// CreatePurchase godoc
// @Summary      Registrar compra
// @Description  Incrementa el stock disponible del producto.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "product_id, quantity (> 0), purchase_date opcional"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *MovementHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.purchases.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateSale godoc
// @Summary      Registrar venta
// @Description  Rechaza la venta si la cantidad supera el stock disponible (STOCK_EXCEEDED).
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "product_id, quantity (> 0), sale_date opcional"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "STOCK_EXCEEDED o CONCURRENCY_CONFLICT"
// @Router       /api/sales [post]
func (h *MovementHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sales.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
