package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	PurchaseUC *inventory.PurchaseUseCase
	SaleUC     *inventory.SaleUseCase
	LedgerUC   *inventory.LedgerUseCase
	Logger     *logger.Logger
	JWTSecret  string // vacío = escrituras sin autenticación
}

// Router registra las rutas de la API. Lecturas públicas; escrituras detrás de AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC, log)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.Stock)
	products.Post("/", auth, productHandler.Create)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)

	// Purchases / Sales
	movementHandler := NewMovementHandler(deps.PurchaseUC, deps.SaleUC, log)
	api.Post("/purchases", auth, movementHandler.CreatePurchase)
	api.Post("/sales", auth, movementHandler.CreateSale)

	// Inventory ledger
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, log)
	invGroup := api.Group("/inventory")
	invGroup.Get("/", inventoryHandler.MissingProductID)
	invGroup.Get("/:product_id", inventoryHandler.GetLedger)
	invGroup.Get("/:product_id/pdf", inventoryHandler.GetLedgerPDF)
}
