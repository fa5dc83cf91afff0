package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// StockValidator decide si una venta candidata puede confirmarse.
// Solo lee (dos agregados) y no escribe; el llamador debe invocarlo dentro de la
// transacción que luego inserta la venta, con el producto ya bloqueado.
type StockValidator struct{}

// NewStockValidator construye el validador.
func NewStockValidator() *StockValidator { return &StockValidator{} }

// Level lee los totales comprados y vendidos de un producto.
func (v *StockValidator) Level(
	ctx context.Context,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	productID string,
) (entity.StockLevel, error) {
	purchased, err := purchaseRepo.SumQuantityByProduct(ctx, productID)
	if err != nil {
		return entity.StockLevel{}, err
	}
	sold, err := saleRepo.SumQuantityByProduct(ctx, productID)
	if err != nil {
		return entity.StockLevel{}, err
	}
	return entity.StockLevel{ProductID: productID, Purchased: purchased, Sold: sold}, nil
}

// ValidateSale devuelve nil si purchased >= sold + quantity, o *domain.StockExceededError.
func (v *StockValidator) ValidateSale(
	ctx context.Context,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	productID string,
	quantity int64,
) error {
	level, err := v.Level(ctx, purchaseRepo, saleRepo, productID)
	if err != nil {
		return err
	}
	return domaininv.CheckSale(level, quantity)
}
