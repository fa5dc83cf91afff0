package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// SumQuantityByProduct devuelve la cantidad total vendida (0 si no hay ventas).
	SumQuantityByProduct(ctx context.Context, productID string) (int64, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error)
}
