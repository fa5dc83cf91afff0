package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	// SumQuantityByProduct devuelve la cantidad total comprada (0 si no hay compras).
	SumQuantityByProduct(ctx context.Context, productID string) (int64, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Purchase, error)
}
