package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra. Producto inexistente (FK) -> domain.ErrNotFound.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchases (id, product_id, quantity, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		purchase.ID, purchase.ProductID, purchase.Quantity, purchase.PurchaseDate, purchase.CreatedAt,
	)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// SumQuantityByProduct total comprado del producto (0 si no hay compras).
func (r *PurchaseRepo) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	if !isUUID(productID) {
		return 0, nil
	}
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0)::bigint FROM purchases WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum purchases: %w", err)
	}
	return total, nil
}

// ListByProduct lista las compras del producto por fecha.
func (r *PurchaseRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Purchase, error) {
	if !isUUID(productID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, quantity, purchase_date, created_at
		FROM purchases WHERE product_id = $1
		ORDER BY purchase_date, id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.PurchaseDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
