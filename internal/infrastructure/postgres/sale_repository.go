package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. Debe llamarse en la misma tx que validó el stock.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, product_id, quantity, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.ProductID, sale.Quantity, sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// SumQuantityByProduct total vendido del producto (0 si no hay ventas).
func (r *SaleRepo) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	if !isUUID(productID) {
		return 0, nil
	}
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0)::bigint FROM sales WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum sales: %w", err)
	}
	return total, nil
}

// ListByProduct lista las ventas del producto por fecha.
func (r *SaleRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error) {
	if !isUUID(productID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, quantity, sale_date, created_at
		FROM sales WHERE product_id = $1
		ORDER BY sale_date, id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
