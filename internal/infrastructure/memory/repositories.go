package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	b backend
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.b.write(func(s *state) error {
		if _, ok := s.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		s.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.Product
	err := r.b.read(func(s *state) error {
		if p, ok := s.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: dentro de una tx el Store ya está bloqueado en exclusiva.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.b.write(func(s *state) error {
		if _, ok := s.products[product.ID]; !ok {
			return domain.ErrNotFound
		}
		s.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Product
	err := r.b.read(func(s *state) error {
		list = make([]*entity.Product, 0, len(s.products))
		for _, p := range s.products {
			p := p
			list = append(list, &p)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

// Delete elimina el producto y en cascada sus compras y ventas.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.b.write(func(s *state) error {
		delete(s.products, id)
		for k, p := range s.purchases {
			if p.ProductID == id {
				delete(s.purchases, k)
			}
		}
		for k, v := range s.sales {
			if v.ProductID == id {
				delete(s.sales, k)
			}
		}
		return nil
	})
}

// PurchaseRepo implementación en memoria de PurchaseRepository.
type PurchaseRepo struct {
	b backend
}

func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.b.write(func(s *state) error {
		if _, ok := s.products[purchase.ProductID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := s.purchases[purchase.ID]; ok {
			return domain.ErrDuplicate
		}
		s.purchases[purchase.ID] = *purchase
		return nil
	})
}

func (r *PurchaseRepo) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var total int64
	err := r.b.read(func(s *state) error {
		for _, p := range s.purchases {
			if p.ProductID == productID {
				total += p.Quantity
			}
		}
		return nil
	})
	return total, err
}

func (r *PurchaseRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Purchase
	err := r.b.read(func(s *state) error {
		for _, p := range s.purchases {
			if p.ProductID == productID {
				p := p
				list = append(list, &p)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PurchaseDate.Equal(list[j].PurchaseDate) {
			return list[i].PurchaseDate.Before(list[j].PurchaseDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	b backend
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.b.write(func(s *state) error {
		if _, ok := s.products[sale.ProductID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := s.sales[sale.ID]; ok {
			return domain.ErrDuplicate
		}
		s.sales[sale.ID] = *sale
		return nil
	})
}

func (r *SaleRepo) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var total int64
	err := r.b.read(func(s *state) error {
		for _, v := range s.sales {
			if v.ProductID == productID {
				total += v.Quantity
			}
		}
		return nil
	})
	return total, err
}

func (r *SaleRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Sale
	err := r.b.read(func(s *state) error {
		for _, v := range s.sales {
			if v.ProductID == productID {
				v := v
				list = append(list, &v)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].SaleDate.Equal(list[j].SaleDate) {
			return list[i].SaleDate.Before(list[j].SaleDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}
