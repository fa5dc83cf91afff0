package inventory

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// PurchaseUseCase registra compras (entradas de stock). Las compras no se modifican ni eliminan.
type PurchaseUseCase struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	now          func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(productRepo repository.ProductRepository, purchaseRepo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{productRepo: productRepo, purchaseRepo: purchaseRepo, now: time.Now}
}

// Create valida y persiste una compra. domain.ErrNotFound si el producto no existe.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	input, err := ValidateCreatePurchase(in, uc.now())
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	purchased, err := uc.purchaseRepo.SumQuantityByProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if purchased > math.MaxInt64-input.Quantity {
		return nil, domain.NewValidationError("quantity", "el total comprado del producto excede el máximo admitido")
	}
	purchase := &entity.Purchase{
		ID:           uuid.New().String(),
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		PurchaseDate: input.PurchaseDate,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return &dto.PurchaseResponse{
		ID:           purchase.ID,
		ProductID:    purchase.ProductID,
		Quantity:     purchase.Quantity,
		PurchaseDate: purchase.PurchaseDate,
		CreatedAt:    purchase.CreatedAt,
	}, nil
}
