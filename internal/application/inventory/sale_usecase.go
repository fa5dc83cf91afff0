package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// DefaultSaleCommitAttempts intentos de validar+confirmar ante un conflicto de concurrencia (1 reintento).
const DefaultSaleCommitAttempts = 2

// SaleUseCase registra ventas de forma transaccional: bloquea el producto (SELECT FOR UPDATE),
// valida el stock con los agregados de compras/ventas e inserta la venta en la misma transacción.
type SaleUseCase struct {
	txRunner  TxRunner
	validator *StockValidator
	log       *logger.Logger
	attempts  int
	now       func() time.Time
}

// NewSaleUseCase construye el caso de uso. attempts <= 0 usa DefaultSaleCommitAttempts.
func NewSaleUseCase(txRunner TxRunner, validator *StockValidator, log *logger.Logger, attempts int) *SaleUseCase {
	if attempts <= 0 {
		attempts = DefaultSaleCommitAttempts
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		txRunner:  txRunner,
		validator: validator,
		log:       log,
		attempts:  attempts,
		now:       time.Now,
	}
}

// Create valida la entrada y confirma la venta si no excede el stock disponible.
// Errores: *domain.ValidationError, domain.ErrNotFound, *domain.StockExceededError,
// domain.ErrConcurrencyConflict (si se agotan los reintentos).
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	input, err := ValidateCreateSale(in, uc.now())
	if err != nil {
		return nil, err
	}

	var sale *entity.Sale
	for attempt := 1; attempt <= uc.attempts; attempt++ {
		sale, err = uc.commit(ctx, input)
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			break
		}
		uc.log.Warn().
			Str("product_id", input.ProductID).
			Int("attempt", attempt).
			Msg("conflicto de concurrencia al registrar venta")
	}
	if err != nil {
		var se *domain.StockExceededError
		if errors.As(err, &se) {
			uc.log.Info().
				Str("product_id", se.ProductID).
				Int64("requested", se.Requested).
				Int64("available", se.Available).
				Msg("venta rechazada por stock insuficiente")
		}
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// commit ejecuta bloqueo + validación + inserción en una sola transacción.
func (uc *SaleUseCase) commit(ctx context.Context, input SaleInput) (*entity.Sale, error) {
	var created *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto para serializar ventas concurrentes del mismo producto
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := uc.validator.ValidateSale(ctx, purchaseRepo, saleRepo, input.ProductID, input.Quantity); err != nil {
			return err
		}
		sale := &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			SaleDate:  input.SaleDate,
			CreatedAt: uc.now().UTC(),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		SaleDate:  s.SaleDate,
		CreatedAt: s.CreatedAt,
	}
}
