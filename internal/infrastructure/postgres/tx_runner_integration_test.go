package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// Requiere DATABASE_URL apuntando a una base PostgreSQL desechable.
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definido; se omite la prueba de integración")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 50})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

// Crea un producto con id uuid; al terminar se borra y arrastra compras y ventas (ON DELETE CASCADE).
func createIntegrationProduct(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	now := time.Now().UTC()
	p := &entity.Product{ID: uuid.NewString(), Name: name, Price: decimal.NewFromInt(10), CreatedAt: now, UpdatedAt: now}
	repo := postgres.NewProductRepository(pool)
	require.NoError(t, repo.Create(context.Background(), p))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), p.ID) })
	return p.ID
}

func TestTxRunner_VentasConcurrentes_RespetaInvariante(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	productID := createIntegrationProduct(t, pool, "Integración concurrente")

	purchaseUC := inventory.NewPurchaseUseCase(postgres.NewProductRepository(pool), postgres.NewPurchaseRepository(pool))
	_, err := purchaseUC.Create(ctx, dto.CreatePurchaseRequest{ProductID: productID, Quantity: 50, PurchaseDate: "2024-01-01"})
	require.NoError(t, err)

	runner := postgres.NewTxRunner(pool)
	saleUC := inventory.NewSaleUseCase(runner, inventory.NewStockValidator(), logger.Nop(), 0)

	const workers = 40
	var accepted, rejected int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := saleUC.Create(ctx, dto.CreateSaleRequest{ProductID: productID, Quantity: 3})
			switch {
			case err == nil:
				atomic.AddInt64(&accepted, 1)
			case errors.Is(err, domain.ErrStockExceeded):
				atomic.AddInt64(&rejected, 1)
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	sold, err := postgres.NewSaleRepository(pool).SumQuantityByProduct(ctx, productID)
	require.NoError(t, err)
	assert.LessOrEqual(t, sold, int64(50), "vendido no puede superar lo comprado")
	assert.Equal(t, int64(16), accepted, "50/3 = 16 ventas admisibles")
	assert.Equal(t, int64(workers-16), rejected)
	assert.Equal(t, accepted*3, sold)

	ledger := inventory.NewLedgerUseCase(runner, inventory.NewStockValidator(), nil, nil)
	level, err := ledger.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), level.Purchased)
	assert.Equal(t, int64(48), level.Sold)
	assert.Equal(t, int64(2), level.Available)

	entries, err := ledger.ListLedger(ctx, productID)
	require.NoError(t, err)
	assert.Len(t, entries, 1+16)
}

func TestTxRunner_ErrorEnCallback_HaceRollback(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	productID := createIntegrationProduct(t, pool, "Integración rollback")
	runner := postgres.NewTxRunner(pool)

	boom := errors.New("fallo intencional")
	err := runner.Run(ctx, func(products repository.ProductRepository, _ repository.PurchaseRepository, sales repository.SaleRepository) error {
		if _, err := products.GetForUpdate(ctx, productID); err != nil {
			return err
		}
		sale := &entity.Sale{ID: uuid.NewString(), ProductID: productID, Quantity: 1, SaleDate: time.Now().UTC(), CreatedAt: time.Now().UTC()}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	sold, err := postgres.NewSaleRepository(pool).SumQuantityByProduct(ctx, productID)
	require.NoError(t, err)
	assert.Zero(t, sold, "la venta no debe quedar confirmada")
}

func TestProductRepo_IDNoUUID_NoEncontrado(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()

	p, err := postgres.NewProductRepository(pool).GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, p)

	sum, err := postgres.NewPurchaseRepository(pool).SumQuantityByProduct(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Zero(t, sum)
}
