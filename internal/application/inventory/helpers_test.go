package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	runner   *memory.TxRunner
	purchase *inventory.PurchaseUseCase
	sale     *inventory.SaleUseCase
	ledger   *inventory.LedgerUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	validator := inventory.NewStockValidator()
	return &fixture{
		store:    store,
		runner:   runner,
		purchase: inventory.NewPurchaseUseCase(store.Products(), store.Purchases()),
		sale:     inventory.NewSaleUseCase(runner, validator, logger.Nop(), 0),
		ledger:   inventory.NewLedgerUseCase(runner, validator, nil, nil),
	}
}

func (f *fixture) product(t *testing.T, id string, price int64) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.store.Products().Create(context.Background(), &entity.Product{
		ID: id, Name: "Producto " + id, Price: decimal.NewFromInt(price), CreatedAt: now, UpdatedAt: now,
	}))
}

func (f *fixture) buy(t *testing.T, productID string, qty int64, date string) *dto.PurchaseResponse {
	t.Helper()
	out, err := f.purchase.Create(context.Background(), dto.CreatePurchaseRequest{
		ProductID: productID, Quantity: qty, PurchaseDate: date,
	})
	require.NoError(t, err)
	return out
}
