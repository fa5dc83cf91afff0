package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewStore().Products())
}

func TestProduct_CrearYObtener(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "  Café 500g ", Price: decimal.RequireFromString("12.50")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Café 500g", created.Name)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.5")))
}

func TestProduct_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name requerido")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "x", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: strings.Repeat("a", 201)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre demasiado largo")
}

func TestProduct_UpdateParcial(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()
	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Té", Price: decimal.NewFromInt(3)})
	require.NoError(t, err)

	price := decimal.NewFromInt(4)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Té", updated.Name)
	assert.True(t, updated.Price.Equal(price))

	_, err = uc.Update(ctx, "nope", dto.UpdateProductRequest{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_ListYDelete(t *testing.T) {
	ctx := context.Background()
	uc := newProductUC()
	a, err := uc.Create(ctx, dto.CreateProductRequest{Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "B"})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	require.NoError(t, uc.Delete(ctx, a.ID))
	_, err = uc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, a.ID), domain.ErrNotFound)
}
