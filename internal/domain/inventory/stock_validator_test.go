package inventory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

func TestCheckSale_StockSuficiente_Acepta(t *testing.T) {
	level := entity.StockLevel{ProductID: "A", Purchased: 10, Sold: 0}
	assert.NoError(t, inventory.CheckSale(level, 6))
}

func TestCheckSale_ExactamenteElDisponible_Acepta(t *testing.T) {
	level := entity.StockLevel{ProductID: "A", Purchased: 10, Sold: 4}
	assert.NoError(t, inventory.CheckSale(level, 6), "10 >= 4+6 debe ser admisible")
}

func TestCheckSale_ExcedeStock_RetornaStockExceeded(t *testing.T) {
	level := entity.StockLevel{ProductID: "A", Purchased: 10, Sold: 6}
	err := inventory.CheckSale(level, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStockExceeded))

	var se *domain.StockExceededError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "A", se.ProductID)
	assert.Equal(t, int64(5), se.Requested)
	assert.Equal(t, int64(4), se.Available)
	assert.Equal(t, int64(1), se.Shortfall)
}

// Producto sin compras ni ventas: cualquier cantidad positiva se rechaza.
func TestCheckSale_SinCompras_Rechaza(t *testing.T) {
	level := entity.StockLevel{ProductID: "B"}
	err := inventory.CheckSale(level, 1)
	assert.ErrorIs(t, err, domain.ErrStockExceeded)
}

// Cantidad cero es trivialmente admisible en esta capa (la validación de entrada la rechaza antes).
func TestCheckSale_CantidadCero_Admisible(t *testing.T) {
	assert.NoError(t, inventory.CheckSale(entity.StockLevel{ProductID: "B"}, 0))
}

func TestStockLevel_Available(t *testing.T) {
	assert.Equal(t, int64(7), entity.StockLevel{Purchased: 12, Sold: 5}.Available())
}

// Cantidades enormes no deben desbordar la comparación contra lo vendido.
func TestCheckSale_CantidadMaxima_NoDesborda(t *testing.T) {
	level := entity.StockLevel{ProductID: "A", Purchased: 10, Sold: 1}
	err := inventory.CheckSale(level, math.MaxInt64)
	require.Error(t, err)

	var se *domain.StockExceededError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, int64(9), se.Available)
	assert.Equal(t, int64(math.MaxInt64-9), se.Shortfall)
}
