package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func TestValidateCreateSale_FechaVacia_UsaAhora(t *testing.T) {
	in, err := inventory.ValidateCreateSale(dto.CreateSaleRequest{ProductID: " A ", Quantity: 2}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "A", in.ProductID)
	assert.Equal(t, fixedNow, in.SaleDate)
}

func TestValidateCreateSale_FormatosDeFecha(t *testing.T) {
	in, err := inventory.ValidateCreateSale(dto.CreateSaleRequest{ProductID: "A", Quantity: 1, SaleDate: "2024-01-02T10:00:00-05:00"}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC), in.SaleDate)

	in, err = inventory.ValidateCreateSale(dto.CreateSaleRequest{ProductID: "A", Quantity: 1, SaleDate: "2024-01-02"}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), in.SaleDate)
}

func TestValidateCreateSale_FechaInvalida(t *testing.T) {
	_, err := inventory.ValidateCreateSale(dto.CreateSaleRequest{ProductID: "A", Quantity: 1, SaleDate: "02/01/2024"}, fixedNow)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "sale_date", ve.Field)
}

func TestValidateCreatePurchase_SinProducto(t *testing.T) {
	_, err := inventory.ValidateCreatePurchase(dto.CreatePurchaseRequest{Quantity: 1}, fixedNow)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "product_id", ve.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
