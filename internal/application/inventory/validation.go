package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

// PurchaseInput compra validada, lista para persistir.
type PurchaseInput struct {
	ProductID    string
	Quantity     int64
	PurchaseDate time.Time
}

// SaleInput venta validada, lista para pasar por el validador de stock.
type SaleInput struct {
	ProductID string
	Quantity  int64
	SaleDate  time.Time
}

// MaxMovementQuantity límite de unidades por compra o venta; mantiene los totales lejos de desbordar int64.
const MaxMovementQuantity int64 = 1_000_000_000

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ValidateCreatePurchase valida el body de una compra. now se usa si no viene fecha.
func ValidateCreatePurchase(in dto.CreatePurchaseRequest, now time.Time) (PurchaseInput, error) {
	productID, err := requireProductID(in.ProductID)
	if err != nil {
		return PurchaseInput{}, err
	}
	if err := requirePositive(in.Quantity); err != nil {
		return PurchaseInput{}, err
	}
	date, err := parseDate("purchase_date", in.PurchaseDate, now)
	if err != nil {
		return PurchaseInput{}, err
	}
	return PurchaseInput{ProductID: productID, Quantity: in.Quantity, PurchaseDate: date}, nil
}

// ValidateCreateSale valida el body de una venta. now se usa si no viene fecha.
func ValidateCreateSale(in dto.CreateSaleRequest, now time.Time) (SaleInput, error) {
	productID, err := requireProductID(in.ProductID)
	if err != nil {
		return SaleInput{}, err
	}
	if err := requirePositive(in.Quantity); err != nil {
		return SaleInput{}, err
	}
	date, err := parseDate("sale_date", in.SaleDate, now)
	if err != nil {
		return SaleInput{}, err
	}
	return SaleInput{ProductID: productID, Quantity: in.Quantity, SaleDate: date}, nil
}

func requireProductID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.NewValidationError("product_id", "es requerido")
	}
	return id, nil
}

func requirePositive(q int64) error {
	if q <= 0 {
		return domain.NewValidationError("quantity", "debe ser un entero positivo")
	}
	if q > MaxMovementQuantity {
		return domain.NewValidationError("quantity", "supera el máximo de 1000000000 unidades por movimiento")
	}
	return nil
}

func parseDate(field, raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.NewValidationError(field, "formato de fecha inválido (RFC3339 o YYYY-MM-DD)")
}
