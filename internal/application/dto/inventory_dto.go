package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest body para POST /api/purchases.
// PurchaseDate acepta RFC3339 o YYYY-MM-DD; vacío = ahora.
type CreatePurchaseRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	PurchaseDate string `json:"purchase_date,omitempty"`
}

// PurchaseResponse compra registrada.
type PurchaseResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Quantity     int64     `json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSaleRequest body para POST /api/sales.
// SaleDate acepta RFC3339 o YYYY-MM-DD; vacío = ahora.
type CreateSaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	SaleDate  string `json:"sale_date,omitempty"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	SaleDate  time.Time `json:"sale_date"`
	CreatedAt time.Time `json:"created_at"`
}

// LedgerEntryResponse entrada del libro de inventario (compra o venta).
type LedgerEntryResponse struct {
	ID        string          `json:"id"`
	Quantity  int64           `json:"quantity"`
	Kind      string          `json:"kind"` // purchase | sale
	EventDate time.Time       `json:"event_date"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
