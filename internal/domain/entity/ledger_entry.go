package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de entrada del libro de inventario.
const (
	LedgerKindPurchase = "purchase"
	LedgerKindSale     = "sale"
)

// LedgerEntry es una vista derivada (no persistida) de una compra o una venta.
// UnitPrice es el precio del producto al momento de la consulta.
type LedgerEntry struct {
	SourceID  string
	ProductID string
	Quantity  int64
	Kind      string
	EventDate time.Time
	UnitPrice decimal.Decimal
}
