package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// No guarda stock: el stock se deriva de compras y ventas registradas.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio unitario (>= 0)
	CreatedAt time.Time
	UpdatedAt time.Time
}
