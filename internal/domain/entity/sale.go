package entity

import "time"

// Sale representa una venta (salida de stock). Solo se persiste si el validador de stock la acepta.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int64
	SaleDate  time.Time
	CreatedAt time.Time
}
