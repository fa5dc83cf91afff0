package entity

import "time"

// Purchase representa una compra (entrada de stock). Inmutable una vez creada.
type Purchase struct {
	ID           string
	ProductID    string
	Quantity     int64
	PurchaseDate time.Time
	CreatedAt    time.Time
}
