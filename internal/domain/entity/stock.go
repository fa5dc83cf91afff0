package entity

// StockLevel agrega las cantidades compradas y vendidas de un producto.
type StockLevel struct {
	ProductID string
	Purchased int64
	Sold      int64
}

// Available devuelve el stock disponible (comprado - vendido).
func (s StockLevel) Available() int64 {
	return s.Purchased - s.Sold
}
