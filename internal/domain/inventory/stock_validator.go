package inventory

import (
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// CheckSale decide si una venta de quantity unidades es admisible para el nivel de stock dado.
// Admisible si quantity <= Purchased - Sold; si no, devuelve *domain.StockExceededError.
// Se compara contra el disponible sin sumar quantity a Sold para no desbordar int64.
func CheckSale(level entity.StockLevel, quantity int64) error {
	available := level.Available()
	if available < 0 {
		available = 0
	}
	if quantity <= available {
		return nil
	}
	return &domain.StockExceededError{
		ProductID: level.ProductID,
		Requested: quantity,
		Available: available,
		Shortfall: quantity - available,
	}
}
