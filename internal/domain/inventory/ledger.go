package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// BuildLedger une compras y ventas de un producto en una sola secuencia cronológica.
// La unión es disjunta (no deduplica). Orden: EventDate ascendente; a igual fecha,
// compras antes que ventas y luego SourceID ascendente.
func BuildLedger(product *entity.Product, purchases []*entity.Purchase, sales []*entity.Sale) []entity.LedgerEntry {
	price := decimal.Zero
	productID := ""
	if product != nil {
		price = product.Price
		productID = product.ID
	}

	entries := make([]entity.LedgerEntry, 0, len(purchases)+len(sales))
	for _, p := range purchases {
		entries = append(entries, entity.LedgerEntry{
			SourceID:  p.ID,
			ProductID: nonEmpty(productID, p.ProductID),
			Quantity:  p.Quantity,
			Kind:      entity.LedgerKindPurchase,
			EventDate: p.PurchaseDate,
			UnitPrice: price,
		})
	}
	for _, s := range sales {
		entries = append(entries, entity.LedgerEntry{
			SourceID:  s.ID,
			ProductID: nonEmpty(productID, s.ProductID),
			Quantity:  s.Quantity,
			Kind:      entity.LedgerKindSale,
			EventDate: s.SaleDate,
			UnitPrice: price,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.EventDate.Equal(b.EventDate) {
			return a.EventDate.Before(b.EventDate)
		}
		if a.Kind != b.Kind {
			return a.Kind == entity.LedgerKindPurchase
		}
		return a.SourceID < b.SourceID
	})
	return entries
}

// Balance recorre el libro y devuelve el stock resultante.
func Balance(entries []entity.LedgerEntry) int64 {
	var total int64
	for _, e := range entries {
		if e.Kind == entity.LedgerKindSale {
			total -= e.Quantity
			continue
		}
		total += e.Quantity
	}
	return total
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
