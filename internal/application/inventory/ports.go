package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxFunc recibe repositorios atados a la transacción en curso.
type TxFunc func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Run hace Commit si fn no falla y Rollback en caso contrario.
// RunReadOnly abre una transacción de solo lectura con una foto consistente de los datos.
// Los fallos de serialización se devuelven como domain.ErrConcurrencyConflict.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
	RunReadOnly(ctx context.Context, fn TxFunc) error
}

// LedgerPDFGenerator genera la representación PDF del libro de inventario de un producto.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, product *entity.Product, entries []entity.LedgerEntry, level entity.StockLevel) ([]byte, error)
}

// LedgerXMLExporter serializa el libro de inventario de un producto a XML.
type LedgerXMLExporter interface {
	ExportLedgerXML(product *entity.Product, entries []entity.LedgerEntry) ([]byte, error)
}
