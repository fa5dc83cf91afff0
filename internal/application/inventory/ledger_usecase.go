package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// LedgerUseCase arma el libro cronológico de compras y ventas de un producto
// y expone el nivel de stock agregado.
type LedgerUseCase struct {
	txRunner  TxRunner
	validator *StockValidator
	pdf       LedgerPDFGenerator
	xml       LedgerXMLExporter
}

// NewLedgerUseCase construye el caso de uso. Con pdf o xml nil ese formato responde domain.ErrNotConfigured.
func NewLedgerUseCase(txRunner TxRunner, validator *StockValidator, pdf LedgerPDFGenerator, xml LedgerXMLExporter) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, validator: validator, pdf: pdf, xml: xml}
}

// LedgerSnapshot libro + producto + stock leídos en la misma transacción.
type LedgerSnapshot struct {
	Product *entity.Product // nil si el producto no existe
	Entries []entity.LedgerEntry
	Level   entity.StockLevel
}

// Snapshot lee compras, ventas y producto en una transacción de solo lectura.
// Producto inexistente y producto sin movimientos dan el mismo resultado: libro vacío.
func (uc *LedgerUseCase) Snapshot(ctx context.Context, productID string) (*LedgerSnapshot, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.NewValidationError("product_id", "es requerido")
	}
	snap := &LedgerSnapshot{}
	err := uc.txRunner.RunReadOnly(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		purchases, err := purchaseRepo.ListByProduct(ctx, productID)
		if err != nil {
			return err
		}
		sales, err := saleRepo.ListByProduct(ctx, productID)
		if err != nil {
			return err
		}
		level, err := uc.validator.Level(ctx, purchaseRepo, saleRepo, productID)
		if err != nil {
			return err
		}
		snap.Product = product
		snap.Entries = domaininv.BuildLedger(product, purchases, sales)
		snap.Level = level
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ListLedger devuelve el libro ordenado por fecha (compras antes que ventas a igual fecha).
func (uc *LedgerUseCase) ListLedger(ctx context.Context, productID string) ([]dto.LedgerEntryResponse, error) {
	snap, err := uc.Snapshot(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		out = append(out, dto.LedgerEntryResponse{
			ID:        e.SourceID,
			Quantity:  e.Quantity,
			Kind:      e.Kind,
			EventDate: e.EventDate,
			UnitPrice: e.UnitPrice,
		})
	}
	return out, nil
}

// StockLevel devuelve los totales del producto. domain.ErrNotFound si no existe.
func (uc *LedgerUseCase) StockLevel(ctx context.Context, productID string) (*dto.StockLevelResponse, error) {
	snap, err := uc.Snapshot(ctx, productID)
	if err != nil {
		return nil, err
	}
	if snap.Product == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.StockLevelResponse{
		ProductID: snap.Level.ProductID,
		Purchased: snap.Level.Purchased,
		Sold:      snap.Level.Sold,
		Available: snap.Level.Available(),
	}, nil
}

// LedgerPDF genera el reporte PDF. Requiere que el producto exista.
func (uc *LedgerUseCase) LedgerPDF(ctx context.Context, productID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: generador PDF", domain.ErrNotConfigured)
	}
	snap, err := uc.Snapshot(ctx, productID)
	if err != nil {
		return nil, err
	}
	if snap.Product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateLedgerPDF(ctx, snap.Product, snap.Entries, snap.Level)
}

// LedgerXML exporta el libro a XML. Un producto inexistente produce un documento sin entradas.
func (uc *LedgerUseCase) LedgerXML(ctx context.Context, productID string) ([]byte, error) {
	if uc.xml == nil {
		return nil, fmt.Errorf("%w: exportador XML", domain.ErrNotConfigured)
	}
	snap, err := uc.Snapshot(ctx, productID)
	if err != nil {
		return nil, err
	}
	product := snap.Product
	if product == nil {
		product = &entity.Product{ID: strings.TrimSpace(productID)}
	}
	return uc.xml.ExportLedgerXML(product, snap.Entries)
}
