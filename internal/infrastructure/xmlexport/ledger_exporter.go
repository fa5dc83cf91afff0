// Package xmlexport serializa el libro de inventario a XML con etree.
package xmlexport

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

var _ inventory.LedgerXMLExporter = (*LedgerExporter)(nil)

// LedgerExporter construye documentos <Ledger> con una entrada <Entry> por movimiento.
type LedgerExporter struct{}

// NewLedgerExporter construye el exportador.
func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

// ExportLedgerXML devuelve el documento XML indentado.
// Producto nil genera un <Ledger> sin atributos de producto ni entradas.
func (e *LedgerExporter) ExportLedgerXML(product *entity.Product, entries []entity.LedgerEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Ledger")
	if product != nil {
		root.CreateAttr("productId", product.ID)
		root.CreateAttr("productName", product.Name)
		root.CreateAttr("price", product.Price.String())
	}
	root.CreateAttr("entries", strconv.Itoa(len(entries)))

	var balance int64
	for _, le := range entries {
		if le.Kind == entity.LedgerKindSale {
			balance -= le.Quantity
		} else {
			balance += le.Quantity
		}
		el := root.CreateElement("Entry")
		el.CreateAttr("id", le.SourceID)
		el.CreateAttr("kind", le.Kind)
		el.CreateElement("Quantity").SetText(strconv.FormatInt(le.Quantity, 10))
		el.CreateElement("EventDate").SetText(le.EventDate.UTC().Format(time.RFC3339))
		el.CreateElement("UnitPrice").SetText(le.UnitPrice.String())
		el.CreateElement("Balance").SetText(strconv.FormatInt(balance, 10))
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out.Bytes(), nil
}
