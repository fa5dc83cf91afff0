package xmlexport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/xmlexport"
)

func TestExportLedgerXML(t *testing.T) {
	product := &entity.Product{ID: "prod-1", Name: "Cable & Co", Price: decimal.RequireFromString("12.50")}
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	entries := []entity.LedgerEntry{
		{SourceID: "p1", ProductID: "prod-1", Quantity: 100, Kind: entity.LedgerKindPurchase, EventDate: day, UnitPrice: product.Price},
		{SourceID: "s1", ProductID: "prod-1", Quantity: 30, Kind: entity.LedgerKindSale, EventDate: day.AddDate(0, 0, 1), UnitPrice: product.Price},
	}

	out, err := xmlexport.NewLedgerExporter().ExportLedgerXML(product, entries)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Ledger", root.Tag)
	assert.Equal(t, "prod-1", root.SelectAttrValue("productId", ""))
	assert.Equal(t, "Cable & Co", root.SelectAttrValue("productName", ""))
	assert.Equal(t, "2", root.SelectAttrValue("entries", ""))

	items := root.SelectElements("Entry")
	require.Len(t, items, 2)
	assert.Equal(t, "purchase", items[0].SelectAttrValue("kind", ""))
	assert.Equal(t, "2025-01-10T00:00:00Z", items[0].SelectElement("EventDate").Text())
	assert.Equal(t, "sale", items[1].SelectAttrValue("kind", ""))
	assert.Equal(t, "70", items[1].SelectElement("Balance").Text())
	assert.Equal(t, "12.5", items[1].SelectElement("UnitPrice").Text())
}

func TestExportLedgerXML_SinProducto(t *testing.T) {
	out, err := xmlexport.NewLedgerExporter().ExportLedgerXML(nil, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "0", doc.Root().SelectAttrValue("entries", ""))
	assert.Empty(t, doc.Root().SelectElements("Entry"))
}
