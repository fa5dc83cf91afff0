// Package pdf genera el reporte PDF del libro de inventario (kardex) de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto + ID  │  Fecha de emisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Entrada | Salida | Saldo              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Comprado / Vendido / DISPONIBLE + QR del producto  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

var _ inventory.LedgerPDFGenerator = (*MarotoLedgerGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLedgerGenerator implementa inventory.LedgerPDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct {
	now func() time.Time
}

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator {
	return &MarotoLedgerGenerator{now: time.Now}
}

// GenerateLedgerPDF genera el PDF y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(
	_ context.Context,
	product *entity.Product,
	entries []entity.LedgerEntry,
	level entity.StockLevel,
) ([]byte, error) {
	if product == nil {
		return nil, fmt.Errorf("pdf: producto requerido")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+product.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(entryRows(entries)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(product, level))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(product *entity.Product, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+product.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("LIBRO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Precio: $"+formatMoney(product.Price.StringFixed(0)), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Tipo", 3, align.Left),
		h("Entrada", 2, align.Right),
		h("Salida", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

// entryRows una fila por movimiento con saldo acumulado.
func entryRows(entries []entity.LedgerEntry) []core.Row {
	if len(entries) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(entries))
	var balance int64
	for _, e := range entries {
		in, out, kind := "", "", "Compra"
		if e.Kind == entity.LedgerKindSale {
			balance -= e.Quantity
			out = strconv.FormatInt(e.Quantity, 10)
			kind = "Venta"
		} else {
			balance += e.Quantity
			in = strconv.FormatInt(e.Quantity, 10)
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(6).Add(
			cell(e.EventDate.Format("02/01/2006 15:04"), 3, align.Left),
			cell(kind, 3, align.Left),
			cell(in, 2, align.Right),
			cell(out, 2, align.Right),
			cell(strconv.FormatInt(balance, 10), 2, align.Right),
		))
	}
	return result
}

func summaryRow(product *entity.Product, level entity.StockLevel) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	available := level.Available()
	availableColor := colorPrimary
	if available <= 0 {
		availableColor = colorRed
	}
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(product.ID, props.Rect{Percent: 90, Center: true})),
		col.New(3),
		col.New(3).Add(
			label("Comprado:"),
			label("Vendido:"),
			label("DISPONIBLE:"),
		),
		col.New(3).Add(
			value(strconv.FormatInt(level.Purchased, 10), nil),
			value(strconv.FormatInt(level.Sold, 10), nil),
			value(strconv.FormatInt(available, 10), availableColor),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
