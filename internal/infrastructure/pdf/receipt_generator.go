// Package pdf implementa la generación del recibo imprimible de un documento
// de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Documento + Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Importe                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Descuento / TOTAL / Pagado                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 33, Blue: 33}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct{}

var _ usecase.ReceiptGenerator = (*ReceiptGenerator)(nil)

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(doc *entity.Document, storeName string, lines []usecase.ReceiptLine) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo #%d", doc.Number), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq), número y fecha del documento (der).
func headerRow(doc *entity.Document, storeName string) core.Row {
	fecha := time.Unix(doc.Date, 0).Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(storeName, "Punto de venta"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(docTypeLabel(doc.Type), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("N° %d", doc.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 6, align.Left),
		h("P.Unit.", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableLineRows: una fila por línea del documento.
func tableLineRows(lines []usecase.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Qty.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.Sum.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalsRows: descuento (si aplica), total y pagado.
func totalsRows(doc *entity.Document) []core.Row {
	label := func(name, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(name, props.Text{
				Style: style, Size: size, Align: align.Right, Color: colorGray,
			})),
			col.New(2).Add(text.New(value, props.Text{
				Style: style, Size: size, Align: align.Right, Color: colorPrimary,
			})),
		)
	}

	rows := make([]core.Row, 0, 3)
	if !doc.DiscountSum.IsZero() {
		rows = append(rows, label("Descuento", doc.DiscountSum.StringFixed(2), false))
	}
	rows = append(rows, label("TOTAL", doc.Sum.StringFixed(2), true))
	rows = append(rows, label("Pagado", doc.Paid.StringFixed(2), false))
	return rows
}

func docTypeLabel(docType string) string {
	switch docType {
	case entity.DocTypeSales:
		return "Recibo de venta"
	case entity.DocTypePurchase:
		return "Orden de compra"
	case entity.DocTypeTransfer:
		return "Traslado entre tiendas"
	case entity.DocTypeReturnSale:
		return "Devolución de venta"
	default:
		return "Documento"
	}
}

func nonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
