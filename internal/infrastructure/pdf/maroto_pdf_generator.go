// Package pdf implementa la representación gráfica de la factura usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: N° Factura + Estado + Fecha                │
//	│  CLIENTE: Nombre                                    │
//	│  ─────────────────────────────────────────────────  │
//	│  TABLA: Producto | Descripción | Cant | P.Unit | Subtotal │
//	│  ─────────────────────────────────────────────────  │
//	│  TOTAL                                              │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/invoicing-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator genera el PDF de una factura con Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *dto.InvoiceResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+inv.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range inv.Items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: número de factura (izq), estado y fecha (der).
func headerRow(inv *dto.InvoiceResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 8,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+inv.Status, props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New("Fecha: "+inv.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 6,
			}),
		),
	)
}

func customerRow(inv *dto.InvoiceResponse) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Cliente: "+inv.Customer, props.Text{Size: 10, Top: 1}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(2, "Producto", align.Left),
		header(5, "Descripción", align.Left),
		header(1, "Cant", align.Right),
		header(2, "P. Unit", align.Right),
		header(2, "Subtotal", align.Right),
	)
}

func itemRow(it dto.InvoiceItemResponse) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 9, Align: a, Top: 1}))
	}
	subtotal := float64(it.Quantity) * it.UnitPrice
	return row.New(6).Add(
		cell(2, it.ProductID, align.Left),
		cell(5, it.Description, align.Left),
		cell(1, fmt.Sprintf("%d", it.Quantity), align.Right),
		cell(2, fmt.Sprintf("%.2f", it.UnitPrice), align.Right),
		cell(2, fmt.Sprintf("%.2f", subtotal), align.Right),
	)
}

func totalRow(inv *dto.InvoiceResponse) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New(fmt.Sprintf("TOTAL: %.2f", inv.Amount), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
