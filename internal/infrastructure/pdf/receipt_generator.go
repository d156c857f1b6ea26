// Package pdf implementa la representación imprimible del ticket de venta.
//
// Layout de la página:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Tienda + TICKET DE VENTA + folio    │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Importe   │
//	│  ──────────────────────────────────────────  │
//	│  TOTALES: Subtotal neto / IVA 16% / TOTAL    │
//	│  PAGO: método / recibido / cambio            │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/antoniotech/pos-api/internal/application/ports"
	"github.com/antoniotech/pos-api/internal/domain/entity"
)

// Verificación en tiempo de compilación del puerto.
var _ ports.ReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var taxRate = decimal.NewFromFloat(0.16)

// ReceiptGenerator genera el ticket PDF de una venta usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceipt genera el PDF del ticket y devuelve sus bytes.
// El desglose de IVA (16% trasladado sobre el total) es solo de presentación;
// la venta almacena únicamente el total.
func (g *ReceiptGenerator) GenerateReceipt(sale *entity.Sale, storeName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de Venta", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(sale.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(paymentRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y folio + fecha (der).
func headerRow(sale *entity.Sale, storeName string) core.Row {
	folio := strings.ToUpper(shortID(sale.ID))
	fecha := sale.Timestamp.Format("02/01/2006 15:04:05")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Sucursal Principal · Terminal #01", props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TICKET DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("#"+folio, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New(fecha, props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Artículo", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// itemRows: una fila por línea de la venta.
func itemRows(items []entity.CartItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		qty := item.Quantity.String() + " " + item.Product.Unit
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(item.Product.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New("$"+item.Product.SalePrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("$"+item.LineTotal().StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// totalsRow: subtotal neto, IVA trasladado y total a pagar.
func totalsRow(sale *entity.Sale) core.Row {
	tax := sale.Total.Mul(taxRate).Round(2)
	net := sale.Total.Sub(tax)

	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Top: top})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal neto:", 1),
			label("I.V.A. (16%):", 5),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 11,
			}),
		),
		col.New(3).Add(
			value("$"+net.StringFixed(2), 1),
			value("$"+tax.StringFixed(2), 5),
			text.New("$"+sale.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 11,
			}),
		),
	)
}

// paymentRow: método de pago, efectivo recibido y cambio entregado.
func paymentRow(sale *entity.Sale) core.Row {
	detail := fmt.Sprintf("Pago: %s   |   Recibido: $%s   |   Cambio: $%s",
		paymentLabel(sale.PaymentMethod),
		sale.AmountReceived.StringFixed(2),
		sale.Change.StringFixed(2),
	)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(detail, props.Text{Size: 8, Top: 3, Color: colorGray}),
			text.New("¡Gracias por su compra!", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 8, Align: align.Center,
			}),
		),
	)
}

// paymentLabel etiqueta en español del método de pago.
func paymentLabel(m entity.PaymentMethod) string {
	switch m {
	case entity.PaymentCash:
		return "Efectivo"
	case entity.PaymentCard:
		return "Tarjeta"
	case entity.PaymentCredit:
		return "Crédito"
	default:
		return string(m)
	}
}

// shortID primeros 9 caracteres del id (folio corto del ticket).
func shortID(id string) string {
	if len(id) > 9 {
		return id[:9]
	}
	return id
}
