package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago de una venta.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentCredit PaymentMethod = "credit"
)

// Valid indica si el método es uno de los aceptados por la terminal.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentCredit
}

// CartItem es una línea del carrito: un producto y su cantidad.
//
// Product se guarda por valor (copia tomada al agregar al carrito), de modo que
// ediciones posteriores al catálogo no alteran la línea ni las ventas históricas.
type CartItem struct {
	Product  Product         `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
}

// LineTotal importe de la línea: salePrice × quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.SalePrice.Mul(i.Quantity)
}

// Sale registro inmutable de una transacción completada.
//
// Items es una copia profunda del carrito al momento del cobro; la venta es la
// única fuente de verdad para los reportes históricos. Nunca se actualiza ni
// se elimina (no existe devolución ni cancelación).
type Sale struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	Items          []CartItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Change         decimal.Decimal `json:"change"`
}
