package dto

import (
	"github.com/shopspring/decimal"

	"github.com/antoniotech/pos-api/internal/domain/entity"
)

// AddCartItemRequest petición para agregar un producto al carrito.
// Quantity es obligatoria para productos a granel (el alta en dos pasos:
// seleccionar y después pesar); para pieza/paquete se omite y aplica un paso.
type AddCartItemRequest struct {
	ProductID string           `json:"productId"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
}

// UpdateQuantityRequest ajusta la cantidad de una línea en ±1 paso.
type UpdateQuantityRequest struct {
	Direction int `json:"direction"` // +1 incrementa, -1 decrementa
}

// CheckoutRequest petición de cobro del carrito.
type CheckoutRequest struct {
	PaymentMethod  string          `json:"paymentMethod"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
}

// CartResponse estado del carrito con el desglose de IVA que muestra la
// terminal. El desglose es solo de presentación; la venta almacena únicamente
// el total.
type CartResponse struct {
	Items []entity.CartItem `json:"items"`
	Net   decimal.Decimal   `json:"net"` // subtotal neto (84% del total)
	Tax   decimal.Decimal   `json:"tax"` // IVA trasladado (16% del total)
	Total decimal.Decimal   `json:"total"`
}
