package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/domain"
	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// CartUseCase es el motor del carrito de la terminal: acumula líneas
// candidatas, calcula el total y convierte el carrito en una venta al cobrar.
//
// Hay exactamente un carrito por terminal. Las mutaciones se serializan con un
// mutex: la cola de acciones del mostrador es una sola, y no puede haber dos
// cobros en vuelo a la vez.
type CartUseCase struct {
	mu       sync.Mutex
	items    []entity.CartItem
	products repository.ProductRepository
	checkout repository.CheckoutRepository
}

// NewCartUseCase construye el motor con el carrito vacío.
func NewCartUseCase(products repository.ProductRepository, checkout repository.CheckoutRepository) *CartUseCase {
	return &CartUseCase{products: products, checkout: checkout}
}

// AddItem agrega un producto al carrito.
//
// Los productos a granel exigen cantidad explícita (el alta en dos pasos:
// seleccionar y después pesar); sin ella se devuelve ErrQuantityRequired y el
// artículo no entra al carrito. Pieza y paquete entran con un paso por defecto
// y solo admiten unidades enteras: una cantidad fraccionaria se redondea al
// entero más cercano. Si el producto ya está en el carrito su cantidad se
// acumula; nunca se crea una línea duplicada. La cantidad mínima efectiva es
// un paso.
func (uc *CartUseCase) AddItem(productID string, quantity *decimal.Decimal) error {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return fmt.Errorf("carrito: consultar producto: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}

	step := product.SaleMode.Step()
	if product.SaleMode == entity.SaleModeBulk && quantity == nil {
		return domain.ErrQuantityRequired
	}
	qty := step
	if quantity != nil {
		qty = *quantity
	}
	// Solo granel admite fracciones; pieza y paquete avanzan en pasos enteros.
	if product.SaleMode != entity.SaleModeBulk {
		qty = qty.Round(0)
	}
	if qty.LessThan(step) {
		qty = step
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.items {
		if uc.items[i].Product.ID == productID {
			uc.items[i].Quantity = uc.items[i].Quantity.Add(qty).Round(3)
			return nil
		}
	}
	// Copia por valor del producto: ediciones posteriores al catálogo no
	// alteran la línea ya capturada.
	uc.items = append(uc.items, entity.CartItem{Product: *product, Quantity: qty.Round(3)})
	return nil
}

// UpdateQuantity ajusta la línea en ±1 paso (1 pieza/paquete, 0.1 granel).
// El piso es un paso: decrementar en el piso es no-op, nunca elimina la línea.
// No-op silencioso si el producto no está en el carrito.
func (uc *CartUseCase) UpdateQuantity(productID string, direction int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.items {
		if uc.items[i].Product.ID != productID {
			continue
		}
		step := uc.items[i].Product.SaleMode.Step()
		delta := step
		if direction < 0 {
			delta = step.Neg()
		}
		next := uc.items[i].Quantity.Add(delta)
		if next.LessThan(step) {
			next = step
		}
		uc.items[i].Quantity = next.Round(3)
		return
	}
}

// RemoveItem elimina la línea incondicionalmente; no-op si no existe.
func (uc *CartUseCase) RemoveItem(productID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.items {
		if uc.items[i].Product.ID == productID {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			return
		}
	}
}

// Items devuelve una copia de las líneas actuales.
func (uc *CartUseCase) Items() []entity.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]entity.CartItem(nil), uc.items...)
}

// Total suma salePrice × quantity sobre todas las líneas. Sin descuentos ni
// redondeos más allá de la presentación a dos decimales.
func (uc *CartUseCase) Total() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return totalOf(uc.items)
}

// Snapshot devuelve el estado del carrito con el desglose de IVA de la
// terminal (16% trasladado sobre el total; solo presentación).
func (uc *CartUseCase) Snapshot() dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	total := totalOf(uc.items)
	tax := total.Mul(decimal.NewFromFloat(0.16)).Round(2)
	return dto.CartResponse{
		Items: append([]entity.CartItem(nil), uc.items...),
		Net:   total.Sub(tax).Round(2),
		Tax:   tax,
		Total: total,
	}
}

// Checkout cierra la venta.
//
// Rechaza el carrito vacío. Para efectivo lo recibido debe cubrir el total
// (ErrInsufficientPayment si no) y el cambio es recibido−total; para tarjeta
// y crédito el recibido se fuerza al total y el cambio a 0. En éxito: crea la
// venta con id y timestamp nuevos, la anexa al libro junto con el descuento de
// stock (una sola unidad de escritura; el stock puede quedar negativo, la
// sobreventa se concilia después) y vacía el carrito.
func (uc *CartUseCase) Checkout(method entity.PaymentMethod, amountReceived decimal.Decimal) (*entity.Sale, error) {
	if !method.Valid() {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := totalOf(uc.items)
	// La compuerta de efectivo se valida bajo el mismo mutex que el cobro:
	// ninguna mutación concurrente puede colarse entre validación y cierre.
	if method == entity.PaymentCash && amountReceived.LessThan(total) {
		return nil, domain.ErrInsufficientPayment
	}
	received := amountReceived
	change := decimal.Zero
	if method == entity.PaymentCash {
		if diff := received.Sub(total); diff.IsPositive() {
			change = diff
		}
	} else {
		received = total
	}

	// Copia profunda del carrito: las líneas guardan el producto por valor,
	// así que copiar el slice basta para congelar la instantánea.
	snapshot := append([]entity.CartItem(nil), uc.items...)

	sale := &entity.Sale{
		ID:             uuid.New().String(),
		Timestamp:      time.Now(),
		Items:          snapshot,
		Total:          total,
		PaymentMethod:  method,
		AmountReceived: received,
		Change:         change,
	}

	if err := uc.checkout.CommitSale(sale); err != nil {
		return nil, fmt.Errorf("carrito: cerrar venta: %w", err)
	}

	uc.items = nil
	return sale, nil
}

func totalOf(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
