package storage

import (
	"encoding/json"
	"fmt"

	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// Verificación en tiempo de compilación del puerto.
var _ repository.CheckoutRepository = (*CheckoutRepository)(nil)

// CheckoutRepository escribe el cierre de una venta como unidad atómica: el
// append al libro y el descuento de stock van en la misma transacción SQLite.
// El estado en memoria solo se actualiza si la escritura tuvo éxito.
type CheckoutRepository struct {
	products *ProductRepository
	sales    *SaleRepository
	kv       *KV
}

// NewCheckoutRepository construye el coordinador sobre ambos repositorios.
func NewCheckoutRepository(products *ProductRepository, sales *SaleRepository, kv *KV) *CheckoutRepository {
	return &CheckoutRepository{products: products, sales: sales, kv: kv}
}

// CommitSale descuenta el stock de cada artículo vendido (sin piso en cero:
// el stock puede quedar negativo) y anexa la venta al libro, persistiendo
// ambas listas juntas.
func (r *CheckoutRepository) CommitSale(sale *entity.Sale) error {
	// Orden de bloqueo fijo: catálogo y después libro.
	r.products.mu.Lock()
	defer r.products.mu.Unlock()
	r.sales.mu.Lock()
	defer r.sales.mu.Unlock()

	nextProducts := cloneAll(r.products.items)
	for _, item := range sale.Items {
		for _, p := range nextProducts {
			if p.ID == item.Product.ID {
				p.Stock = p.Stock.Sub(item.Quantity)
				break
			}
		}
	}
	nextSales := append(append([]*entity.Sale(nil), r.sales.items...), sale)

	rawProducts, err := json.Marshal(nextProducts)
	if err != nil {
		return fmt.Errorf("storage: serializar catálogo: %w", err)
	}
	rawSales, err := json.Marshal(nextSales)
	if err != nil {
		return fmt.Errorf("storage: serializar ventas: %w", err)
	}

	if err := r.kv.PutAll(map[string][]byte{
		keyProducts: rawProducts,
		keySales:    rawSales,
	}); err != nil {
		return err
	}

	r.products.items = nextProducts
	r.sales.items = nextSales
	return nil
}
