package repository

import "github.com/antoniotech/pos-api/internal/domain/entity"

// SaleRepository define el puerto del libro de ventas (append-only).
// No existe operación de actualización ni borrado: es la pista de auditoría.
type SaleRepository interface {
	Append(sale *entity.Sale) error
	All() ([]*entity.Sale, error)            // orden cronológico de registro
	Recent(n int) ([]*entity.Sale, error)    // las n más recientes, descendente
	GetByID(id string) (*entity.Sale, error) // (nil, nil) si no existe
}

// CheckoutRepository persiste el cierre de una venta como unidad atómica:
// el append al libro de ventas y el descuento de stock de cada artículo
// vendido se escriben juntos o no se escriben.
type CheckoutRepository interface {
	CommitSale(sale *entity.Sale) error
}
