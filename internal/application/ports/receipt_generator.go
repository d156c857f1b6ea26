package ports

import "github.com/antoniotech/pos-api/internal/domain/entity"

// ReceiptGenerator puerto para la representación imprimible de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(sale *entity.Sale, storeName string) ([]byte, error)
}
