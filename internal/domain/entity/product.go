package entity

import "github.com/shopspring/decimal"

// SaleMode define la granularidad de venta de un producto.
type SaleMode string

const (
	SaleModePiece SaleMode = "piece" // venta por pieza (paso 1)
	SaleModeBulk  SaleMode = "bulk"  // venta a granel por peso (paso 0.1)
	SaleModePack  SaleMode = "pack"  // venta por paquete (paso 1)
)

var (
	stepUnit = decimal.NewFromInt(1)
	stepBulk = decimal.NewFromFloat(0.1)
)

// Step devuelve el incremento mínimo de cantidad para el modo de venta:
// 0.1 para granel, 1 para pieza y paquete (y para cualquier valor desconocido).
func (m SaleMode) Step() decimal.Decimal {
	if m == SaleModeBulk {
		return stepBulk
	}
	return stepUnit
}

// PlaceholderImageURL imagen por defecto cuando el producto no trae una propia.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1542838132-92c53300491e?q=80&w=400&h=400&auto=format&fit=crop"

// Product representa un artículo vendible del catálogo.
//
// Stock puede quedar negativo tras una venta: el modelo acepta sobreventa y se
// concilia después (no hay candado a cero en ninguna parte del sistema).
// SalePrice y PurchasePrice son independientes; un margen negativo es válido.
// Los nombres JSON son el formato de persistencia y de la API.
type Product struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"` // SKU/código de barras capturado a mano, no único
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	SaleMode      SaleMode        `json:"saleMode"`
	Unit          string          `json:"unit"` // etiqueta de unidad: "pz", "kg", "lt"...
	Stock         decimal.Decimal `json:"stock"`
	MinStock      decimal.Decimal `json:"minStock"` // umbral de resurtido
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	ImageURL      string          `json:"imageUrl"`
}

// IsLowStock indica si el producto está en o por debajo de su umbral de resurtido.
func (p Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}
