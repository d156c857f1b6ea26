package dto

import "github.com/shopspring/decimal"

// SaveProductRequest borrador de producto para alta o edición.
//
// Todos los campos son opcionales: los ausentes se rellenan con los defaults
// del catálogo (saleMode "piece", unit "pz", numéricos en 0, imagen genérica).
// El defaulting silencioso es comportamiento documentado, no una validación
// pendiente.
type SaveProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	SaleMode      string          `json:"saleMode"`
	Unit          string          `json:"unit"`
	Stock         decimal.Decimal `json:"stock"`
	MinStock      decimal.Decimal `json:"minStock"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	ImageURL      string          `json:"imageUrl"`
}
