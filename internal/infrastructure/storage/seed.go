package storage

import (
	"github.com/shopspring/decimal"

	"github.com/antoniotech/pos-api/internal/domain/entity"
)

// seedProducts catálogo inicial de la tienda para la primera ejecución
// (cuando la clave de productos aún no existe en el KV).
func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID: "1", Code: "750100", Name: "Aceite Nutrioli 1L", Description: "Aceite puro de soya",
			Category: "Abarrotes", SaleMode: entity.SaleModePiece, Unit: "pz",
			Stock: decimal.NewFromInt(120), MinStock: decimal.NewFromInt(24),
			SalePrice: decimal.RequireFromString("38.00"), PurchasePrice: decimal.RequireFromString("32.50"),
			ImageURL: "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?q=80&w=200&h=200&auto=format&fit=crop",
		},
		{
			ID: "2", Code: "750200", Name: "Arroz SOS 1kg", Description: "Arroz super extra",
			Category: "Granos", SaleMode: entity.SaleModePiece, Unit: "pz",
			Stock: decimal.NewFromInt(50), MinStock: decimal.NewFromInt(10),
			SalePrice: decimal.RequireFromString("22.50"), PurchasePrice: decimal.RequireFromString("18.00"),
			ImageURL: "https://images.unsplash.com/photo-1586201375761-83865001e31c?q=80&w=200&h=200&auto=format&fit=crop",
		},
		{
			ID: "3", Code: "1001", Name: "Frijol Negro (Granel)", Description: "Frijol negro veracruzano",
			Category: "Granos", SaleMode: entity.SaleModeBulk, Unit: "kg",
			Stock: decimal.NewFromInt(45), MinStock: decimal.NewFromInt(5),
			SalePrice: decimal.RequireFromString("31.00"), PurchasePrice: decimal.RequireFromString("24.00"),
			ImageURL: "https://images.unsplash.com/photo-1551462147-ff29053fad31?q=80&w=200&h=200&auto=format&fit=crop",
		},
		{
			ID: "4", Code: "750300", Name: "Leche Lala Entera 1L", Description: "Leche ultrapasteurizada",
			Category: "Lácteos", SaleMode: entity.SaleModePiece, Unit: "pz",
			Stock: decimal.NewFromInt(72), MinStock: decimal.NewFromInt(12),
			SalePrice: decimal.RequireFromString("24.00"), PurchasePrice: decimal.RequireFromString("19.50"),
			ImageURL: "https://images.unsplash.com/photo-1550583724-125581cc258b?q=80&w=200&h=200&auto=format&fit=crop",
		},
		{
			ID: "5", Code: "750400", Name: "Bimbo Pan Blanco Grande", Description: "Pan de caja con Actileche",
			Category: "Panadería", SaleMode: entity.SaleModePiece, Unit: "pz",
			Stock: decimal.NewFromInt(15), MinStock: decimal.NewFromInt(6),
			SalePrice: decimal.RequireFromString("46.00"), PurchasePrice: decimal.RequireFromString("38.00"),
			ImageURL: "https://images.unsplash.com/photo-1509440159596-0249088772ff?q=80&w=200&h=200&auto=format&fit=crop",
		},
	}
}
