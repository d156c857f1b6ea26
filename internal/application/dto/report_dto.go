package dto

import "github.com/shopspring/decimal"

// DailyPointDTO total vendido en un día calendario.
type DailyPointDTO struct {
	Date  string          `json:"date"`  // 2006-01-02 (hora local)
	Label string          `json:"label"` // día de la semana abreviado, ej. "lun"
	Total decimal.Decimal `json:"total"`
}

// PaymentMethodCountDTO número de ventas por método de pago.
type PaymentMethodCountDTO struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

// CategoryRevenueDTO ingreso acumulado por categoría.
type CategoryRevenueDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO resumen del negocio para la vista de inicio.
type DashboardSummaryDTO struct {
	TodaySales    decimal.Decimal `json:"todaySales"`
	ProductCount  int             `json:"productCount"`
	SaleCount     int             `json:"saleCount"`
	LowStockCount int             `json:"lowStockCount"`
	WeekSeries    []DailyPointDTO `json:"weekSeries"`
}
