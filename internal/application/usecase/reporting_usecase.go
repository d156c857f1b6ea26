package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// ReportingUseCase proyecciones de solo lectura sobre el catálogo y el libro
// de ventas. No tiene estado propio: cada consulta lee las instantáneas
// actuales de ambos almacenes.
//
// Los desgloses por categoría usan la copia de artículos embebida en cada
// venta, nunca el catálogo vivo: recategorizar o borrar un producto después
// de vendido no altera la atribución histórica.
type ReportingUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(products repository.ProductRepository, sales repository.SaleRepository) *ReportingUseCase {
	return &ReportingUseCase{products: products, sales: sales}
}

// SalesOn suma el total de las ventas cuyo timestamp cae en el día calendario
// indicado (hora local).
func (uc *ReportingUseCase) SalesOn(day time.Time) (decimal.Decimal, error) {
	all, err := uc.sales.All()
	if err != nil {
		return decimal.Zero, err
	}
	return salesOn(all, day), nil
}

// DailySeries devuelve un punto por cada uno de los últimos days días
// calendario, del más antiguo al más reciente, incluyendo hoy. Días sin
// ventas producen puntos en cero.
func (uc *ReportingUseCase) DailySeries(days int) ([]dto.DailyPointDTO, error) {
	all, err := uc.sales.All()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	series := make([]dto.DailyPointDTO, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		series = append(series, dto.DailyPointDTO{
			Date:  day.Format("2006-01-02"),
			Label: weekdayShort(day.Weekday()),
			Total: salesOn(all, day),
		})
	}
	return series, nil
}

// PaymentMethodBreakdown cuenta las ventas por método de pago; omite los
// métodos sin ventas.
func (uc *ReportingUseCase) PaymentMethodBreakdown() ([]dto.PaymentMethodCountDTO, error) {
	all, err := uc.sales.All()
	if err != nil {
		return nil, err
	}
	counts := map[entity.PaymentMethod]int{}
	for _, s := range all {
		counts[s.PaymentMethod]++
	}
	breakdown := make([]dto.PaymentMethodCountDTO, 0, 3)
	for _, m := range []entity.PaymentMethod{entity.PaymentCash, entity.PaymentCard, entity.PaymentCredit} {
		if counts[m] > 0 {
			breakdown = append(breakdown, dto.PaymentMethodCountDTO{Method: string(m), Count: counts[m]})
		}
	}
	return breakdown, nil
}

// CategoryRevenueBreakdown acumula salePrice × quantity por categoría del
// artículo al momento de la venta, ordenado por ingreso descendente. Las
// líneas sin categoría se agrupan como "Otros".
func (uc *ReportingUseCase) CategoryRevenueBreakdown() ([]dto.CategoryRevenueDTO, error) {
	all, err := uc.sales.All()
	if err != nil {
		return nil, err
	}
	revenue := map[string]decimal.Decimal{}
	for _, s := range all {
		for _, item := range s.Items {
			cat := item.Product.Category
			if cat == "" {
				cat = "Otros"
			}
			revenue[cat] = revenue[cat].Add(item.LineTotal())
		}
	}
	breakdown := make([]dto.CategoryRevenueDTO, 0, len(revenue))
	for cat, total := range revenue {
		breakdown = append(breakdown, dto.CategoryRevenueDTO{Category: cat, Revenue: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Revenue.Equal(breakdown[j].Revenue) {
			return breakdown[i].Revenue.GreaterThan(breakdown[j].Revenue)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}

// DashboardSummary arma el resumen de inicio: venta del día, tamaño del
// catálogo, total de operaciones, productos en bajo inventario y la serie de
// los últimos 7 días.
func (uc *ReportingUseCase) DashboardSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", err)
	}
	low, err := uc.products.LowStock()
	if err != nil {
		return nil, fmt.Errorf("dashboard: bajo inventario: %w", err)
	}
	all, err := uc.sales.All()
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", err)
	}
	week, err := uc.DailySeries(7)
	if err != nil {
		return nil, fmt.Errorf("dashboard: serie semanal: %w", err)
	}
	return &dto.DashboardSummaryDTO{
		TodaySales:    salesOn(all, time.Now()),
		ProductCount:  len(products),
		SaleCount:     len(all),
		LowStockCount: len(low),
		WeekSeries:    week,
	}, nil
}

// ExportSalesCSV vuelca el libro de ventas completo como CSV.
func (uc *ReportingUseCase) ExportSalesCSV(w io.Writer) error {
	all, err := uc.sales.All()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "total", "paymentMethod", "amountReceived", "change", "itemCount"}); err != nil {
		return err
	}
	for _, s := range all {
		record := []string{
			s.ID,
			s.Timestamp.Format(time.RFC3339),
			s.Total.StringFixed(2),
			string(s.PaymentMethod),
			s.AmountReceived.StringFixed(2),
			s.Change.StringFixed(2),
			strconv.Itoa(len(s.Items)),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func salesOn(sales []*entity.Sale, day time.Time) decimal.Decimal {
	total := decimal.Zero
	y, m, d := day.Date()
	for _, s := range sales {
		sy, sm, sd := s.Timestamp.Local().Date()
		if sy == y && sm == m && sd == d {
			total = total.Add(s.Total)
		}
	}
	return total
}

// weekdayShort abreviatura del día de la semana, ej. "lun".
func weekdayShort(w time.Weekday) string {
	labels := [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	return labels[w]
}
