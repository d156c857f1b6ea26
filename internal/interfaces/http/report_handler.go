package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/application/usecase"
)

// ReportHandler proyecciones de reporte sobre catálogo y ventas.
type ReportHandler struct {
	uc *usecase.ReportingUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportingUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary resumen del negocio para la vista de inicio.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.DashboardSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DailySeries serie de ventas por día calendario (?days=, default 7).
func (h *ReportHandler) DailySeries(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	out, err := h.uc.DailySeries(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PaymentMethods número de ventas por método de pago.
func (h *ReportHandler) PaymentMethods(c *fiber.Ctx) error {
	out, err := h.uc.PaymentMethodBreakdown()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories ingreso por categoría según la instantánea embebida en cada venta.
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.CategoryRevenueBreakdown()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCSV libro de ventas completo como descarga CSV.
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ExportSalesCSV(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.csv"`)
	return c.Send(buf.Bytes())
}
