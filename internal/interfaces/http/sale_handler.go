package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/application/ports"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// SaleHandler consultas de solo lectura sobre el libro de ventas y el ticket
// imprimible. No hay rutas de actualización ni borrado: el libro es la pista
// de auditoría.
type SaleHandler struct {
	sales     repository.SaleRepository
	receipts  ports.ReceiptGenerator
	storeName string
}

// NewSaleHandler construye el handler.
func NewSaleHandler(sales repository.SaleRepository, receipts ports.ReceiptGenerator, storeName string) *SaleHandler {
	return &SaleHandler{sales: sales, receipts: receipts, storeName: storeName}
}

// Recent últimas n ventas, de la más nueva a la más vieja (?limit=, default 10).
func (h *SaleHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 500 {
		limit = 500
	}
	out, err := h.sales.Recent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt ticket PDF de la venta.
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	sale, err := h.sales.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	raw, err := h.receipts.GenerateReceipt(sale, h.storeName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket-`+id+`.pdf"`)
	return c.Send(raw)
}
