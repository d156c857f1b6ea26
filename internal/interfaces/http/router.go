package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/antoniotech/pos-api/internal/application/ports"
	"github.com/antoniotech/pos-api/internal/application/usecase"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	CartUC      *usecase.CartUseCase
	ReportingUC *usecase.ReportingUseCase
	AIUC        *usecase.AIUseCase
	SaleRepo    repository.SaleRepository
	Receipts    ports.ReceiptGenerator
	StoreName   string
}

// Router registra las rutas de la API. Terminal de un solo usuario: no hay
// autenticación ni sesiones.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (vista de inventario, F2)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Carrito y cobro (terminal de venta, F1)
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:productId", cartHandler.UpdateQuantity)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)
	cart.Post("/checkout", cartHandler.Checkout)

	// Libro de ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleRepo, deps.Receipts, deps.StoreName)
	sales.Get("/", saleHandler.Recent)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Reportes (F3) y dashboard
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportingUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/daily-series", reportHandler.DailySeries)
	reports.Get("/payment-methods", reportHandler.PaymentMethods)
	reports.Get("/categories", reportHandler.Categories)
	reports.Get("/sales.csv", reportHandler.ExportCSV)

	// Asistente IA
	ai := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/ask", aiHandler.Ask)
}
