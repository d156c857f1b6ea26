package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/antoniotech/pos-api/internal/application/usecase"
	infraai "github.com/antoniotech/pos-api/internal/infrastructure/ai"
	infrapdf "github.com/antoniotech/pos-api/internal/infrastructure/pdf"
	"github.com/antoniotech/pos-api/internal/infrastructure/storage"
	httpRouter "github.com/antoniotech/pos-api/internal/interfaces/http"
	"github.com/antoniotech/pos-api/pkg/config"
	"github.com/antoniotech/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tienda", cfg.App.StoreName).
		Msg("iniciando aplicación")

	kv, err := storage.OpenKV(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	productRepo, err := storage.NewProductRepository(kv)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	saleRepo, err := storage.NewSaleRepository(kv)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar libro de ventas")
	}
	checkoutRepo := storage.NewCheckoutRepository(productRepo, saleRepo, kv)

	catalogUC := usecase.NewCatalogUseCase(productRepo)
	cartUC := usecase.NewCartUseCase(productRepo, checkoutRepo)
	reportingUC := usecase.NewReportingUseCase(productRepo, saleRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.App.StoreName)
	aiUC := usecase.NewAIUseCase(geminiSvc, productRepo, saleRepo, log.Component("asistente-ia"))

	receiptGen := infrapdf.NewReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		CartUC:      cartUC,
		ReportingUC: reportingUC,
		AIUC:        aiUC,
		SaleRepo:    saleRepo,
		Receipts:    receiptGen,
		StoreName:   cfg.App.StoreName,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
