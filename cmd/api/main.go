package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/invoicing-api/internal/application/invoicing"
	infraevents "github.com/tu-usuario/invoicing-api/internal/infrastructure/events"
	infrapdf "github.com/tu-usuario/invoicing-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/invoicing-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/invoicing-api/internal/interfaces/http"
	"github.com/tu-usuario/invoicing-api/pkg/config"
	"github.com/tu-usuario/invoicing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	publisher := infraevents.NewKafkaPublisher(cfg.Broker.Brokers, cfg.Broker.Topic, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar publicador de eventos")
		}
	}()

	invoiceUC := invoicing.NewInvoiceUseCase(invoiceRepo, publisher)
	itemUC := invoicing.NewItemUseCase(invoiceRepo, publisher)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		ItemUC:    itemUC,
		PDFGen:    pdfGenerator,
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
