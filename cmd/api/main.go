package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-libros/internal/application/usecase"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/catalogstore"
	infrapdf "github.com/jhoicas/catalogo-libros/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/catalogo-libros/internal/interfaces/http"
	"github.com/jhoicas/catalogo-libros/pkg/config"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
	"github.com/jhoicas/catalogo-libros/pkg/money"
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
		Str("store", cfg.Catalog.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := catalogstore.Open(ctx, cfg, log.Named("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén del catálogo")
	}

	bookUC := usecase.NewBookUseCase(store, pagination.Defaults{
		PageSize:    cfg.Catalog.DefaultPageSize,
		MaxPageSize: cfg.Catalog.MaxPageSize,
	})

	// PDF: lista de precios imprimible de una página del catálogo
	pdfGenerator := infrapdf.NewMarotoCatalogGenerator(money.NewFormatter(cfg.App.Locale, cfg.App.CurrencySymbol))
	reportUC := usecase.NewReportUseCase(bookUC, pdfGenerator, cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})

	deps := httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		BookUC:      bookUC,
		ReportUC:    reportUC,
		Log:         log.Named("http"),
		CORSOrigins: cfg.HTTP.Origins(),
	}
	httpRouter.Middleware(app, deps)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo de libros API",
	}))

	httpRouter.Router(app, deps)

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
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar almacén")
	}

	log.Info().Msg("aplicación detenida")
}
