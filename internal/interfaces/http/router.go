package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalogo-libros/internal/application/usecase"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	BookUC      *usecase.BookUseCase
	ReportUC    *usecase.ReportUseCase
	Log         *logger.Logger
	CORSOrigins []string
}

// Middleware registra los middlewares globales: recover, request id, log de acceso y CORS.
func Middleware(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))

	origins := "*"
	if len(deps.CORSOrigins) > 0 {
		origins = strings.Join(deps.CORSOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	books := app.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC, deps.ReportUC, deps.Log)
	books.Get("/", bookHandler.List)
	books.Post("/", bookHandler.Create)
	books.Get("/report.pdf", bookHandler.Report)
	books.Delete("/:id", bookHandler.Delete)
}
