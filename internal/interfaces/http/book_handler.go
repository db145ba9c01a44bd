package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
	"github.com/jhoicas/catalogo-libros/internal/application/usecase"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

// BookHandler maneja las peticiones HTTP del catálogo (público).
type BookHandler struct {
	uc     *usecase.BookUseCase
	report *usecase.ReportUseCase
	log    *logger.Logger
}

// NewBookHandler construye el handler. report puede ser nil si no hay generador de PDF.
func NewBookHandler(uc *usecase.BookUseCase, report *usecase.ReportUseCase, log *logger.Logger) *BookHandler {
	return &BookHandler{uc: uc, report: report, log: log}
}

// List godoc
// @Summary      Listar libros paginados
// @Tags         books
// @Produce      json
// @Param        page      query  int  false  "Página (base 1)"     default(1)
// @Param        pageSize  query  int  false  "Libros por página"   default(2)
// @Success      200       {object}  dto.BookListResponse
// @Failure      500       {object}  dto.ErrorResponse
// @Router       /books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	// Valores ausentes o no numéricos caen en los valores por defecto.
	page := c.QueryInt("page", 0)
	pageSize := c.QueryInt("pageSize", 0)

	out, err := h.uc.List(c.UserContext(), page, pageSize)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear libro
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "Datos del libro"
// @Success      201   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.internal(c, err)
	}
	h.log.Debug().Int64("book_id", out.ID).Msg("libro creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar libro
// @Description  Idempotente: un ID inexistente también responde 204.
// @Tags         books
// @Param        id   path  int  true  "ID del libro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.internal(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Lista de precios en PDF de una página del catálogo
// @Tags         books
// @Produce      application/pdf
// @Param        page      query  int  false  "Página (base 1)"     default(1)
// @Param        pageSize  query  int  false  "Libros por página"   default(2)
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /books/report.pdf [get]
func (h *BookHandler) Report(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no disponible"})
	}
	doc, filename, err := h.report.PriceListPDF(c.UserContext(), c.QueryInt("page", 0), c.QueryInt("pageSize", 0))
	if err != nil {
		return h.internal(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(doc)
}

func (h *BookHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("catálogo")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
