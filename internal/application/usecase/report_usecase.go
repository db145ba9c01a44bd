package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
)

// CatalogPDFGenerator puerto para la lista de precios en PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, title string, page pagination.Result[*entity.Book]) ([]byte, error)
}

// ReportUseCase genera la lista de precios imprimible de una página del catálogo.
type ReportUseCase struct {
	books     *BookUseCase
	generator CatalogPDFGenerator
	title     string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(books *BookUseCase, generator CatalogPDFGenerator, title string) *ReportUseCase {
	return &ReportUseCase{books: books, generator: generator, title: title}
}

// PriceListPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) PriceListPDF(ctx context.Context, page, pageSize int) ([]byte, string, error) {
	res, err := uc.books.Page(ctx, page, pageSize)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.generator.GenerateCatalogPDF(ctx, uc.title, res)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar lista de precios: %w", err)
	}
	return doc, fmt.Sprintf("catalogo-p%d.pdf", res.CurrentPage), nil
}
