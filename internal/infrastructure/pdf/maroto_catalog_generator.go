// Package pdf genera la lista de precios imprimible de una página del catálogo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del catálogo  │  Página N de M               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Título | Autor | ISBN | Págs | Año | Precio     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de libros en el catálogo                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-libros/internal/application/usecase"
	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
	"github.com/jhoicas/catalogo-libros/pkg/money"
)

var _ usecase.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoCatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	money *money.Formatter
}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator(f *money.Formatter) *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{money: f}
}

// GenerateCatalogPDF genera el PDF de la página y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(
	_ context.Context,
	title string,
	page pagination.Result[*entity.Book],
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, page))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(page.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum livro encontrado.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, b := range page.Items {
		m.AddRows(g.bookRow(b))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(page))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, page pagination.Result[*entity.Book]) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(
			fmt.Sprintf("Página %d de %d", page.CurrentPage, page.TotalPages),
			props.Text{Size: 9, Align: align.Right, Top: 4, Color: colorGray},
		)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Título", 3, align.Left),
		h("Autor", 2, align.Left),
		h("ISBN", 2, align.Left),
		h("Págs.", 1, align.Right),
		h("Ano", 1, align.Right),
		h("Valor", 2, align.Right),
	)
}

func (g *MarotoCatalogGenerator) bookRow(b *entity.Book) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(nonEmpty(s, "-"), props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		cell(strconv.FormatInt(b.ID, 10), 1, align.Left),
		cell(b.Title, 3, align.Left),
		cell(b.Author, 2, align.Left),
		cell(b.ISBN, 2, align.Left),
		cell(nonZero(b.Pages), 1, align.Right),
		cell(nonZero(b.Year), 1, align.Right),
		cell(g.money.Format(b.Price), 2, align.Right),
	)
}

func footerRow(page pagination.Result[*entity.Book]) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(
		fmt.Sprintf("%d livro(s) no catálogo, %d por página", page.TotalItems, page.PerPage),
		props.Text{Size: 7, Color: colorGray, Top: 2},
	)))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
