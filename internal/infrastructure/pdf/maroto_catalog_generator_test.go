package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-libros/pkg/money"
)

func TestGenerateCatalogPDF(t *testing.T) {
	gen := pdf.NewMarotoCatalogGenerator(money.NewFormatter("pt-BR", "R$"))
	books := []*entity.Book{
		{ID: 1, Title: "Livro 1", Author: "Autor 1", ISBN: "123456789", Pages: 200, Year: 2020, Price: decimal.NewFromInt(30)},
		{ID: 2, Title: "Livro 2", Author: "Autor 2", ISBN: "987654321", Pages: 250, Year: 2019, Price: decimal.NewFromInt(25)},
	}
	page := pagination.Paginate(books, pagination.Request{Page: 1, PageSize: 2})

	doc, err := gen.GenerateCatalogPDF(context.Background(), "Lista de Livros", page)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateCatalogPDF_PaginaVacia(t *testing.T) {
	gen := pdf.NewMarotoCatalogGenerator(money.NewFormatter("pt-BR", "R$"))
	page := pagination.Paginate([]*entity.Book{}, pagination.Request{Page: 3, PageSize: 2})

	doc, err := gen.GenerateCatalogPDF(context.Background(), "Lista de Livros", page)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
