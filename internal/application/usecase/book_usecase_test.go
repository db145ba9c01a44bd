package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
	"github.com/jhoicas/catalogo-libros/internal/application/usecase"
	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/storetest"
)

var defaults = pagination.Defaults{PageSize: 2, MaxPageSize: 100}

func newUseCase(t *testing.T, n int) (*usecase.BookUseCase, []int64) {
	t.Helper()
	repo := memory.NewBookRepository()
	ids := storetest.Seed(t, repo, n)
	return usecase.NewBookUseCase(repo, defaults), ids
}

func bookIDs(list *dto.BookListResponse) []int64 {
	out := make([]int64, 0, len(list.Books))
	for _, b := range list.Books {
		out = append(out, b.ID)
	}
	return out
}

func TestList_CincoLibrosDeADos(t *testing.T) {
	uc, ids := newUseCase(t, 5)
	ctx := context.Background()

	p1, err := uc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, ids[:2], bookIDs(p1))
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 5, p1.TotalItems)
	assert.True(t, p1.HasNextPage)

	p3, err := uc.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, ids[4:], bookIDs(p3))
	assert.False(t, p3.HasNextPage)
}

func TestList_ValoresPorDefecto(t *testing.T) {
	uc, _ := newUseCase(t, 3)
	out, err := uc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 2, out.PerPage)
	assert.Len(t, out.Books, 2)
}

func TestList_PaginaFueraDeRango(t *testing.T) {
	uc, _ := newUseCase(t, 3)
	out, err := uc.List(context.Background(), 7, 2)
	require.NoError(t, err)
	require.NotNil(t, out.Books)
	assert.Empty(t, out.Books)
	assert.Equal(t, 7, out.CurrentPage)
	assert.Equal(t, 2, out.TotalPages)
	assert.False(t, out.HasNextPage)
}

func TestCreate_ApareceAlFinal(t *testing.T) {
	uc, ids := newUseCase(t, 3)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateBookRequest{
		Title: "Dom Casmurro", Author: "Machado de Assis", ISBN: "9788535910667",
		Pages: 256, Year: 1899, Price: dto.FlexDecimal{Decimal: decimal.RequireFromString("39.90")},
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, ids[2])

	out, err := uc.List(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, out.Books, 4)
	last := out.Books[3]
	assert.Equal(t, created.ID, last.ID)
	assert.Equal(t, "Dom Casmurro", last.Title)
	assert.Equal(t, 256, last.Pages)
	assert.Equal(t, "39.9", last.Price.String())
}

func TestDelete_Idempotente(t *testing.T) {
	uc, ids := newUseCase(t, 4)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, ids[1]))
	require.NoError(t, uc.Delete(ctx, ids[1]))
	require.NoError(t, uc.Delete(ctx, 9999))
	require.NoError(t, uc.Delete(ctx, -1))

	out, err := uc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[2], ids[3]}, bookIDs(out))
}

// failingRepo simula un almacén caído.
type failingRepo struct{ memory.BookRepo }

var errDown = errors.New("almacén caído")

func (*failingRepo) Count(context.Context) (int64, error) { return 0, errDown }
func (*failingRepo) Create(context.Context, *entity.Book) error {
	return errDown
}

func TestErroresDelAlmacenSePropagan(t *testing.T) {
	uc := usecase.NewBookUseCase(&failingRepo{}, defaults)
	_, err := uc.List(context.Background(), 1, 2)
	assert.ErrorIs(t, err, errDown)

	_, err = uc.Create(context.Background(), dto.CreateBookRequest{Title: "x"})
	assert.ErrorIs(t, err, errDown)
}
