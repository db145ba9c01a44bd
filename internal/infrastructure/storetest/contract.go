// Package storetest contiene el contrato compartido que debe cumplir cada
// implementación de repository.BookRepository.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
)

// Factory devuelve un repositorio vacío y aislado para cada subtest.
type Factory func(t *testing.T) repository.BookRepository

// NewBook libro de prueba con datos derivados de n.
func NewBook(n int) *entity.Book {
	return &entity.Book{
		Title:  fmt.Sprintf("Livro %d", n),
		Author: fmt.Sprintf("Autor %d", n),
		ISBN:   fmt.Sprintf("978%07d", n),
		Pages:  100 + n,
		Year:   2000 + n,
		Price:  decimal.New(int64(1000+n*25), -2),
	}
}

// Seed inserta n libros y devuelve los IDs asignados en orden.
func Seed(t *testing.T, repo repository.BookRepository, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		b := NewBook(i)
		require.NoError(t, repo.Create(context.Background(), b))
		ids = append(ids, b.ID)
	}
	return ids
}

func idsOf(books []*entity.Book) []int64 {
	out := make([]int64, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

// Run ejecuta el contrato completo contra la implementación de newRepo.
func Run(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("CreateAsignaIDsUnicosEnOrden", func(t *testing.T) {
		repo := newRepo(t)
		ids := Seed(t, repo, 4)
		for i := 1; i < len(ids); i++ {
			assert.Greater(t, ids[i], ids[i-1])
		}
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids, idsOf(all))

		last := all[len(all)-1]
		want := NewBook(4)
		assert.Equal(t, want.Title, last.Title)
		assert.Equal(t, want.Author, last.Author)
		assert.Equal(t, want.ISBN, last.ISBN)
		assert.Equal(t, want.Pages, last.Pages)
		assert.Equal(t, want.Year, last.Year)
		assert.True(t, want.Price.Equal(last.Price), "precio %s != %s", want.Price, last.Price)
	})

	t.Run("DeleteConservaOrden", func(t *testing.T) {
		repo := newRepo(t)
		ids := Seed(t, repo, 5)
		require.NoError(t, repo.Delete(ctx, ids[2]))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{ids[0], ids[1], ids[3], ids[4]}, idsOf(all))
	})

	t.Run("DeleteInexistenteNoHaceNada", func(t *testing.T) {
		repo := newRepo(t)
		ids := Seed(t, repo, 3)
		require.NoError(t, repo.Delete(ctx, ids[2]+1000))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids, idsOf(all))
	})

	t.Run("IDNoSeReutiliza", func(t *testing.T) {
		repo := newRepo(t)
		ids := Seed(t, repo, 2)
		require.NoError(t, repo.Delete(ctx, ids[1]))

		b := NewBook(3)
		require.NoError(t, repo.Create(ctx, b))
		assert.Greater(t, b.ID, ids[1])
	})

	t.Run("CountYListRange", func(t *testing.T) {
		repo := newRepo(t)
		ids := Seed(t, repo, 5)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 5, n)

		got, err := repo.ListRange(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, ids[1:4], idsOf(got))

		got, err = repo.ListRange(ctx, 4, 3)
		require.NoError(t, err)
		assert.Equal(t, ids[4:], idsOf(got))

		got, err = repo.ListRange(ctx, 10, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("PrecioYEnterosSinPerdida", func(t *testing.T) {
		repo := newRepo(t)
		prices := []string{"30.555", "12345678901.125", "0.0001"}
		for i, p := range prices {
			b := NewBook(i + 1)
			b.Price = decimal.RequireFromString(p)
			b.Pages = 3_000_000_000
			b.Year = 2_147_483_648
			require.NoError(t, repo.Create(ctx, b))
		}

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, len(prices))
		for i, b := range all {
			want := decimal.RequireFromString(prices[i])
			assert.True(t, want.Equal(b.Price), "precio %s != %s", want, b.Price)
			assert.Equal(t, 3_000_000_000, b.Pages)
			assert.Equal(t, 2_147_483_648, b.Year)
		}
	})

	t.Run("PaginacionEquivalente", func(t *testing.T) {
		repo := newRepo(t)
		Seed(t, repo, 7)
		all, err := repo.List(ctx)
		require.NoError(t, err)
		total, err := repo.Count(ctx)
		require.NoError(t, err)

		for size := 1; size <= 4; size++ {
			for page := 1; page <= 9; page++ {
				req := pagination.Request{Page: page, PageSize: size}
				w := pagination.Compute(int(total), req)
				var rng []*entity.Book
				if w.Limit > 0 {
					rng, err = repo.ListRange(ctx, w.Offset, w.Limit)
					require.NoError(t, err)
				}
				want := pagination.Paginate(all, req)
				got := pagination.FromRange(int(total), req, rng)

				assert.Equal(t, idsOf(want.Items), idsOf(got.Items), "page=%d size=%d", page, size)
				want.Items, got.Items = nil, nil
				assert.Equal(t, want, got, "page=%d size=%d", page, size)
			}
		}
	})
}
