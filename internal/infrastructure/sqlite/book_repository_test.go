package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/storetest"
)

func openTemp(t *testing.T) *sqlite.BookRepo {
	t.Helper()
	repo, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "catalogo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo
}

func TestBookRepo_Contrato(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.BookRepository {
		return openTemp(t)
	})
}

func TestBookRepo_PersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalogo.db")

	repo, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	ids := storetest.Seed(t, repo, 3)
	require.NoError(t, repo.Close(ctx))

	repo, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close(ctx)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	b := storetest.NewBook(4)
	require.NoError(t, repo.Create(ctx, b))
	assert.Greater(t, b.ID, ids[2])
}

func TestBookRepo_MemoriaEfimera(t *testing.T) {
	repo, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer repo.Close(context.Background())

	storetest.Seed(t, repo, 2)
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
