package catalogstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/infrastructure/catalogstore"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalogo-libros/pkg/config"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

func TestOpen_MemoriaConDemo(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{Store: config.StoreMemory, SeedDemo: true}}
	repo, err := catalogstore.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memory.BookRepo{}, repo)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.EqualValues(t, 1, all[0].ID)
	assert.EqualValues(t, 2, all[1].ID)
}

func TestOpen_MemoriaSinDemo(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{Store: config.StoreMemory}}
	repo, err := catalogstore.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Catalog: config.CatalogConfig{Store: config.StoreSQLite},
		SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "c.db")},
	}
	repo, err := catalogstore.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer repo.Close(context.Background())
	assert.IsType(t, &sqlite.BookRepo{}, repo)
}

func TestOpen_Desconocido(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{Store: "cassandra"}}
	_, err := catalogstore.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
