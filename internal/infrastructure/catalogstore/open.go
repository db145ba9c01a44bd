// Package catalogstore elige e inicializa el backend del catálogo según la configuración.
package catalogstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/mongodb"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalogo-libros/pkg/config"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

// Open construye el repositorio configurado en CATALOG_STORE.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.BookRepository, error) {
	switch cfg.Catalog.Store {
	case config.StoreMemory:
		repo := memory.NewBookRepository()
		if cfg.Catalog.SeedDemo {
			for _, b := range memory.DemoBooks() {
				if err := repo.Create(ctx, &b); err != nil {
					return nil, fmt.Errorf("seed demo: %w", err)
				}
			}
			log.Info().Int("books", len(memory.DemoBooks())).Msg("catálogo en memoria con datos de ejemplo")
		}
		return repo, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo, err := postgres.NewBookRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return repo, nil

	case config.StoreSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("abrir SQLite %s: %w", cfg.SQLite.Path, err)
		}
		return repo, nil

	case config.StoreMongo:
		repo, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("conexión a MongoDB: %w", err)
		}
		return repo, nil
	}
	return nil, fmt.Errorf("CATALOG_STORE desconocido: %q", cfg.Catalog.Store)
}
