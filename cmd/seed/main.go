// seed carga libros desde un CSV en el almacén configurado (CATALOG_STORE).
//
// Uso: go run ./cmd/seed [ruta/libros.csv] [charset]
// Por defecto lee libros.csv en ISO-8859-1 (exportación típica de planillas).
// Columnas: título, autor, ISBN, páginas, año, precio. Separador "," o ";".
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/catalogo-libros/internal/infrastructure/catalogstore"
	"github.com/jhoicas/catalogo-libros/pkg/config"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

func main() {
	csvPath := "libros.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	charset := "ISO-8859-1"
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if cfg.Catalog.Store == config.StoreMemory {
		log.Warn().Msg("CATALOG_STORE=memory: los libros se pierden al terminar")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	books, err := parseBooks(f, charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	cfg.Catalog.SeedDemo = false
	store, err := catalogstore.Open(ctx, cfg, log.Named("store"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	for _, b := range books {
		if err := store.Create(ctx, b); err != nil {
			log.Error().Err(err).Str("title", b.Title).Msg("insertar libro")
			os.Exit(1)
		}
	}
	total, _ := store.Count(ctx)
	log.Info().Int("inserted", len(books)).Int64("total", total).Str("store", cfg.Catalog.Store).Msg("seed completado")
}
