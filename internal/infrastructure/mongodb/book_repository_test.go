package mongodb_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/mongodb"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/storetest"
	"github.com/jhoicas/catalogo-libros/pkg/config"
)

func TestBookRepo_Contrato(t *testing.T) {
	if testing.Short() {
		t.Skip("requiere Docker")
	}
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	n := 0
	storetest.Run(t, func(t *testing.T) repository.BookRepository {
		// Una base por subtest para que contador y colección empiecen vacíos.
		n++
		repo, err := mongodb.Connect(ctx, config.MongoConfig{URI: uri, Database: fmt.Sprintf("catalogo_%d", n)})
		require.NoError(t, err)
		t.Cleanup(func() { _ = repo.Close(ctx) })
		return repo
	})
}
