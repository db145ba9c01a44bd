package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-libros/internal/infrastructure/storetest"
)

func TestBookRepo_Contrato(t *testing.T) {
	if testing.Short() {
		t.Skip("requiere Docker")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("catalogo"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPoolFromDSN(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo, err := postgres.NewBookRepository(ctx, pool)
	require.NoError(t, err)

	storetest.Run(t, func(t *testing.T) repository.BookRepository {
		_, err := pool.Exec(ctx, `TRUNCATE books RESTART IDENTITY`)
		require.NoError(t, err)
		return repo
	})
}
