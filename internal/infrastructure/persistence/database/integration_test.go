//go:build integration
// +build integration

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/repositories"
	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/logging"
)

// setupPostgres sobe um PostgreSQL em container, migrado e com os itens
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ecoleta"),
		postgres.WithUsername("ecoleta"),
		postgres.WithPassword("ecoleta"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewDatabaseConnection(&config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		URL:      connStr,
		MaxConns: 5,
		MinConns: 1,
	}, "error", logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	_, err = SeedItems(db)
	require.NoError(t, err)

	return db
}

func TestPostgres_PointLifecycle(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewPointRepository(db)

	t.Run("seed é idempotente", func(t *testing.T) {
		inserted, err := SeedItems(db)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("uf com mais de 2 caracteres é recusada pelo schema", func(t *testing.T) {
		err := repo.Create(ctx, &entities.Point{Name: "x", Email: "x@x.com", City: "São Paulo", UF: "SPX", Image: "a.jpg"})
		assert.Error(t, err)
	})

	t.Run("cria, filtra e busca", func(t *testing.T) {
		tagged := createPoint(t, db, "tagged", "São Paulo", "SP", 1, 2, 3)
		createPoint(t, db, "untagged", "São Paulo", "SP", 1)

		points, err := repo.List(ctx, repositories.PointFilters{City: "São Paulo", UF: "SP", ItemIDs: []uint{2, 3}})
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, tagged.ID, points[0].ID)

		titles, err := repo.ItemTitles(ctx, tagged.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Lâmpadas", "Pilhas e Baterias", "Papéis e Papelão"}, titles)
	})

	t.Run("rollback desfaz ponto e associações", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Table("points").Count(&before).Error)

		uow := NewUnitOfWork(db)
		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			point := &entities.Point{Name: "rollback", Email: "r@r.com", City: "Campinas", UF: "SP", Image: "r.jpg"}
			if err := repo.Create(txCtx, point); err != nil {
				return err
			}
			if err := repo.CreateItems(txCtx, point.Associations([]uint{1})); err != nil {
				return err
			}
			return errors.New("boom")
		})
		require.Error(t, err)

		var after int64
		require.NoError(t, db.Table("points").Count(&after).Error)
		assert.Equal(t, before, after)
	})
}
