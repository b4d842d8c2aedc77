//go:build integration

package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/CameronXie/coffee-api/internal/domain"
	"github.com/CameronXie/coffee-api/internal/repository"
)

func setupMySQLContainer(t *testing.T, ctx context.Context) (*sql.DB, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.4",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "root",
			"MYSQL_DATABASE":      "coffees",
			"MYSQL_USER":          "test",
			"MYSQL_PASSWORD":      "test",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort("3306/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "3306")
	require.NoError(t, err)

	cfg := &MySQLConfig{
		User:     "test",
		Password: "test",
		Host:     host,
		Port:     port.Port(),
		Database: "coffees",
	}

	db, err := Open(ctx, MySQL, cfg.DSN())
	require.NoError(t, err)

	cleanup := func() {
		_ = db.Close()
		_ = container.Terminate(ctx)
	}

	return db, cleanup
}

func cleanupMySQLCoffeesData(t *testing.T, db *sql.DB) {
	_, err := db.Exec("TRUNCATE TABLE coffees")
	require.NoError(t, err)
}

func TestIntegration_MySQLCoffeeRepository(t *testing.T) {
	ctx := context.Background()
	db, cleanup := setupMySQLContainer(t, ctx)
	defer cleanup()

	repo := NewCoffeeRepository(db, MySQL)
	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.Migrate(ctx), "migration should be repeatable")

	t.Run("should insert coffee with generated ID", func(t *testing.T) {
		defer cleanupMySQLCoffeesData(t, db)

		saved, err := repo.Save(ctx, &domain.Coffee{Name: "Cafe Cereza"})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, *saved, *found)
	})

	t.Run("should replace whole record under the same ID", func(t *testing.T) {
		defer cleanupMySQLCoffeesData(t, db)

		_, err := repo.Save(ctx, &domain.Coffee{ID: "c-1", Name: "Cafe Ganador"})
		require.NoError(t, err)

		saved, err := repo.Save(ctx, &domain.Coffee{ID: "c-1", Name: "Cafe Lareno"})
		require.NoError(t, err)
		assert.Equal(t, domain.Coffee{ID: "c-1", Name: "Cafe Lareno"}, *saved)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Coffee{{ID: "c-1", Name: "Cafe Lareno"}}, all)
	})

	t.Run("should return NotFoundError for missing coffee", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "missing")
		require.Error(t, err)

		var notFound *repository.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("should delete coffee and ignore repeated deletes", func(t *testing.T) {
		defer cleanupMySQLCoffeesData(t, db)

		_, err := repo.Save(ctx, &domain.Coffee{ID: "c-2", Name: "Cafe Tres Pontas"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, "c-2"))
		require.NoError(t, repo.DeleteByID(ctx, "c-2"))

		exists, err := repo.ExistsByID(ctx, "c-2")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should keep IDs that differ by case or accent as separate rows", func(t *testing.T) {
		defer cleanupMySQLCoffeesData(t, db)

		_, err := repo.Save(ctx, &domain.Coffee{ID: "abc", Name: "lower"})
		require.NoError(t, err)

		exists, err := repo.ExistsByID(ctx, "ABC")
		require.NoError(t, err)
		assert.False(t, exists)

		for _, c := range []domain.Coffee{{ID: "ABC", Name: "upper"}, {ID: "cafe", Name: "plain"}, {ID: "café", Name: "accented"}} {
			saved, err := repo.Save(ctx, &c)
			require.NoError(t, err)
			assert.Equal(t, c, *saved)
		}

		lower, err := repo.FindByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "lower", lower.Name)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}
