package main

import (
	"context"
	"fmt"

	"github.com/CameronXie/coffee-api/internal/api/rest/handler"
	"github.com/CameronXie/coffee-api/internal/repository/memory"
	"github.com/CameronXie/coffee-api/internal/repository/postgres"
	"github.com/CameronXie/coffee-api/internal/repository/sqldb"
)

// migrator is implemented by stores that create their own schema
type migrator interface {
	Migrate(ctx context.Context) error
}

// openStore builds the repository selected by cfg.StoreDriver and creates its schema.
// The returned closer releases the underlying connections.
func openStore(ctx context.Context, cfg *Config) (handler.CoffeeRepository, func(), error) {
	var (
		repo   handler.CoffeeRepository
		closer = func() {}
	)

	switch cfg.StoreDriver {
	case StoreDriverMemory:
		return memory.NewCoffeeRepository(), closer, nil

	case StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, &postgres.PoolConfig{ConnString: cfg.PostgresDSN})
		if err != nil {
			return nil, nil, err
		}
		repo, closer = postgres.NewCoffeeRepository(pool), pool.Close

	case StoreDriverMySQL, StoreDriverSQLite:
		dialect, err := sqldb.DialectByName(cfg.StoreDriver)
		if err != nil {
			return nil, nil, err
		}

		dsn := cfg.SQLitePath
		if dialect.Name == sqldb.MySQL.Name {
			dsn = cfg.MySQL.DSN()
		}

		db, err := sqldb.Open(ctx, dialect, dsn)
		if err != nil {
			return nil, nil, err
		}
		repo, closer = sqldb.NewCoffeeRepository(db, dialect), func() { _ = db.Close() }

	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	if m, ok := repo.(migrator); ok {
		if err := m.Migrate(ctx); err != nil {
			closer()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return repo, closer, nil
}
