package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CameronXie/coffee-api/internal/domain"
	"github.com/CameronXie/coffee-api/internal/repository"
)

// CoffeeRepository stores coffees through database/sql using a Dialect
type CoffeeRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewCoffeeRepository creates a new CoffeeRepository instance
func NewCoffeeRepository(db *sql.DB, dialect Dialect) *CoffeeRepository {
	return &CoffeeRepository{
		db:      db,
		dialect: dialect,
	}
}

// Open connects to the database described by dialect and dsn and verifies connectivity.
func Open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open_%s: %w", dialect.Name, err)
	}

	// sqlite permits a single writer at a time
	if dialect.Name == SQLite.Name {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping_%s: %w", dialect.Name, err)
	}

	return db, nil
}

// Migrate creates the coffees table if it does not exist
func (r *CoffeeRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.CreateTable); err != nil {
		return fmt.Errorf("failed to create coffees table: %w", err)
	}

	return nil
}

// FindAll retrieves every coffee ordered by name
func (r *CoffeeRepository) FindAll(ctx context.Context) ([]domain.Coffee, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM coffees ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query coffees: %w", err)
	}
	defer rows.Close()

	coffees := make([]domain.Coffee, 0)
	for rows.Next() {
		var c domain.Coffee
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan coffee: %w", err)
		}
		coffees = append(coffees, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coffees: %w", err)
	}

	return coffees, nil
}

// FindByID retrieves a coffee by its ID from the database
func (r *CoffeeRepository) FindByID(ctx context.Context, id string) (*domain.Coffee, error) {
	var coffee domain.Coffee

	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM coffees WHERE id = ?", id).
		Scan(&coffee.ID, &coffee.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.NewCoffeeNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to retrieve coffee with id %s: %w", id, err)
	}

	return &coffee, nil
}

// ExistsByID reports whether a coffee with the given ID is stored
func (r *CoffeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM coffees WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check coffee with id %s: %w", id, err)
	}

	return count > 0, nil
}

// Save inserts the coffee or replaces the row stored under its ID and returns
// the stored row. A missing ID is generated before the write.
func (r *CoffeeRepository) Save(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error) {
	coffee.EnsureID()

	if _, err := r.db.ExecContext(ctx, r.dialect.Upsert, coffee.ID, coffee.Name); err != nil {
		return nil, fmt.Errorf("failed to save coffee with id %s: %w", coffee.ID, err)
	}

	// Neither dialect returns the written row, so read it back
	return r.FindByID(ctx, coffee.ID)
}

// DeleteByID removes the coffee with the given ID; absent IDs are ignored
func (r *CoffeeRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM coffees WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete coffee with id %s: %w", id, err)
	}

	return nil
}
