package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CameronXie/coffee-api/internal/domain"
	"github.com/CameronXie/coffee-api/internal/repository"
)

const createCoffeesTable = `CREATE TABLE IF NOT EXISTS coffees (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
)`

// CoffeeRepository provides database operations for coffees
type CoffeeRepository struct {
	pool *pgxpool.Pool
}

// NewCoffeeRepository creates a new CoffeeRepository instance
func NewCoffeeRepository(pool *pgxpool.Pool) *CoffeeRepository {
	return &CoffeeRepository{
		pool: pool,
	}
}

// Migrate creates the coffees table if it does not exist
func (r *CoffeeRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createCoffeesTable); err != nil {
		return fmt.Errorf("failed to create coffees table: %w", err)
	}

	return nil
}

// FindAll retrieves every coffee ordered by name
func (r *CoffeeRepository) FindAll(ctx context.Context) ([]domain.Coffee, error) {
	query := "SELECT id, name FROM coffees ORDER BY name, id"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query coffees: %w", err)
	}

	coffees, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Coffee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan coffees: %w", err)
	}

	return coffees, nil
}

// FindByID retrieves a coffee by its ID from the database
func (r *CoffeeRepository) FindByID(ctx context.Context, id string) (*domain.Coffee, error) {
	var coffee domain.Coffee
	query := "SELECT id, name FROM coffees WHERE id = $1"

	err := r.pool.QueryRow(ctx, query, id).Scan(&coffee.ID, &coffee.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NewCoffeeNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to retrieve coffee with id %s: %w", id, err)
	}

	return &coffee, nil
}

// ExistsByID reports whether a coffee with the given ID is stored
func (r *CoffeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM coffees WHERE id = $1)"

	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check coffee with id %s: %w", id, err)
	}

	return exists, nil
}

// Save inserts the coffee or replaces the row stored under its ID.
// A missing ID is generated before the write.
func (r *CoffeeRepository) Save(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error) {
	coffee.EnsureID()

	var saved domain.Coffee
	query := `INSERT INTO coffees (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name`

	err := r.pool.QueryRow(ctx, query, coffee.ID, coffee.Name).Scan(&saved.ID, &saved.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to save coffee with id %s: %w", coffee.ID, err)
	}

	return &saved, nil
}

// DeleteByID removes the coffee with the given ID; absent IDs are ignored
func (r *CoffeeRepository) DeleteByID(ctx context.Context, id string) error {
	query := "DELETE FROM coffees WHERE id = $1"

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete coffee with id %s: %w", id, err)
	}

	return nil
}
