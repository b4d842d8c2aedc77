package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/CameronXie/coffee-api/internal/domain"
	"github.com/CameronXie/coffee-api/internal/repository"
)

// CoffeeRepository is an in-memory coffee store for development and testing
type CoffeeRepository struct {
	mu      sync.RWMutex
	coffees map[string]domain.Coffee
}

// NewCoffeeRepository creates an empty in-memory CoffeeRepository
func NewCoffeeRepository() *CoffeeRepository {
	return &CoffeeRepository{
		coffees: make(map[string]domain.Coffee),
	}
}

// FindAll returns every stored coffee ordered by name, then ID
func (r *CoffeeRepository) FindAll(ctx context.Context) ([]domain.Coffee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	coffees := make([]domain.Coffee, 0, len(r.coffees))
	for _, c := range r.coffees {
		coffees = append(coffees, c)
	}

	sort.Slice(coffees, func(i, j int) bool {
		if coffees[i].Name != coffees[j].Name {
			return coffees[i].Name < coffees[j].Name
		}
		return coffees[i].ID < coffees[j].ID
	})

	return coffees, nil
}

// FindByID returns a copy of the coffee stored under id
func (r *CoffeeRepository) FindByID(ctx context.Context, id string) (*domain.Coffee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.coffees[id]
	if !ok {
		return nil, repository.NewCoffeeNotFoundError(id)
	}

	return &c, nil
}

// ExistsByID reports whether a coffee is stored under id
func (r *CoffeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.coffees[id]
	return ok, nil
}

// Save inserts the coffee or replaces the record stored under its ID.
// A missing ID is generated before the write.
func (r *CoffeeRepository) Save(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	coffee.EnsureID()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.coffees[coffee.ID] = *coffee

	saved := *coffee
	return &saved, nil
}

// DeleteByID removes the coffee stored under id; absent IDs are ignored
func (r *CoffeeRepository) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.coffees, id)
	return nil
}
