package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CameronXie/coffee-api/internal/domain"
)

// DefaultCoffeeNames lists the coffees inserted into an empty store
var DefaultCoffeeNames = []string{
	"Cafe Cereza",
	"Cafe Ganador",
	"Cafe Lareno",
	"Cafe Tres Pontas",
}

// CoffeeStore defines the repository operations needed for seeding
type CoffeeStore interface {
	FindAll(ctx context.Context) ([]domain.Coffee, error)
	Save(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error)
}

// Seeder populates an empty store with the default coffees
type Seeder struct {
	store  CoffeeStore
	names  []string
	logger *slog.Logger
}

// Option configures a Seeder
type Option func(*Seeder)

// WithNames overrides the coffee names to seed
func WithNames(names ...string) Option {
	return func(s *Seeder) {
		s.names = names
	}
}

// NewSeeder creates a new Seeder instance
func NewSeeder(store CoffeeStore, logger *slog.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		store:  store,
		names:  DefaultCoffeeNames,
		logger: logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Seed inserts the configured coffees when the store holds none, and returns how many were inserted.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	existing, err := s.store.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list_coffees: %w", err)
	}

	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "seed_skipped", "existing", len(existing))
		return 0, nil
	}

	for i, name := range s.names {
		if _, err := s.store.Save(ctx, domain.NewCoffee(name)); err != nil {
			return i, fmt.Errorf("save_coffee %q: %w", name, err)
		}
	}

	s.logger.InfoContext(ctx, "seed_completed", "inserted", len(s.names))
	return len(s.names), nil
}
