package domain

import "github.com/google/uuid"

// Coffee represents a coffee entity with a string ID and a display name
type Coffee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCoffee creates a Coffee with a freshly generated ID
func NewCoffee(name string) *Coffee {
	return &Coffee{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// EnsureID assigns a random UUID when the coffee has no ID yet.
func (c *Coffee) EnsureID() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
}
