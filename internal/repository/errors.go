package repository

import (
	"fmt"
)

// CoffeeResource is the resource name reported for coffee lookups
const CoffeeResource = "coffee"

// NotFoundError is returned by stores when no record matches a lookup.
// Handlers match it with errors.As to answer 404.
type NotFoundError struct {
	Resource string
	Key      string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %s not found", e.Resource, e.Key, e.Value)
}

// NewCoffeeNotFoundError reports a coffee missing for the given ID
func NewCoffeeNotFoundError(id string) *NotFoundError {
	return &NotFoundError{Resource: CoffeeResource, Key: "id", Value: id}
}
