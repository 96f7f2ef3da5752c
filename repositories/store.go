package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists for the requested identifier
var ErrNotFound = errors.New("record not found")

// Store is the generic record store over one entity type keyed by a numeric identifier.
// Create assigns the identifier on the passed entity.
type Store[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id int) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}
