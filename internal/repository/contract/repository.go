package contract

import (
	"context"

	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Repository is the generic persistence contract shared by every aggregate.
// Lookups that find nothing return (nil, nil).
type Repository[T any] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	ListAll(ctx context.Context) ([]*T, error)
	GetEntityWithSpec(ctx context.Context, spec specification.Spec[T]) (*T, error)
	ListWithSpec(ctx context.Context, spec specification.Spec[T]) ([]*T, error)
	Count(ctx context.Context, spec specification.Spec[T]) (int64, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProjectionReader lists T entities reshaped into R.
type ProjectionReader[T, R any] interface {
	ListProjected(ctx context.Context, spec specification.ProjectionSpec[T, R]) ([]R, error)
}
