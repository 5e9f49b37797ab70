package memory

import (
	"context"
	"slices"
	"sync"

	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Repository is an in-memory contract.Repository evaluating specifications
// with Evaluate. It is meant for tests and local tooling.
type Repository[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(*T) uuid.UUID
}

var _ contract.Repository[struct{}] = (*Repository[struct{}])(nil)

func NewRepository[T any](id func(*T) uuid.UUID, seed ...T) *Repository[T] {
	return &Repository[T]{
		items: slices.Clone(seed),
		id:    id,
	}
}

func (r *Repository[T]) snapshot() Query[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return From(r.items)
}

func (r *Repository[T]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.items, func(item T) bool { return r.id(&item) == id })
}

func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		item := r.items[i]
		return &item, nil
	}
	return nil, nil
}

func (r *Repository[T]) ListAll(ctx context.Context) ([]*T, error) {
	items, err := r.snapshot().List()
	if err != nil {
		return nil, err
	}
	return pointers(items), nil
}

func (r *Repository[T]) GetEntityWithSpec(ctx context.Context, spec specification.Spec[T]) (*T, error) {
	items, err := Evaluate(r.snapshot(), spec).Take(1).List()
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (r *Repository[T]) ListWithSpec(ctx context.Context, spec specification.Spec[T]) ([]*T, error) {
	items, err := Evaluate(r.snapshot(), spec).List()
	if err != nil {
		return nil, err
	}
	return pointers(items), nil
}

func (r *Repository[T]) Count(ctx context.Context, spec specification.Spec[T]) (int64, error) {
	n, err := ApplyCriteria(r.snapshot(), spec).Count()
	return int64(n), err
}

func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *entity)
	return nil
}

func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(r.id(entity)); i >= 0 {
		r.items[i] = *entity
		return nil
	}
	r.items = append(r.items, *entity)
	return nil
}

func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(r.id(entity)); i >= 0 {
		r.items = slices.Delete(r.items, i, i+1)
	}
	return nil
}

func (r *Repository[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0, nil
}

// ProjectionReader is an in-memory contract.ProjectionReader over a Repository.
type ProjectionReader[T, R any] struct {
	repo *Repository[T]
}

func NewProjectionReader[T, R any](repo *Repository[T]) *ProjectionReader[T, R] {
	return &ProjectionReader[T, R]{repo: repo}
}

func (p *ProjectionReader[T, R]) ListProjected(ctx context.Context, spec specification.ProjectionSpec[T, R]) ([]R, error) {
	return EvaluateProjection(p.repo.snapshot(), spec).List()
}

func pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
