package implementation

import (
	"context"
	"errors"

	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/evaluator"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) contract.Repository[T] {
	return &GenericRepositoryImpl[T]{
		db: db,
	}
}

func (r *GenericRepositoryImpl[T]) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

func (r *GenericRepositoryImpl[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var m T
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *GenericRepositoryImpl[T]) ListAll(ctx context.Context) ([]*T, error) {
	var models []*T
	if err := r.query(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *GenericRepositoryImpl[T]) GetEntityWithSpec(ctx context.Context, spec specification.Spec[T]) (*T, error) {
	var m T
	if err := evaluator.GetQuery(r.query(ctx), spec).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *GenericRepositoryImpl[T]) ListWithSpec(ctx context.Context, spec specification.Spec[T]) ([]*T, error) {
	var models []*T
	if err := evaluator.GetQuery(r.query(ctx), spec).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// Count counts the rows matching the criteria of spec, ignoring its paging and ordering.
func (r *GenericRepositoryImpl[T]) Count(ctx context.Context, spec specification.Spec[T]) (int64, error) {
	var count int64
	if err := evaluator.ApplyCriteria(r.query(ctx), spec).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GenericRepositoryImpl[T]) Add(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *GenericRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Remove(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}

func (r *GenericRepositoryImpl[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.query(ctx).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type ProjectionReaderImpl[T, R any] struct {
	db *gorm.DB
}

func NewProjectionReader[T, R any](db *gorm.DB) contract.ProjectionReader[T, R] {
	return &ProjectionReaderImpl[T, R]{
		db: db,
	}
}

func (r *ProjectionReaderImpl[T, R]) ListProjected(ctx context.Context, spec specification.ProjectionSpec[T, R]) ([]R, error) {
	results := make([]R, 0)
	query := evaluator.GetProjectedQuery(r.db.WithContext(ctx).Model(new(T)), spec)
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
