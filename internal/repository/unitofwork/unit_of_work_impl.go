package unitofwork

import (
	"context"
	"fmt"

	"storefront-be/internal/model"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ProductRepository() contract.Repository[model.Product] {
	return implementation.NewGenericRepository[model.Product](u.getDB())
}

func (u *UnitOfWorkImpl) DeliveryMethodRepository() contract.Repository[model.DeliveryMethod] {
	return implementation.NewGenericRepository[model.DeliveryMethod](u.getDB())
}

func (u *UnitOfWorkImpl) OrderRepository() contract.Repository[model.Order] {
	return implementation.NewGenericRepository[model.Order](u.getDB())
}

func (u *UnitOfWorkImpl) ProductBrandReader() contract.ProjectionReader[model.Product, string] {
	return implementation.NewProjectionReader[model.Product, string](u.getDB())
}

func (u *UnitOfWorkImpl) ProductTypeReader() contract.ProjectionReader[model.Product, string] {
	return implementation.NewProjectionReader[model.Product, string](u.getDB())
}

func (u *UnitOfWorkImpl) OrderSummaryReader() contract.ProjectionReader[model.Order, model.OrderSummary] {
	return implementation.NewProjectionReader[model.Order, model.OrderSummary](u.getDB())
}
