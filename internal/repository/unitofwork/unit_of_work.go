package unitofwork

import (
	"context"

	"storefront-be/internal/model"
	"storefront-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.Repository[model.Product]
	DeliveryMethodRepository() contract.Repository[model.DeliveryMethod]
	OrderRepository() contract.Repository[model.Order]

	ProductBrandReader() contract.ProjectionReader[model.Product, string]
	ProductTypeReader() contract.ProjectionReader[model.Product, string]
	OrderSummaryReader() contract.ProjectionReader[model.Order, model.OrderSummary]
}
