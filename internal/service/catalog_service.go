package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"storefront-be/internal/dto"
	"storefront-be/internal/mapper"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/memory"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidSpecParams = errors.New("invalid listing parameters")
	ErrProductNotFound   = errors.New("product not found")
)

type ICatalogService interface {
	GetProducts(ctx context.Context, params *specification.ProductSpecParams) (*dto.Pagination[dto.ProductResponse], error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	GetBrands(ctx context.Context) ([]string, error)
	GetTypes(ctx context.Context) ([]string, error)
	InvalidateCache()
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ResultCache
	logger     logger.ILogger
	validate   *validator.Validate
	mapper     *mapper.ProductMapper
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.ResultCache,
	logger logger.ILogger,
	validate *validator.Validate,
) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
		validate:   validate,
		mapper:     mapper.NewProductMapper(),
	}
}

func (s *catalogService) GetProducts(ctx context.Context, params *specification.ProductSpecParams) (*dto.Pagination[dto.ProductResponse], error) {
	if err := validatePaging(s.validate, &params.SpecParams); err != nil {
		return nil, err
	}

	key := params.CacheKey()
	if cached, found := s.cache.Get(key); found {
		s.logger.Debug("CATALOG", "Product page served from cache", map[string]interface{}{"key": key})
		return clonePage(cached.(*dto.Pagination[dto.ProductResponse])), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProductRepository()

	products, err := repo.ListWithSpec(ctx, specification.NewProductSpecification(params))
	if err != nil {
		s.logger.Error("CATALOG", "Failed to list products", map[string]interface{}{"error": err.Error(), "key": key})
		return nil, err
	}

	total, err := repo.Count(ctx, specification.NewProductFilterCountSpecification(params))
	if err != nil {
		s.logger.Error("CATALOG", "Failed to count products", map[string]interface{}{"error": err.Error(), "key": key})
		return nil, err
	}

	page := &dto.Pagination[dto.ProductResponse]{
		Data:     s.mapper.ToResponses(products),
		Page:     params.PageNumber(),
		PageSize: params.PageSize(),
		Total:    total,
	}
	s.cache.Save(key, clonePage(page))

	s.logger.Debug("CATALOG", "Product page loaded", map[string]interface{}{
		"key":   key,
		"count": len(page.Data),
		"total": total,
	})
	return page, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().GetEntityWithSpec(ctx, specification.NewProductByIDSpecification(id))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.mapper.ToResponse(product), nil
}

func (s *catalogService) GetBrands(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductBrandReader().ListProjected(ctx, specification.NewBrandListSpecification())
}

func (s *catalogService) GetTypes(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductTypeReader().ListProjected(ctx, specification.NewTypeListSpecification())
}

func (s *catalogService) InvalidateCache() {
	s.cache.Flush()
	s.logger.Info("CATALOG", "Product page cache flushed", nil)
}

// maxPageNumber keeps the row offset of the last page within int32.
const maxPageNumber = math.MaxInt32 / specification.MaxPageSize

// clonePage copies page so cached entries are never shared with callers.
func clonePage[T any](page *dto.Pagination[T]) *dto.Pagination[T] {
	out := *page
	out.Data = slices.Clone(page.Data)
	return &out
}

// validatePaging rejects page sizes below one and page numbers outside
// [1, maxPageNumber]. Oversized pages are already clamped by the params.
func validatePaging(validate *validator.Validate, params *specification.SpecParams) error {
	if err := validate.Var(params.PageNumber(), fmt.Sprintf("min=1,max=%d", maxPageNumber)); err != nil {
		return fmt.Errorf("%w: page number: %v", ErrInvalidSpecParams, err)
	}
	if err := validate.Var(params.PageSize(), "min=1"); err != nil {
		return fmt.Errorf("%w: page size: %v", ErrInvalidSpecParams, err)
	}
	return nil
}
