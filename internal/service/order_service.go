package service

import (
	"context"
	"errors"

	"storefront-be/internal/dto"
	"storefront-be/internal/mapper"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type IOrderService interface {
	GetOrdersForBuyer(ctx context.Context, email string) ([]dto.OrderResponse, error)
	GetOrderForBuyer(ctx context.Context, email string, id uuid.UUID) (*dto.OrderResponse, error)
	GetOrderByPaymentIntent(ctx context.Context, paymentIntentId string) (*dto.OrderResponse, error)
	GetOrders(ctx context.Context, params *specification.OrderSpecParams) (*dto.Pagination[dto.OrderResponse], error)
	GetOrderSummaries(ctx context.Context, email string) ([]dto.OrderSummaryResponse, error)
}

type orderService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	validate   *validator.Validate
	mapper     *mapper.OrderMapper
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	validate *validator.Validate,
) IOrderService {
	return &orderService{
		uowFactory: uowFactory,
		logger:     logger,
		validate:   validate,
		mapper:     mapper.NewOrderMapper(),
	}
}

func (s *orderService) validateBuyer(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		s.logger.Warn("ORDER", "Invalid buyer email", map[string]interface{}{"email": email})
		return err
	}
	return nil
}

func (s *orderService) GetOrdersForBuyer(ctx context.Context, email string) ([]dto.OrderResponse, error) {
	if err := s.validateBuyer(email); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().ListWithSpec(ctx, specification.NewOrdersForBuyerSpecification(email))
	if err != nil {
		s.logger.Error("ORDER", "Failed to list buyer orders", map[string]interface{}{"error": err.Error(), "email": email})
		return nil, err
	}
	return s.mapper.ToResponses(orders), nil
}

func (s *orderService) GetOrderForBuyer(ctx context.Context, email string, id uuid.UUID) (*dto.OrderResponse, error) {
	if err := s.validateBuyer(email); err != nil {
		return nil, err
	}

	spec, err := specification.NewOrderForBuyerSpecification(email, id)
	if err != nil {
		s.logger.Error("ORDER", "Failed to build order specification", map[string]interface{}{"error": err.Error(), "order_id": id.String()})
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().GetEntityWithSpec(ctx, spec)
	if err != nil {
		s.logger.Error("ORDER", "Failed to load order", map[string]interface{}{"error": err.Error(), "order_id": id.String()})
		return nil, err
	}
	if order == nil {
		s.logger.Warn("ORDER", "Order not found for buyer", map[string]interface{}{"email": email, "order_id": id.String()})
		return nil, ErrOrderNotFound
	}
	return s.mapper.ToResponse(order), nil
}

func (s *orderService) GetOrderByPaymentIntent(ctx context.Context, paymentIntentId string) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().GetEntityWithSpec(ctx, specification.NewOrderByPaymentIntentSpecification(paymentIntentId))
	if err != nil {
		s.logger.Error("ORDER", "Failed to load order by payment intent", map[string]interface{}{"error": err.Error(), "payment_intent_id": paymentIntentId})
		return nil, err
	}
	if order == nil {
		s.logger.Warn("ORDER", "No order for payment intent", map[string]interface{}{"payment_intent_id": paymentIntentId})
		return nil, ErrOrderNotFound
	}
	return s.mapper.ToResponse(order), nil
}

func (s *orderService) GetOrders(ctx context.Context, params *specification.OrderSpecParams) (*dto.Pagination[dto.OrderResponse], error) {
	if err := validatePaging(s.validate, &params.SpecParams); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.OrderRepository()

	orders, err := repo.ListWithSpec(ctx, specification.NewOrderListSpecification(params))
	if err != nil {
		s.logger.Error("ORDER", "Failed to list orders", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	total, err := repo.Count(ctx, specification.NewOrderFilterCountSpecification(params))
	if err != nil {
		s.logger.Error("ORDER", "Failed to count orders", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.logger.Debug("ORDER", "Order page loaded", map[string]interface{}{
		"page":  params.PageNumber(),
		"count": len(orders),
		"total": total,
	})
	return &dto.Pagination[dto.OrderResponse]{
		Data:     s.mapper.ToResponses(orders),
		Page:     params.PageNumber(),
		PageSize: params.PageSize(),
		Total:    total,
	}, nil
}

func (s *orderService) GetOrderSummaries(ctx context.Context, email string) ([]dto.OrderSummaryResponse, error) {
	if err := s.validateBuyer(email); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	summaries, err := uow.OrderSummaryReader().ListProjected(ctx, specification.NewOrderSummarySpecification(email))
	if err != nil {
		s.logger.Error("ORDER", "Failed to list order summaries", map[string]interface{}{"error": err.Error(), "email": email})
		return nil, err
	}
	return s.mapper.ToSummaryResponses(summaries), nil
}
