package specification

import (
	"time"

	"storefront-be/internal/model"

	"github.com/google/uuid"
)

var (
	OrderID              = Field(func(o *model.Order) *uuid.UUID { return &o.Id })
	OrderDate            = Field(func(o *model.Order) *time.Time { return &o.OrderDate })
	OrderBuyerEmail      = Field(func(o *model.Order) *string { return &o.BuyerEmail })
	OrderStatus          = Field(func(o *model.Order) *string { return &o.Status })
	OrderSubtotal        = Field(func(o *model.Order) *float64 { return &o.Subtotal })
	OrderPaymentIntentID = Field(func(o *model.Order) *string { return &o.PaymentIntentId })
	OrderItems           = Field(func(o *model.Order) *[]model.OrderItem { return &o.OrderItems })
	OrderDeliveryMethod  = Field(func(o *model.Order) **model.DeliveryMethod { return &o.DeliveryMethod })
)

// OrderSpecification loads orders together with their items and delivery method.
type OrderSpecification struct {
	Base[model.Order]
}

func newOrderSpecification(criteria ...Criteria[model.Order]) *OrderSpecification {
	s := &OrderSpecification{Base: NewBase(criteria...)}
	s.AddInclude(OrderItems)
	s.AddInclude(OrderDeliveryMethod)
	return s
}

// NewOrdersForBuyerSpecification lists a buyer's orders, newest first.
func NewOrdersForBuyerSpecification(email string) *OrderSpecification {
	s := newOrderSpecification(Eq(OrderBuyerEmail, email))
	s.AddOrderByDescending(OrderDate)
	return s
}

// NewOrderForBuyerSpecification selects one of a buyer's orders with the
// ordered products loaded.
func NewOrderForBuyerSpecification(email string, id uuid.UUID) (*OrderSpecification, error) {
	s := &OrderSpecification{Base: NewBase(Eq(OrderBuyerEmail, email), Eq(OrderID, id))}
	s.AddInclude(OrderDeliveryMethod)
	err := AddThenInclude(&s.Base,
		func(o *model.Order) *[]model.OrderItem { return &o.OrderItems },
		func(i *model.OrderItem) **model.Product { return &i.Product },
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func NewOrderByPaymentIntentSpecification(paymentIntentID string) *OrderSpecification {
	return newOrderSpecification(Eq(OrderPaymentIntentID, paymentIntentID))
}

func orderFilters(params *OrderSpecParams) []Criteria[model.Order] {
	var filters []Criteria[model.Order]
	if status := params.Status(); status != "" {
		filters = append(filters, Eq(OrderStatus, status))
	}
	if search := params.Search(); search != "" {
		filters = append(filters, Contains(OrderBuyerEmail, search))
	}
	return filters
}

// NewOrderListSpecification pages over all orders, newest first.
func NewOrderListSpecification(params *OrderSpecParams) *OrderSpecification {
	s := newOrderSpecification(orderFilters(params)...)
	s.AddOrderByDescending(OrderDate)
	s.ApplyPaging(params.Skip(), params.PageSize())
	return s
}

type OrderFilterCountSpecification struct {
	Base[model.Order]
}

func NewOrderFilterCountSpecification(params *OrderSpecParams) *OrderFilterCountSpecification {
	return &OrderFilterCountSpecification{Base: NewBase(orderFilters(params)...)}
}

// OrderSummarySpecification projects a buyer's orders onto model.OrderSummary.
type OrderSummarySpecification struct {
	BaseProjection[model.Order, model.OrderSummary]
}

func NewOrderSummarySpecification(email string) *OrderSummarySpecification {
	s := &OrderSummarySpecification{
		BaseProjection: NewBaseProjection[model.Order, model.OrderSummary](Eq(OrderBuyerEmail, email)),
	}
	s.AddOrderByDescending(OrderDate)
	s.AddSelect(Project[model.Order, model.OrderSummary](func(o *model.Order) model.OrderSummary {
		return model.OrderSummary{
			Id:         o.Id,
			OrderDate:  o.OrderDate,
			BuyerEmail: o.BuyerEmail,
			Status:     o.Status,
			Subtotal:   o.Subtotal,
		}
	}, OrderID, OrderDate, OrderBuyerEmail, OrderStatus, OrderSubtotal))
	return s
}
