package mapper

import (
	"storefront-be/internal/dto"
	"storefront-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToResponse(o *model.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}

	address := o.ShippingAddress.Data()
	res := &dto.OrderResponse{
		Id:         o.Id,
		OrderDate:  o.OrderDate,
		BuyerEmail: o.BuyerEmail,
		ShippingAddress: dto.ShippingAddressResponse{
			Name:       address.Name,
			Line1:      address.Line1,
			Line2:      address.Line2,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		OrderItems:      make([]dto.OrderItemResponse, 0, len(o.OrderItems)),
		Subtotal:        o.Subtotal,
		Total:           o.Total(),
		Status:          o.Status,
		PaymentIntentId: o.PaymentIntentId,
	}

	if o.DeliveryMethod != nil {
		res.DeliveryMethod = o.DeliveryMethod.ShortName
		res.ShippingPrice = o.DeliveryMethod.Price
	}

	for _, item := range o.OrderItems {
		res.OrderItems = append(res.OrderItems, dto.OrderItemResponse{
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			PictureUrl:  item.PictureUrl,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return res
}

func (m *OrderMapper) ToResponses(orders []*model.Order) []dto.OrderResponse {
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		if r := m.ToResponse(o); r != nil {
			result = append(result, *r)
		}
	}
	return result
}

func (m *OrderMapper) ToSummaryResponses(summaries []model.OrderSummary) []dto.OrderSummaryResponse {
	result := make([]dto.OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, dto.OrderSummaryResponse{
			Id:         s.Id,
			OrderDate:  s.OrderDate,
			BuyerEmail: s.BuyerEmail,
			Status:     s.Status,
			Subtotal:   s.Subtotal,
		})
	}
	return result
}
