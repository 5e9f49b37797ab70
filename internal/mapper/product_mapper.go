package mapper

import (
	"encoding/json"

	"storefront-be/internal/dto"
	"storefront-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToResponse(p *model.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}

	var attributes json.RawMessage
	if len(p.Attributes) > 0 {
		attributes = json.RawMessage(p.Attributes)
	}

	return &dto.ProductResponse{
		Id:              p.Id,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		PictureUrl:      p.PictureUrl,
		Type:            p.Type,
		Brand:           p.Brand,
		QuantityInStock: p.QuantityInStock,
		Attributes:      attributes,
	}
}

func (m *ProductMapper) ToResponses(products []*model.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if r := m.ToResponse(p); r != nil {
			result = append(result, *r)
		}
	}
	return result
}
