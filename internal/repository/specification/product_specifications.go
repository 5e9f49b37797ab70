package specification

import (
	"storefront-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

var (
	ProductID         = Field(func(p *model.Product) *uuid.UUID { return &p.Id })
	ProductName       = Field(func(p *model.Product) *string { return &p.Name })
	ProductPrice      = Field(func(p *model.Product) *float64 { return &p.Price })
	ProductBrand      = Field(func(p *model.Product) *string { return &p.Brand })
	ProductType       = Field(func(p *model.Product) *string { return &p.Type })
	ProductIsActive   = Field(func(p *model.Product) *bool { return &p.IsActive })
	ProductAttributes = Field(func(p *model.Product) *datatypes.JSON { return &p.Attributes })
)

// productFilters is shared by the listing and its count so both see the same rows.
func productFilters(params *ProductSpecParams) []Criteria[model.Product] {
	var filters []Criteria[model.Product]
	if search := params.Search(); search != "" {
		filters = append(filters, Contains(ProductName, search))
	}
	if brands := params.Brands(); len(brands) > 0 {
		filters = append(filters, In(ProductBrand, brands...))
	}
	if types := params.Types(); len(types) > 0 {
		filters = append(filters, In(ProductType, types...))
	}
	return filters
}

// ProductSpecification lists a page of products filtered by brand, type and search term.
type ProductSpecification struct {
	Base[model.Product]
}

func NewProductSpecification(params *ProductSpecParams) *ProductSpecification {
	s := &ProductSpecification{Base: NewBase(productFilters(params)...)}

	switch params.Sort() {
	case SortPriceAsc:
		s.AddOrderBy(ProductPrice)
	case SortPriceDesc:
		s.AddOrderByDescending(ProductPrice)
	default:
		s.AddOrderBy(ProductName)
	}

	s.ApplyPaging(params.Skip(), params.PageSize())
	return s
}

// ProductFilterCountSpecification counts the products a ProductSpecification pages over.
type ProductFilterCountSpecification struct {
	Base[model.Product]
}

func NewProductFilterCountSpecification(params *ProductSpecParams) *ProductFilterCountSpecification {
	return &ProductFilterCountSpecification{Base: NewBase(productFilters(params)...)}
}

type ProductByIDSpecification struct {
	Base[model.Product]
}

func NewProductByIDSpecification(id uuid.UUID) *ProductByIDSpecification {
	return &ProductByIDSpecification{Base: NewBase(Eq(ProductID, id))}
}

// ActiveProductsWithAttributeSpecification lists active products whose attributes carry key.
type ActiveProductsWithAttributeSpecification struct {
	Base[model.Product]
}

func NewActiveProductsWithAttributeSpecification(key string) *ActiveProductsWithAttributeSpecification {
	s := &ActiveProductsWithAttributeSpecification{
		Base: NewBase(Eq(ProductIsActive, true), JSONHasKey(ProductAttributes, key)),
	}
	s.AddOrderBy(ProductName)
	return s
}

// BrandListSpecification projects products onto their distinct brands.
type BrandListSpecification struct {
	BaseProjection[model.Product, string]
}

func NewBrandListSpecification() *BrandListSpecification {
	s := &BrandListSpecification{BaseProjection: NewBaseProjection[model.Product, string]()}
	s.AddSelect(ProjectField(ProductBrand))
	s.AddOrderBy(ProductBrand)
	s.ApplyDistinct()
	return s
}

// TypeListSpecification projects products onto their distinct types.
type TypeListSpecification struct {
	BaseProjection[model.Product, string]
}

func NewTypeListSpecification() *TypeListSpecification {
	s := &TypeListSpecification{BaseProjection: NewBaseProjection[model.Product, string]()}
	s.AddSelect(ProjectField(ProductType))
	s.AddOrderBy(ProductType)
	s.ApplyDistinct()
	return s
}
