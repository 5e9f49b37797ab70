package specification

import (
	"testing"

	"storefront-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductSpecificationSorting(t *testing.T) {
	tests := []struct {
		sort     string
		wantAsc  string
		wantDesc string
	}{
		{sort: "", wantAsc: "Name"},
		{sort: "unknown", wantAsc: "Name"},
		{sort: SortPriceAsc, wantAsc: "Price"},
		{sort: SortPriceDesc, wantDesc: "Price"},
	}

	for _, tt := range tests {
		t.Run("sort="+tt.sort, func(t *testing.T) {
			params := &ProductSpecParams{}
			params.SetSort(tt.sort)
			spec := NewProductSpecification(params)

			if tt.wantAsc != "" {
				require.NotNil(t, spec.OrderBy())
				assert.Equal(t, tt.wantAsc, spec.OrderBy().Name())
			} else {
				assert.Nil(t, spec.OrderBy())
			}
			if tt.wantDesc != "" {
				require.NotNil(t, spec.OrderByDescending())
				assert.Equal(t, tt.wantDesc, spec.OrderByDescending().Name())
			} else {
				assert.Nil(t, spec.OrderByDescending())
			}
		})
	}
}

func TestNewProductSpecificationPaging(t *testing.T) {
	params := &ProductSpecParams{}
	params.SetPageNumber(3)
	params.SetPageSize(5)

	spec := NewProductSpecification(params)
	assert.True(t, spec.IsPagingEnabled())
	assert.Equal(t, 10, spec.Skip())
	assert.Equal(t, 5, spec.Take())

	count := NewProductFilterCountSpecification(params)
	assert.False(t, count.IsPagingEnabled())
	assert.Nil(t, count.OrderBy())
}

func TestProductFilters(t *testing.T) {
	params := &ProductSpecParams{}
	params.SetSearch("BOARD")
	params.SetBrands("Angular,NetCore")
	params.SetTypes("Boards")

	spec := NewProductSpecification(params)
	criteria, ok := spec.Criteria()
	require.True(t, ok)

	tests := []struct {
		name    string
		product model.Product
		want    bool
	}{
		{name: "all filters match", product: model.Product{Name: "Core Board Speed Rush", Brand: "NetCore", Type: "Boards"}, want: true},
		{name: "wrong brand", product: model.Product{Name: "React Board", Brand: "React", Type: "Boards"}, want: false},
		{name: "wrong type", product: model.Product{Name: "Angular Board Hat", Brand: "Angular", Type: "Hats"}, want: false},
		{name: "search miss", product: model.Product{Name: "Angular Boots", Brand: "Angular", Type: "Boards"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := criteria.Matches(&tt.product)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no filters", func(t *testing.T) {
		_, ok := NewProductSpecification(&ProductSpecParams{}).Criteria()
		assert.False(t, ok)
	})
}

func TestNewProductByIDSpecification(t *testing.T) {
	id := uuid.New()
	criteria, ok := NewProductByIDSpecification(id).Criteria()
	require.True(t, ok)

	got, err := criteria.Matches(&model.Product{BaseEntity: model.BaseEntity{Id: id}})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = criteria.Matches(&model.Product{BaseEntity: model.BaseEntity{Id: uuid.New()}})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestListProjectionSpecifications(t *testing.T) {
	tests := []struct {
		name       string
		spec       *BaseProjection[model.Product, string]
		wantColumn string
		wantOrder  string
	}{
		{name: "brands", spec: &NewBrandListSpecification().BaseProjection, wantColumn: "brand", wantOrder: "Brand"},
		{name: "types", spec: &NewTypeListSpecification().BaseProjection, wantColumn: "type", wantOrder: "Type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.spec.IsDistinct())
			assert.False(t, tt.spec.IsPagingEnabled())
			assert.Equal(t, tt.wantOrder, tt.spec.OrderBy().Name())

			selection, ok := tt.spec.Select()
			require.True(t, ok)
			columns, err := selection.Columns()
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantColumn}, columns)
		})
	}
}

func TestOrderSpecifications(t *testing.T) {
	t.Run("buyer orders include items and delivery", func(t *testing.T) {
		spec := NewOrdersForBuyerSpecification("bob@test.com")
		assert.Equal(t, []Path{{"OrderItems"}, {"DeliveryMethod"}}, spec.Includes())
		assert.Equal(t, "OrderDate", spec.OrderByDescending().Name())
	})

	t.Run("single order loads products", func(t *testing.T) {
		id := uuid.New()
		spec, err := NewOrderForBuyerSpecification("bob@test.com", id)
		require.NoError(t, err)
		assert.Equal(t, []Path{{"DeliveryMethod"}}, spec.Includes())
		assert.Equal(t, []string{"OrderItems.Product"}, spec.IncludeStrings())

		criteria, ok := spec.Criteria()
		require.True(t, ok)
		got, err := criteria.Matches(&model.Order{BaseEntity: model.BaseEntity{Id: id}, BuyerEmail: "bob@test.com"})
		require.NoError(t, err)
		assert.True(t, got)
		got, err = criteria.Matches(&model.Order{BaseEntity: model.BaseEntity{Id: id}, BuyerEmail: "eve@test.com"})
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("list filters by status and search", func(t *testing.T) {
		params := &OrderSpecParams{}
		params.SetStatus("Pending")
		params.SetSearch("@TEST.com")
		params.SetPageSize(20)

		spec := NewOrderListSpecification(params)
		assert.True(t, spec.IsPagingEnabled())
		assert.Equal(t, 20, spec.Take())

		criteria, ok := spec.Criteria()
		require.True(t, ok)
		got, err := criteria.Matches(&model.Order{Status: model.OrderStatusPending, BuyerEmail: "bob@test.com"})
		require.NoError(t, err)
		assert.True(t, got)
		got, err = criteria.Matches(&model.Order{Status: model.OrderStatusRefunded, BuyerEmail: "bob@test.com"})
		require.NoError(t, err)
		assert.False(t, got)

		count := NewOrderFilterCountSpecification(params)
		assert.False(t, count.IsPagingEnabled())
		assert.Empty(t, count.Includes())
	})

	t.Run("summary projection", func(t *testing.T) {
		spec := NewOrderSummarySpecification("bob@test.com")
		selection, ok := spec.Select()
		require.True(t, ok)

		columns, err := selection.Columns()
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "order_date", "buyer_email", "status", "subtotal"}, columns)

		order := &model.Order{BuyerEmail: "bob@test.com", Status: model.OrderStatusPending, Subtotal: 42}
		summary := selection.Map(order)
		assert.Equal(t, "bob@test.com", summary.BuyerEmail)
		assert.Equal(t, 42.0, summary.Subtotal)
	})
}
