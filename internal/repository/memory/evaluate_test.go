package memory

import (
	"testing"

	"storefront-be/internal/model"
	"storefront-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productCopy model.Product

var catalog = []model.Product{
	{Name: "Core Board", Brand: "NetCore", Type: "Boards", IsActive: true},
	{Name: "Angular Board", Brand: "Angular", Type: "Boards", IsActive: true},
	{Name: "React Hat", Brand: "React", Type: "Hats", IsActive: true},
	{Name: "Core Hat", Brand: "NetCore", Type: "Hats", IsActive: false},
	{Name: "Angular Boots", Brand: "Angular", Type: "Boots", IsActive: true},
}

func TestEvaluateProjectionDistinctAfterSelect(t *testing.T) {
	got, err := EvaluateProjection[model.Product, string](From(catalog), specification.NewBrandListSpecification()).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Angular", "NetCore", "React"}, got)
}

func TestEvaluateProjectionIgnoresPaging(t *testing.T) {
	spec := &struct {
		specification.BaseProjection[model.Product, string]
	}{BaseProjection: specification.NewBaseProjection[model.Product, string]()}
	spec.AddSelect(specification.ProjectField(specification.ProductName))
	spec.AddOrderBy(specification.ProductName)
	spec.ApplyPaging(1, 2)

	got, err := EvaluateProjection[model.Product, string](From(catalog), spec).List()
	require.NoError(t, err)
	assert.Len(t, got, len(catalog))
	assert.Equal(t, "Angular Board", got[0])
}

func TestEvaluateProjectionWithCriteria(t *testing.T) {
	spec := &struct {
		specification.BaseProjection[model.Product, string]
	}{BaseProjection: specification.NewBaseProjection[model.Product, string](specification.Eq(specification.ProductIsActive, false))}
	spec.AddSelect(specification.ProjectField(specification.ProductName))

	got, err := EvaluateProjection[model.Product, string](From(catalog), spec).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Core Hat"}, got)
}

func TestEvaluateProjectionWithoutSelect(t *testing.T) {
	t.Run("convertible result", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Product, productCopy]
		}{BaseProjection: specification.NewBaseProjection[model.Product, productCopy](specification.Eq(specification.ProductType, "Hats"))}

		got, err := EvaluateProjection[model.Product, productCopy](From(catalog), spec).List()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "React Hat", got[0].Name)
	})

	t.Run("incompatible result", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Product, string]
		}{BaseProjection: specification.NewBaseProjection[model.Product, string]()}

		_, err := EvaluateProjection[model.Product, string](From(catalog), spec).List()
		assert.ErrorIs(t, err, specification.ErrIncompatibleProjection)
	})

	t.Run("spec error wins over coercion", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Product, string]
		}{BaseProjection: specification.NewBaseProjection[model.Product, string]()}
		spec.AddInclude(specification.Field(func(p *model.Product) *string { return new(string) }))

		_, err := EvaluateProjection[model.Product, string](From(catalog), spec).List()
		assert.ErrorIs(t, err, specification.ErrInvalidMember)
		assert.NotErrorIs(t, err, specification.ErrIncompatibleProjection)
	})
}

func TestEvaluateProjectionInvalidSelectedMember(t *testing.T) {
	invalid := specification.Field(func(p *model.Product) *string { return nil })

	t.Run("single field", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Product, string]
		}{BaseProjection: specification.NewBaseProjection[model.Product, string]()}
		spec.AddSelect(specification.ProjectField(invalid))

		var err error
		assert.NotPanics(t, func() {
			_, err = EvaluateProjection[model.Product, string](From(catalog), spec).List()
		})
		assert.ErrorIs(t, err, specification.ErrInvalidMember)
	})

	t.Run("mapped projection", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Product, string]
		}{BaseProjection: specification.NewBaseProjection[model.Product, string]()}
		spec.AddSelect(specification.Project(func(p *model.Product) string { return p.Name }, specification.Selector[model.Product](invalid)))

		_, err := EvaluateProjection[model.Product, string](From(catalog), spec).List()
		assert.ErrorIs(t, err, specification.ErrInvalidMember)
	})
}

func TestEvaluateProjectionKeepsIncludes(t *testing.T) {
	spec := specification.NewOrderSummarySpecification("bob@test.com")
	spec.AddInclude(specification.OrderItems)

	orders := []model.Order{
		{BuyerEmail: "bob@test.com", Subtotal: 10},
		{BuyerEmail: "eve@test.com", Subtotal: 20},
	}
	query := EvaluateProjection[model.Order, model.OrderSummary](From(orders), spec)
	assert.Equal(t, []string{"OrderItems"}, query.Includes())

	got, err := query.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].Subtotal)
}
