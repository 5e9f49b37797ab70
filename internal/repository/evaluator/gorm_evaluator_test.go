package evaluator

import (
	"testing"

	"storefront-be/internal/model"
	"storefront-be/internal/repository/specification"
	"storefront-be/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := database.NewGormDBFromConn(conn, logger.Silent)
	require.NoError(t, err)
	return db.Session(&gorm.Session{DryRun: true})
}

// render builds the SQL of query without executing it.
func render[R any](query *gorm.DB) *gorm.Statement {
	var dest []R
	return query.Find(&dest).Statement
}

func limitOf(t *testing.T, stmt *gorm.Statement) (clause.Limit, bool) {
	t.Helper()
	c, ok := stmt.Clauses["LIMIT"]
	if !ok {
		return clause.Limit{}, false
	}
	limit, ok := c.Expression.(clause.Limit)
	require.True(t, ok)
	return limit, true
}

func orderColumns(t *testing.T, stmt *gorm.Statement) []clause.OrderByColumn {
	t.Helper()
	c, ok := stmt.Clauses["ORDER BY"]
	if !ok {
		return nil
	}
	orderBy, ok := c.Expression.(clause.OrderBy)
	require.True(t, ok)
	return orderBy.Columns
}

type productSpec struct {
	specification.Base[model.Product]
}

type brandSpec struct {
	specification.BaseProjection[model.Product, string]
}

func TestGetQueryWithoutClauses(t *testing.T) {
	db := newDryRunDB(t)
	spec := &productSpec{Base: specification.NewBase[model.Product]()}

	stmt := render[model.Product](GetQuery[model.Product](db.Model(&model.Product{}), spec))
	require.NoError(t, stmt.Error)

	plain := render[model.Product](db.Model(&model.Product{}))
	assert.Equal(t, plain.SQL.String(), stmt.SQL.String())
	assert.Empty(t, stmt.Preloads)
}

func TestGetQueryAppliesClauses(t *testing.T) {
	db := newDryRunDB(t)

	params := &specification.ProductSpecParams{}
	params.SetSearch("Board")
	params.SetBrands("Angular,React")
	params.SetSort(specification.SortPriceDesc)
	params.SetPageNumber(3)
	params.SetPageSize(5)

	query := GetQuery[model.Product](db.Model(&model.Product{}), specification.NewProductSpecification(params))
	stmt := render[model.Product](query)
	require.NoError(t, stmt.Error)

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `FROM "products"`)
	assert.Contains(t, sql, `LOWER("products"."name") LIKE`)
	assert.Contains(t, sql, `"products"."brand" IN (`)
	assert.Contains(t, sql, `"products"."deleted_at" IS NULL`)
	assert.Contains(t, sql, `ORDER BY "products"."price" DESC`)
	assert.Contains(t, stmt.Vars, "%board%")
	assert.Contains(t, stmt.Vars, "Angular")
	assert.Contains(t, stmt.Vars, "React")

	limit, ok := limitOf(t, stmt)
	require.True(t, ok)
	require.NotNil(t, limit.Limit)
	assert.Equal(t, 5, *limit.Limit)
	assert.Equal(t, 10, limit.Offset)
}

func TestGetQueryDescendingOrderReplacesAscending(t *testing.T) {
	db := newDryRunDB(t)
	spec := &productSpec{Base: specification.NewBase[model.Product]()}
	spec.AddOrderBy(specification.ProductName)
	spec.AddOrderByDescending(specification.ProductPrice)

	stmt := render[model.Product](GetQuery[model.Product](db.Model(&model.Product{}), spec))
	require.NoError(t, stmt.Error)

	columns := orderColumns(t, stmt)
	require.Len(t, columns, 1)
	assert.Equal(t, "price", columns[0].Column.Name)
	assert.True(t, columns[0].Desc)
	assert.NotContains(t, stmt.SQL.String(), `"products"."name"`)
}

func TestGetQueryDistinct(t *testing.T) {
	db := newDryRunDB(t)
	spec := &productSpec{Base: specification.NewBase[model.Product]()}
	spec.ApplyDistinct()

	stmt := render[model.Product](GetQuery[model.Product](db.Model(&model.Product{}), spec))
	require.NoError(t, stmt.Error)
	assert.True(t, stmt.Distinct)
	assert.Contains(t, stmt.SQL.String(), "SELECT DISTINCT *")
}

func TestGetQueryPagingIsOptIn(t *testing.T) {
	db := newDryRunDB(t)
	spec := &productSpec{Base: specification.NewBase[model.Product]()}

	stmt := render[model.Product](GetQuery[model.Product](db.Model(&model.Product{}), spec))
	_, ok := limitOf(t, stmt)
	assert.False(t, ok)
	assert.NotContains(t, stmt.SQL.String(), "LIMIT")
}

func TestGetQueryIncludesInOrder(t *testing.T) {
	db := newDryRunDB(t)

	spec, err := specification.NewOrderForBuyerSpecification("bob@test.com", uuid.New())
	require.NoError(t, err)

	query := GetQuery[model.Order](db.Model(&model.Order{}), spec)
	require.NoError(t, query.Error)

	assert.Contains(t, query.Statement.Preloads, "DeliveryMethod")
	assert.Contains(t, query.Statement.Preloads, "OrderItems.Product")
	assert.Len(t, query.Statement.Preloads, 2)
}

func TestGetQueryDeferredErrors(t *testing.T) {
	db := newDryRunDB(t)

	t.Run("untranslatable criteria", func(t *testing.T) {
		spec := &productSpec{Base: specification.NewBase(specification.Func(func(p *model.Product) bool { return true }))}
		query := GetQuery[model.Product](db.Model(&model.Product{}), spec)
		assert.ErrorIs(t, query.Error, specification.ErrNotTranslatable)
	})

	t.Run("invalid include", func(t *testing.T) {
		spec := &productSpec{Base: specification.NewBase[model.Product]()}
		spec.AddInclude(specification.Field(func(p *model.Product) *string { return new(string) }))
		query := GetQuery[model.Product](db.Model(&model.Product{}), spec)
		assert.ErrorIs(t, query.Error, specification.ErrInvalidMember)
	})

	t.Run("sort key without a column", func(t *testing.T) {
		spec := &struct{ specification.Base[model.Order] }{Base: specification.NewBase[model.Order]()}
		spec.AddOrderBy(specification.OrderItems)
		query := GetQuery[model.Order](db.Model(&model.Order{}), spec)
		assert.ErrorIs(t, query.Error, specification.ErrNotTranslatable)
	})

	t.Run("root handle is untouched", func(t *testing.T) {
		assert.NoError(t, db.Error)
	})
}

func TestGetProjectedQuery(t *testing.T) {
	db := newDryRunDB(t)

	t.Run("select then distinct", func(t *testing.T) {
		query := GetProjectedQuery[model.Product, string](db.Model(&model.Product{}), specification.NewBrandListSpecification())
		stmt := render[string](query)
		require.NoError(t, stmt.Error)

		assert.Equal(t, []string{"brand"}, stmt.Selects)
		assert.True(t, stmt.Distinct)
		sql := stmt.SQL.String()
		assert.Contains(t, sql, "SELECT DISTINCT")
		assert.Contains(t, sql, `"brand"`)
		assert.Contains(t, sql, `ORDER BY "products"."brand"`)
	})

	t.Run("paging does not reach the projected handle", func(t *testing.T) {
		spec := &brandSpec{BaseProjection: specification.NewBaseProjection[model.Product, string]()}
		spec.AddSelect(specification.ProjectField(specification.ProductBrand))
		spec.ApplyPaging(5, 5)

		stmt := render[string](GetProjectedQuery[model.Product, string](db.Model(&model.Product{}), spec))
		require.NoError(t, stmt.Error)
		_, ok := limitOf(t, stmt)
		assert.False(t, ok)
	})

	t.Run("includes are issued before projecting", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Order, model.OrderSummary]
		}{BaseProjection: specification.NewBaseProjection[model.Order, model.OrderSummary]()}
		spec.AddInclude(specification.OrderItems)
		spec.AddSelect(specification.Project[model.Order, model.OrderSummary](
			func(o *model.Order) model.OrderSummary { return model.OrderSummary{Id: o.Id} },
			specification.OrderID,
		))

		query := GetProjectedQuery[model.Order, model.OrderSummary](db.Model(&model.Order{}), spec)
		require.NoError(t, query.Error)
		assert.Contains(t, query.Statement.Preloads, "OrderItems")
		assert.Equal(t, []string{"id"}, query.Statement.Selects)
	})

	t.Run("no select requires a compatible result", func(t *testing.T) {
		spec := &brandSpec{BaseProjection: specification.NewBaseProjection[model.Product, string]()}
		query := GetProjectedQuery[model.Product, string](db.Model(&model.Product{}), spec)
		assert.ErrorIs(t, query.Error, specification.ErrIncompatibleProjection)
	})

	t.Run("no select with the entity type", func(t *testing.T) {
		spec := &struct {
			specification.BaseProjection[model.Product, model.Product]
		}{BaseProjection: specification.NewBaseProjection[model.Product, model.Product]()}
		query := GetProjectedQuery[model.Product, model.Product](db.Model(&model.Product{}), spec)
		assert.NoError(t, query.Error)
	})
}

func TestApplyCriteriaIgnoresPagingAndOrdering(t *testing.T) {
	db := newDryRunDB(t)

	params := &specification.ProductSpecParams{}
	params.SetTypes("Boards")
	params.SetPageNumber(2)

	query := ApplyCriteria[model.Product](db.Model(&model.Product{}), specification.NewProductSpecification(params))
	stmt := render[model.Product](query)
	require.NoError(t, stmt.Error)

	assert.Contains(t, stmt.SQL.String(), `"products"."type" IN (`)
	_, ok := limitOf(t, stmt)
	assert.False(t, ok)
	assert.Empty(t, orderColumns(t, stmt))
}

func TestApplyCriteriaSearchEscapesWildcards(t *testing.T) {
	db := newDryRunDB(t)

	params := &specification.ProductSpecParams{}
	params.SetSearch("50%_")

	query := ApplyCriteria[model.Product](db.Model(&model.Product{}), specification.NewProductSpecification(params))
	stmt := render[model.Product](query)
	require.NoError(t, stmt.Error)

	assert.Contains(t, stmt.SQL.String(), `LOWER("products"."name") LIKE $1 ESCAPE '\'`)
	assert.Contains(t, stmt.Vars, `%50\%\_%`)
}
