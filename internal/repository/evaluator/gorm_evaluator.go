package evaluator

import (
	"storefront-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetQuery applies spec to query and returns the resulting handle without
// executing it. Clauses are applied in a fixed order: criteria, ascending
// order, descending order, distinct, paging, typed includes, string includes.
//
// Problems found while translating are attached to the returned handle and
// surface when it is executed.
func GetQuery[T any](query *gorm.DB, spec specification.Spec[T]) *gorm.DB {
	if err := spec.Err(); err != nil {
		return withError(query, err)
	}

	query = ApplyCriteria(query, spec)
	query = applyOrdering(query, spec)

	// Distinct without select columns is not rendered.
	if spec.IsDistinct() {
		query = query.Distinct("*")
	}

	if spec.IsPagingEnabled() {
		query = query.Offset(spec.Skip()).Limit(spec.Take())
	}

	return applyIncludes(query, spec)
}

// GetProjectedQuery applies a projecting spec to query. Includes are issued
// on the entity query before projecting, and distinct applies to the
// projected rows.
//
// Paging is applied to the entity query, which is then discarded: the
// returned projected handle is not paged.
func GetProjectedQuery[T, R any](query *gorm.DB, spec specification.ProjectionSpec[T, R]) *gorm.DB {
	if err := spec.Err(); err != nil {
		return withError(query, err)
	}

	query = ApplyCriteria[T](query, spec)
	query = applyOrdering[T](query, spec)
	query = applyIncludes[T](query, spec)

	selection, ok := spec.Select()
	if !ok {
		if err := specification.CheckCoercion[T, R](); err != nil {
			return withError(query, err)
		}
		return query
	}

	columns, err := selection.Columns()
	if err != nil {
		return withError(query, err)
	}
	selectQuery := query.Session(&gorm.Session{}).Select(columns)

	if spec.IsDistinct() {
		selectQuery = selectQuery.Distinct()
	}

	if spec.IsPagingEnabled() {
		_ = query.Offset(spec.Skip()).Limit(spec.Take())
	}

	return selectQuery
}

// ApplyCriteria applies only the filter of spec, for counting the rows a
// paged query walks over.
func ApplyCriteria[T any](query *gorm.DB, spec specification.Spec[T]) *gorm.DB {
	criteria, ok := spec.Criteria()
	if !ok {
		return query
	}
	expr, err := criteria.Expression()
	if err != nil {
		return withError(query, err)
	}
	return query.Where(expr)
}

// applyOrdering issues each sort key as a top-level order that replaces any
// previous one.
func applyOrdering[T any](query *gorm.DB, spec specification.Spec[T]) *gorm.DB {
	if key := spec.OrderBy(); key != nil {
		query = orderBy(query, key, false)
	}
	if key := spec.OrderByDescending(); key != nil {
		query = orderBy(query, key, true)
	}
	return query
}

func orderBy[T any](query *gorm.DB, key specification.Selector[T], desc bool) *gorm.DB {
	column, err := key.Column()
	if err != nil {
		return withError(query, err)
	}
	return query.Order(clause.OrderByColumn{Column: column, Desc: desc, Reorder: true})
}

func applyIncludes[T any](query *gorm.DB, spec specification.Spec[T]) *gorm.DB {
	for _, include := range spec.Includes() {
		query = query.Preload(include.String())
	}
	for _, include := range spec.IncludeStrings() {
		query = query.Preload(include)
	}
	return query
}

// withError attaches err to a copy of query so a shared root handle is left untouched.
func withError(query *gorm.DB, err error) *gorm.DB {
	tx := query.Session(&gorm.Session{})
	_ = tx.AddError(err)
	return tx
}
