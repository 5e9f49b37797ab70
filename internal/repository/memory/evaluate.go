package memory

import "storefront-be/internal/repository/specification"

// Evaluate applies spec to query in the same order as the GORM evaluator:
// criteria, ascending order, descending order, distinct, paging, typed
// includes, string includes.
func Evaluate[T any](query Query[T], spec specification.Spec[T]) Query[T] {
	if err := spec.Err(); err != nil {
		return query.fail(err)
	}

	query = ApplyCriteria(query, spec)
	query = applyOrdering(query, spec)

	if spec.IsDistinct() {
		query = query.Distinct()
	}

	if spec.IsPagingEnabled() {
		query = query.Skip(spec.Skip()).Take(spec.Take())
	}

	return applyIncludes(query, spec)
}

// EvaluateProjection applies a projecting spec. Distinct applies to the
// projected items; paging is applied to the entity query, which is then
// discarded, so the returned query is not paged.
func EvaluateProjection[T, R any](query Query[T], spec specification.ProjectionSpec[T, R]) Query[R] {
	if err := spec.Err(); err != nil {
		return Query[R]{load: func() ([]R, error) { return nil, err }}
	}

	query = ApplyCriteria[T](query, spec)
	query = applyOrdering[T](query, spec)
	query = applyIncludes[T](query, spec)

	selection, ok := spec.Select()
	if !ok {
		return Cast[T, R](query)
	}

	selectQuery := Select(query, selection)

	if spec.IsDistinct() {
		selectQuery = selectQuery.Distinct()
	}

	if spec.IsPagingEnabled() {
		_ = query.Skip(spec.Skip()).Take(spec.Take())
	}

	return selectQuery
}

func ApplyCriteria[T any](query Query[T], spec specification.Spec[T]) Query[T] {
	if criteria, ok := spec.Criteria(); ok {
		return query.Where(criteria)
	}
	return query
}

func applyOrdering[T any](query Query[T], spec specification.Spec[T]) Query[T] {
	if key := spec.OrderBy(); key != nil {
		query = query.OrderBy(key)
	}
	if key := spec.OrderByDescending(); key != nil {
		query = query.OrderByDescending(key)
	}
	return query
}

func applyIncludes[T any](query Query[T], spec specification.Spec[T]) Query[T] {
	for _, include := range spec.Includes() {
		query = query.Include(include.String())
	}
	for _, include := range spec.IncludeStrings() {
		query = query.Include(include)
	}
	return query
}
