package memory

import (
	"reflect"
	"slices"

	"storefront-be/internal/repository/specification"
)

// Query is a lazily evaluated in-memory collection. Each operation returns a
// new Query; nothing runs until List or Count is called.
type Query[T any] struct {
	load     func() ([]T, error)
	includes []string
}

// From returns a query over a copy of items.
func From[T any](items []T) Query[T] {
	snapshot := slices.Clone(items)
	return Query[T]{load: func() ([]T, error) {
		return slices.Clone(snapshot), nil
	}}
}

func (q Query[T]) then(step func([]T) ([]T, error)) Query[T] {
	load := q.load
	return Query[T]{
		includes: q.includes,
		load: func() ([]T, error) {
			items, err := Query[T]{load: load}.List()
			if err != nil {
				return nil, err
			}
			return step(items)
		},
	}
}

func (q Query[T]) fail(err error) Query[T] {
	return Query[T]{includes: q.includes, load: func() ([]T, error) { return nil, err }}
}

func (q Query[T]) Where(c specification.Criteria[T]) Query[T] {
	return q.then(func(items []T) ([]T, error) {
		out := make([]T, 0, len(items))
		for i := range items {
			ok, err := c.Matches(&items[i])
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, items[i])
			}
		}
		return out, nil
	})
}

// OrderBy sorts by key. The sort is stable, so a previous ordering only
// breaks ties.
func (q Query[T]) OrderBy(key specification.Selector[T]) Query[T] {
	return q.sortBy(key, false)
}

func (q Query[T]) OrderByDescending(key specification.Selector[T]) Query[T] {
	return q.sortBy(key, true)
}

func (q Query[T]) sortBy(key specification.Selector[T], desc bool) Query[T] {
	return q.then(func(items []T) ([]T, error) {
		keys := make([]any, len(items))
		for i := range items {
			v, err := key.Value(&items[i])
			if err != nil {
				return nil, err
			}
			keys[i] = v
		}

		idx := make([]int, len(items))
		for i := range idx {
			idx[i] = i
		}
		var cmpErr error
		slices.SortStableFunc(idx, func(a, b int) int {
			c, err := compareValues(keys[a], keys[b])
			if err != nil && cmpErr == nil {
				cmpErr = err
			}
			if desc {
				return -c
			}
			return c
		})
		if cmpErr != nil {
			return nil, cmpErr
		}

		out := make([]T, len(items))
		for i, j := range idx {
			out[i] = items[j]
		}
		return out, nil
	})
}

// Distinct removes items deeply equal to an earlier one, keeping first occurrences.
func (q Query[T]) Distinct() Query[T] {
	return q.then(func(items []T) ([]T, error) {
		out := make([]T, 0, len(items))
		for _, item := range items {
			if !slices.ContainsFunc(out, func(seen T) bool { return reflect.DeepEqual(seen, item) }) {
				out = append(out, item)
			}
		}
		return out, nil
	})
}

// Skip drops the first n items; a negative n skips nothing.
func (q Query[T]) Skip(n int) Query[T] {
	return q.then(func(items []T) ([]T, error) {
		n := max(n, 0)
		if n >= len(items) {
			return []T{}, nil
		}
		return items[n:], nil
	})
}

// Take keeps at most n items; a negative n keeps nothing.
func (q Query[T]) Take(n int) Query[T] {
	return q.then(func(items []T) ([]T, error) {
		n := max(n, 0)
		if n >= len(items) {
			return items, nil
		}
		return items[:n], nil
	})
}

// Include records an eager-load path. In-memory items already hold their
// related data, so the path only shows up in Includes.
func (q Query[T]) Include(path string) Query[T] {
	includes := make([]string, 0, len(q.includes)+1)
	includes = append(includes, q.includes...)
	return Query[T]{load: q.load, includes: append(includes, path)}
}

func (q Query[T]) Includes() []string {
	return slices.Clone(q.includes)
}

// List executes the query.
func (q Query[T]) List() ([]T, error) {
	if q.load == nil {
		return []T{}, nil
	}
	return q.load()
}

func (q Query[T]) Count() (int, error) {
	items, err := q.List()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Select maps every item of q through p.
// A projection built from an invalid member fails the query.
func Select[T, R any](q Query[T], p specification.Projection[T, R]) Query[R] {
	if err := p.Err(); err != nil {
		return Query[R]{includes: q.includes, load: func() ([]R, error) { return nil, err }}
	}
	load := q.load
	return Query[R]{
		includes: q.includes,
		load: func() ([]R, error) {
			items, err := Query[T]{load: load}.List()
			if err != nil {
				return nil, err
			}
			out := make([]R, len(items))
			for i := range items {
				out[i] = p.Map(&items[i])
			}
			return out, nil
		},
	}
}

// Cast converts every item of q to R. It fails with
// specification.ErrIncompatibleProjection unless T is convertible to R.
func Cast[T, R any](q Query[T]) Query[R] {
	if err := specification.CheckCoercion[T, R](); err != nil {
		return Query[R]{includes: q.includes, load: func() ([]R, error) { return nil, err }}
	}
	load := q.load
	to := reflect.TypeFor[R]()
	return Query[R]{
		includes: q.includes,
		load: func() ([]R, error) {
			items, err := Query[T]{load: load}.List()
			if err != nil {
				return nil, err
			}
			out := make([]R, len(items))
			for i := range items {
				out[i] = reflect.ValueOf(&items[i]).Elem().Convert(to).Interface().(R)
			}
			return out, nil
		},
	}
}
