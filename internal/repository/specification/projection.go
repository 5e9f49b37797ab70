package specification

// Projection reshapes a T into an R. Columns lists the members the SQL form
// selects; Map is the in-memory form.
type Projection[T, R any] struct {
	columns []Selector[T]
	mapFn   func(*T) R
	err     error
}

// Project builds a projection from an in-memory mapping and the members the
// database must select. Selected column names must match R's fields.
func Project[T, R any](mapFn func(*T) R, columns ...Selector[T]) Projection[T, R] {
	p := Projection[T, R]{columns: columns, mapFn: mapFn}
	for _, sel := range columns {
		if m, ok := sel.(interface{ Err() error }); ok && m.Err() != nil {
			p.err = m.Err()
			break
		}
	}
	return p
}

// ProjectField projects T onto a single member.
func ProjectField[T, V any](m Member[T, V]) Projection[T, V] {
	return Projection[T, V]{
		columns: []Selector[T]{m},
		mapFn: func(item *T) V {
			return *m.get(item)
		},
		err: m.err,
	}
}

// Err reports an invalid member the projection was built from.
func (p Projection[T, R]) Err() error {
	return p.err
}

// Columns resolves the selected members to database column names.
func (p Projection[T, R]) Columns() ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	names := make([]string, 0, len(p.columns))
	for _, sel := range p.columns {
		col, err := sel.Column()
		if err != nil {
			return nil, err
		}
		names = append(names, col.Name)
	}
	return names, nil
}

// Map must not be called on a projection whose Err is set.
func (p Projection[T, R]) Map(item *T) R {
	return p.mapFn(item)
}
