package specification

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// Criteria is a predicate over T. It carries a SQL form for GORM and an
// in-memory form; either may be missing, in which case evaluating it on that
// engine fails with ErrNotTranslatable.
type Criteria[T any] struct {
	sql   func() (clause.Expression, error)
	match func(*T) (bool, error)
}

// Expression returns the SQL form of the criteria.
func (c Criteria[T]) Expression() (clause.Expression, error) {
	if c.sql == nil {
		return nil, fmt.Errorf("%w: criteria has no SQL form", ErrNotTranslatable)
	}
	return c.sql()
}

// Matches evaluates the criteria against an in-memory item.
func (c Criteria[T]) Matches(item *T) (bool, error) {
	if c.match == nil {
		return false, fmt.Errorf("%w: criteria cannot be evaluated in memory", ErrNotTranslatable)
	}
	return c.match(item)
}

func Eq[T, V any](m Member[T, V], value V) Criteria[T] {
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			col, err := m.Column()
			if err != nil {
				return nil, err
			}
			return clause.Eq{Column: col, Value: value}, nil
		},
		match: func(item *T) (bool, error) {
			v, err := m.read(item)
			if err != nil {
				return false, err
			}
			return reflect.DeepEqual(v, value), nil
		},
	}
}

func Neq[T, V any](m Member[T, V], value V) Criteria[T] {
	return Not(Eq(m, value))
}

func Gt[T any, V cmp.Ordered](m Member[T, V], value V) Criteria[T] {
	return ordered(m, value, func(col clause.Column) clause.Expression {
		return clause.Gt{Column: col, Value: value}
	}, func(c int) bool { return c > 0 })
}

func Gte[T any, V cmp.Ordered](m Member[T, V], value V) Criteria[T] {
	return ordered(m, value, func(col clause.Column) clause.Expression {
		return clause.Gte{Column: col, Value: value}
	}, func(c int) bool { return c >= 0 })
}

func Lt[T any, V cmp.Ordered](m Member[T, V], value V) Criteria[T] {
	return ordered(m, value, func(col clause.Column) clause.Expression {
		return clause.Lt{Column: col, Value: value}
	}, func(c int) bool { return c < 0 })
}

func Lte[T any, V cmp.Ordered](m Member[T, V], value V) Criteria[T] {
	return ordered(m, value, func(col clause.Column) clause.Expression {
		return clause.Lte{Column: col, Value: value}
	}, func(c int) bool { return c <= 0 })
}

func ordered[T any, V cmp.Ordered](m Member[T, V], value V, build func(clause.Column) clause.Expression, accept func(int) bool) Criteria[T] {
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			col, err := m.Column()
			if err != nil {
				return nil, err
			}
			return build(col), nil
		},
		match: func(item *T) (bool, error) {
			v, err := m.read(item)
			if err != nil {
				return false, err
			}
			return accept(cmp.Compare(v, value)), nil
		},
	}
}

// In matches items whose member equals one of values. An empty list matches nothing.
func In[T, V any](m Member[T, V], values ...V) Criteria[T] {
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			col, err := m.Column()
			if err != nil {
				return nil, err
			}
			vars := make([]interface{}, len(values))
			for i, v := range values {
				vars[i] = v
			}
			return clause.IN{Column: col, Values: vars}, nil
		},
		match: func(item *T) (bool, error) {
			v, err := m.read(item)
			if err != nil {
				return false, err
			}
			for _, candidate := range values {
				if reflect.DeepEqual(v, candidate) {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains is a case-insensitive substring match. LIKE wildcards in needle
// match literally.
func Contains[T any](m Member[T, string], needle string) Criteria[T] {
	lowered := strings.ToLower(needle)
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			col, err := m.Column()
			if err != nil {
				return nil, err
			}
			return clause.Expr{
				SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
				Vars: []interface{}{col, "%" + likeEscaper.Replace(lowered) + "%"},
			}, nil
		},
		match: func(item *T) (bool, error) {
			v, err := m.read(item)
			if err != nil {
				return false, err
			}
			return strings.Contains(strings.ToLower(v), lowered), nil
		},
	}
}

// JSONHasKey matches items whose JSON document contains the nested key path.
func JSONHasKey[T any](m Member[T, datatypes.JSON], keys ...string) Criteria[T] {
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			col, err := m.Column()
			if err != nil {
				return nil, err
			}
			return datatypes.JSONQuery(col.Name).HasKey(keys...), nil
		},
		match: func(item *T) (bool, error) {
			raw, err := m.read(item)
			if err != nil {
				return false, err
			}
			if len(raw) == 0 {
				return false, nil
			}
			var doc interface{}
			if err := json.Unmarshal(raw, &doc); err != nil {
				return false, err
			}
			for _, key := range keys {
				obj, ok := doc.(map[string]interface{})
				if !ok {
					return false, nil
				}
				if doc, ok = obj[key]; !ok {
					return false, nil
				}
			}
			return true, nil
		},
	}
}

func And[T any](first Criteria[T], rest ...Criteria[T]) Criteria[T] {
	all := append([]Criteria[T]{first}, rest...)
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			exprs, err := expressions(all)
			if err != nil {
				return nil, err
			}
			return clause.And(exprs...), nil
		},
		match: func(item *T) (bool, error) {
			for _, c := range all {
				ok, err := c.Matches(item)
				if err != nil || !ok {
					return false, err
				}
			}
			return true, nil
		},
	}
}

func Or[T any](first Criteria[T], rest ...Criteria[T]) Criteria[T] {
	all := append([]Criteria[T]{first}, rest...)
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			exprs, err := expressions(all)
			if err != nil {
				return nil, err
			}
			return clause.Or(exprs...), nil
		},
		match: func(item *T) (bool, error) {
			for _, c := range all {
				ok, err := c.Matches(item)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func Not[T any](c Criteria[T]) Criteria[T] {
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			expr, err := c.Expression()
			if err != nil {
				return nil, err
			}
			return clause.Not(expr), nil
		},
		match: func(item *T) (bool, error) {
			ok, err := c.Matches(item)
			return !ok && err == nil, err
		},
	}
}

// Raw is a SQL-only criteria.
func Raw[T any](sql string, vars ...interface{}) Criteria[T] {
	return Criteria[T]{
		sql: func() (clause.Expression, error) {
			return clause.Expr{SQL: sql, Vars: vars}, nil
		},
	}
}

// Func is an in-memory only criteria.
func Func[T any](fn func(*T) bool) Criteria[T] {
	return Criteria[T]{
		match: func(item *T) (bool, error) {
			return fn(item), nil
		},
	}
}

func expressions[T any](all []Criteria[T]) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(all))
	for _, c := range all {
		expr, err := c.Expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}
