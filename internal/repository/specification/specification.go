package specification

import (
	"errors"
	"fmt"
	"reflect"
)

// Spec describes the shape of a query over T. Evaluators read a Spec and
// never mutate it.
type Spec[T any] interface {
	Criteria() (Criteria[T], bool)
	OrderBy() Selector[T]
	OrderByDescending() Selector[T]
	Includes() []Path
	IncludeStrings() []string
	IsDistinct() bool
	Skip() int
	Take() int
	IsPagingEnabled() bool
	// Err reports problems recorded while the spec was built.
	Err() error
}

// ProjectionSpec is a Spec whose results are reshaped from T into R.
type ProjectionSpec[T, R any] interface {
	Spec[T]
	Select() (Projection[T, R], bool)
}

// Base is embedded by concrete specifications. Its mutators are meant to be
// called from the concrete spec's constructor only.
type Base[T any] struct {
	criteria          *Criteria[T]
	orderBy           Selector[T]
	orderByDescending Selector[T]
	includes          []Path
	includeStrings    []string
	distinct          bool
	skip              int
	take              int
	paging            bool
	errs              []error
}

// NewBase returns a Base filtered by the conjunction of criteria, or
// unfiltered when none is given.
func NewBase[T any](criteria ...Criteria[T]) Base[T] {
	var b Base[T]
	switch len(criteria) {
	case 0:
	case 1:
		c := criteria[0]
		b.criteria = &c
	default:
		c := And(criteria[0], criteria[1:]...)
		b.criteria = &c
	}
	return b
}

func (b *Base[T]) Criteria() (Criteria[T], bool) {
	if b.criteria == nil {
		return Criteria[T]{}, false
	}
	return *b.criteria, true
}

func (b *Base[T]) OrderBy() Selector[T] {
	return b.orderBy
}

func (b *Base[T]) OrderByDescending() Selector[T] {
	return b.orderByDescending
}

func (b *Base[T]) Includes() []Path {
	return append([]Path(nil), b.includes...)
}

func (b *Base[T]) IncludeStrings() []string {
	return append([]string(nil), b.includeStrings...)
}

func (b *Base[T]) IsDistinct() bool {
	return b.distinct
}

func (b *Base[T]) Skip() int {
	return b.skip
}

func (b *Base[T]) Take() int {
	return b.take
}

func (b *Base[T]) IsPagingEnabled() bool {
	return b.paging
}

func (b *Base[T]) Err() error {
	return errors.Join(b.errs...)
}

// AddOrderBy sets the ascending sort key. The last call wins.
func (b *Base[T]) AddOrderBy(key Selector[T]) {
	b.orderBy = key
}

// AddOrderByDescending sets the descending sort key. The last call wins.
func (b *Base[T]) AddOrderByDescending(key Selector[T]) {
	b.orderByDescending = key
}

// AddInclude appends the navigation referenced by member to the eager-load list.
func (b *Base[T]) AddInclude(member Selector[T]) {
	path, err := member.Path()
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	b.includes = append(b.includes, path)
}

// AddIncludeString appends a dotted navigation path, e.g. "OrderItems.Product".
func (b *Base[T]) AddIncludeString(path string) {
	b.includeStrings = append(b.includeStrings, path)
}

func (b *Base[T]) ApplyDistinct() {
	b.distinct = true
}

// ApplyPaging sets the window and enables paging. Values are not validated.
func (b *Base[T]) ApplyPaging(skip, take int) {
	b.skip = skip
	b.take = take
	b.paging = true
}

// AddThenInclude appends the dotted path "Collection.Property" derived from
// the members referenced by both selectors. It fails with ErrInvalidMember
// when either selector does not reference a field.
func AddThenInclude[T, C, P any](b *Base[T], collection func(*T) *[]C, property func(*C) *P) error {
	coll, err := memberName(collection)
	if err != nil {
		return fmt.Errorf("collection: %w", err)
	}
	prop, err := memberName(property)
	if err != nil {
		return fmt.Errorf("property: %w", err)
	}
	b.AddIncludeString(PathOf(coll, prop).String())
	return nil
}

// BaseProjection is embedded by specifications that project T into R.
type BaseProjection[T, R any] struct {
	Base[T]
	selection *Projection[T, R]
}

func NewBaseProjection[T, R any](criteria ...Criteria[T]) BaseProjection[T, R] {
	return BaseProjection[T, R]{Base: NewBase(criteria...)}
}

func (b *BaseProjection[T, R]) Select() (Projection[T, R], bool) {
	if b.selection == nil {
		return Projection[T, R]{}, false
	}
	return *b.selection, true
}

func (b *BaseProjection[T, R]) AddSelect(p Projection[T, R]) {
	b.selection = &p
}

// CheckCoercion reports whether a T can be used directly as an R, which
// holds when T is convertible to R under Go's conversion rules.
func CheckCoercion[T, R any]() error {
	from, to := reflect.TypeFor[T](), reflect.TypeFor[R]()
	if from.ConvertibleTo(to) {
		return nil
	}
	return fmt.Errorf("%w: cannot use %s as %s", ErrIncompatibleProjection, from, to)
}
