package specification

import (
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

var schemaCache sync.Map

// Selector is a reference to a member of T usable as a sort key, an include or a projected column.
type Selector[T any] interface {
	// Name is the Go field name of the member.
	Name() string
	// Column resolves the member to its database column.
	Column() (clause.Column, error)
	// Path is the navigation path of the member, used for includes.
	Path() (Path, error)
	// Value reads the member from item.
	Value(item *T) (any, error)
}

// Member is a typed reference to a field of T holding a V.
//
// Members are built from selectors returning the address of the field:
//
//	name := specification.Field(func(p *model.Product) *string { return &p.Name })
type Member[T, V any] struct {
	name string
	get  func(*T) *V
	err  error
}

// Field resolves the member referenced by sel. The resolution is eager; a
// selector that does not return the address of a field of T yields a Member
// whose every use reports ErrInvalidMember.
func Field[T, V any](sel func(*T) *V) Member[T, V] {
	name, err := memberName(sel)
	return Member[T, V]{name: name, get: sel, err: err}
}

func (m Member[T, V]) Name() string {
	return m.name
}

func (m Member[T, V]) Err() error {
	return m.err
}

func (m Member[T, V]) Column() (clause.Column, error) {
	if m.err != nil {
		return clause.Column{}, m.err
	}
	return columnOf[T](m.name)
}

func (m Member[T, V]) Path() (Path, error) {
	if m.err != nil {
		return nil, m.err
	}
	return PathOf(m.name), nil
}

func (m Member[T, V]) Value(item *T) (any, error) {
	v, err := m.read(item)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (m Member[T, V]) read(item *T) (V, error) {
	var zero V
	if m.err != nil {
		return zero, m.err
	}
	return *m.get(item), nil
}

// memberName returns the name of the field of T whose address sel returns.
// Fields promoted from a directly embedded struct are accepted.
func memberName[T, V any](sel func(*T) *V) (name string, err error) {
	if sel == nil {
		return "", fmt.Errorf("%w: nil selector", ErrInvalidMember)
	}
	root := reflect.New(reflect.TypeFor[T]())
	if root.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s is not a struct", ErrInvalidMember, root.Elem().Type())
	}

	defer func() {
		if r := recover(); r != nil {
			name, err = "", fmt.Errorf("%w: selector on %s panicked: %v", ErrInvalidMember, root.Elem().Type(), r)
		}
	}()

	target := sel(root.Interface().(*T))
	if target == nil {
		return "", fmt.Errorf("%w: selector on %s returned nil", ErrInvalidMember, root.Elem().Type())
	}

	addr := reflect.ValueOf(target).Pointer()
	if found, ok := findMember(root.Elem(), addr, reflect.TypeFor[V](), 1); ok {
		return found, nil
	}
	return "", fmt.Errorf("%w: selector does not reference a field of %s", ErrInvalidMember, root.Elem().Type())
}

func findMember(v reflect.Value, addr uintptr, want reflect.Type, depth int) (string, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type != want {
			continue
		}
		if v.Field(i).Addr().Pointer() == addr {
			return sf.Name, true
		}
	}
	if depth == 0 {
		return "", false
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.Anonymous || sf.Type.Kind() != reflect.Struct {
			continue
		}
		if name, ok := findMember(v.Field(i), addr, want, depth-1); ok {
			return name, true
		}
	}
	return "", false
}

func columnOf[T any](name string) (clause.Column, error) {
	sch, err := schema.Parse(new(T), &schemaCache, schema.NamingStrategy{})
	if err != nil {
		return clause.Column{}, fmt.Errorf("%w: %v", ErrNotTranslatable, err)
	}
	field := sch.LookUpField(name)
	if field == nil || field.DBName == "" {
		return clause.Column{}, fmt.Errorf("%w: %s.%s is not a column", ErrNotTranslatable, sch.Name, name)
	}
	return clause.Column{Table: clause.CurrentTable, Name: field.DBName}, nil
}
