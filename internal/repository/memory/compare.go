package memory

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"storefront-be/internal/repository/specification"
)

// compareValues orders two sort keys of the same type.
func compareValues(a, b any) (int, error) {
	if ta, ok := a.(time.Time); ok {
		return ta.Compare(b.(time.Time)), nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float()), nil
	case reflect.String:
		return cmp.Compare(va.String(), vb.String()), nil
	case reflect.Bool:
		switch {
		case va.Bool() == vb.Bool():
			return 0, nil
		case vb.Bool():
			return -1, nil
		default:
			return 1, nil
		}
	}

	if sa, ok := a.(fmt.Stringer); ok {
		return cmp.Compare(sa.String(), b.(fmt.Stringer).String()), nil
	}
	return 0, fmt.Errorf("%w: %T is not orderable", specification.ErrNotTranslatable, a)
}
