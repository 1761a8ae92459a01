package helpers

import "reflect"

// StrPanic panics with panicMessage when p is empty, otherwise returns p.
// Used by constructors for required URLs and names.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage when v is nil (including typed nil pointers, maps, slices, funcs
// and interfaces), otherwise returns v unchanged.
//
// Called from every service and adapter constructor to validate required collaborators.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Ptr returns a pointer whose value is v.
func Ptr[T any](v T) *T {
	return &v
}

// Value is like *p but it returns the zero value if p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
