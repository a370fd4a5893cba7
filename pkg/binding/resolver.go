package binding

import (
	"reflect"
	"strings"
)

// Resolver answers whether a dotted field name is bound to a value, and if
// so, what that value is. Implementations must never block on user input;
// an unbound name is reported with ok=false, not an error.
type Resolver interface {
	Resolve(name string) (value any, ok bool)
}

// Func adapts a plain function to the Resolver interface.
type Func func(name string) (any, bool)

// Resolve calls the wrapped function.
func (f Func) Resolve(name string) (any, bool) {
	if f == nil {
		return nil, false
	}
	return f(name)
}

// Map resolves dotted paths against nested maps and exported struct fields.
// A path like "client.address.city" walks one segment at a time; traversal
// stops with ok=false as soon as a segment is missing.
type Map map[string]any

// Resolve implements Resolver.
func (m Map) Resolve(name string) (any, bool) {
	name = strings.TrimSpace(name)
	if name == "" || m == nil {
		return nil, false
	}

	// Exact keys win over traversal so callers can bind names that
	// themselves contain dots.
	if value, ok := m[name]; ok {
		return value, true
	}

	var current any = map[string]any(m)
	for _, segment := range strings.Split(name, ".") {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func step(current any, segment string) (any, bool) {
	if current == nil || segment == "" {
		return nil, false
	}

	switch v := current.(type) {
	case Map:
		value, ok := v[segment]
		return value, ok
	case map[string]any:
		value, ok := v[segment]
		return value, ok
	}

	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		value := rv.MapIndex(reflect.ValueOf(segment))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Struct:
		field := rv.FieldByName(segment)
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true
	default:
		return nil, false
	}
}
