package addendum

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

// Kind classifies a resolved value for rendering purposes.
type Kind string

const (
	// KindScalar covers strings and anything else rendered as one blob.
	KindScalar Kind = "scalar"
	// KindList is a sequence of plain values.
	KindList Kind = "list"
	// KindObjectList is a sequence of uniform records (maps or structs)
	// that can be shown as a table.
	KindObjectList Kind = "object_list"
)

// Column describes one table column derived from an object list: the
// attribute key on each record and the label shown in the header row.
type Column struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label,omitempty" json:"label"`
}

// Field is one logical document field: a dotted variable name, the overflow
// trigger that bounds it, and an optional explicit column set for tabular
// values. Fields re-resolve their value on every access and never cache.
type Field struct {
	Name    string
	Trigger Trigger

	// Headers overrides derived table columns when set.
	Headers []Column

	resolver binding.Resolver
}

// NewField constructs a standalone field. Fields registered through a
// Collection inherit the collection's resolver instead.
func NewField(name string, trigger Trigger, resolver binding.Resolver) *Field {
	return &Field{Name: name, Trigger: trigger, resolver: resolver}
}

// Value returns the full resolved value disregarding any size constraint,
// or an empty string when the name is unbound. Useful in the addendum when
// the whole value should be shown rather than just the remainder.
func (f *Field) Value() any {
	if f == nil || f.resolver == nil {
		return ""
	}
	value, ok := f.resolver.Resolve(f.Name)
	if !ok || value == nil {
		return ""
	}
	return value
}

// Defined reports whether the field's name resolves to a value. A name
// bound to nil counts as undefined.
func (f *Field) Defined() bool {
	if f == nil || f.resolver == nil {
		return false
	}
	value, ok := f.resolver.Resolve(f.Name)
	return ok && value != nil
}

// MaxLines estimates how many rows the field occupies in the output
// document for a given input width and overflow message length.
func (f *Field) MaxLines(inputWidth, messageLen int) int {
	if inputWidth <= 0 {
		inputWidth = 80
	}
	budget := f.Trigger.Limit() - messageLen
	if budget < 0 {
		budget = 0
	}
	return budget/inputWidth + 1
}

// Kind classifies the current value.
func (f *Field) Kind() Kind {
	items, ok := sequenceItems(f.Value())
	if !ok {
		return KindScalar
	}
	if len(items) > 0 && isRecord(items[0]) {
		return KindObjectList
	}
	return KindList
}

// IsList reports whether the value is any kind of sequence.
func (f *Field) IsList() bool {
	kind := f.Kind()
	return kind == KindList || kind == KindObjectList
}

// IsObjectList reports whether the value is a sequence of records.
func (f *Field) IsObjectList() bool {
	return f.Kind() == KindObjectList
}

// Columns returns the ordered table columns for an object-list value. An
// explicit Headers override wins; otherwise columns derive from the first
// record: sorted keys for maps, declaration-ordered exported fields for
// structs. Nil means the value has no meaningful tabular shape.
func (f *Field) Columns(fns ...OptionFn) []Column {
	if f == nil {
		return nil
	}
	if len(f.Headers) > 0 {
		out := make([]Column, 0, len(f.Headers))
		for _, column := range f.Headers {
			if column.Label == "" {
				column.Label = column.Key
			}
			out = append(out, column)
		}
		return out
	}

	items, ok := sequenceItems(f.Value())
	if !ok || len(items) == 0 {
		return nil
	}

	opts := NewOptions(fns...)
	return deriveColumns(items[0], opts)
}

func deriveColumns(exemplar any, opts Options) []Column {
	skip := make(map[string]struct{}, len(opts.SkipColumns))
	for _, name := range opts.SkipColumns {
		skip[name] = struct{}{}
	}

	if m, ok := stringKeyedMap(exemplar); ok {
		keys := make([]string, 0, len(m))
		for key := range m {
			if _, skipped := skip[key]; skipped {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]Column, 0, len(keys))
		for _, key := range keys {
			out = append(out, Column{Key: key, Label: key})
		}
		return out
	}

	rv := reflect.ValueOf(exemplar)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	out := make([]Column, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		if _, skipped := skip[field.Name]; skipped {
			continue
		}
		if opts.SkipEmptyColumns && cellString(exemplar, field.Name, opts) == "" {
			continue
		}
		out = append(out, Column{Key: field.Name, Label: field.Name})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// sequenceItems normalizes slice and array values to []any. Strings and
// byte slices are not sequences for overflow purposes.
func sequenceItems(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func isRecord(value any) bool {
	if _, ok := stringKeyedMap(value); ok {
		return true
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

func stringKeyedMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// stringify renders a non-sequence value as a string. Opaque scalars
// (numbers, booleans, fmt.Stringer values) follow the string overflow path
// through their printed form, which keeps overflow behaviour deterministic
// for values that cannot be partially sliced.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (f *Field) String() string {
	return stringify(f.Value())
}
