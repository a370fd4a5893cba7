package addendum

import (
	"fmt"
	"reflect"
	"strings"
)

// OverflowMarkdown renders the overflow portion of a sequence value as
// markdown: a table (using Columns) for object lists, a bulleted list for
// plain lists, and an empty string for anything else. It offers no control
// over the output beyond column labels; callers that want their own format
// should consume OverflowValue directly.
func (f *Field) OverflowMarkdown(fns ...OptionFn) string {
	overflow, ok := sequenceItems(f.OverflowValue(fns...))
	if !ok || len(overflow) == 0 {
		return ""
	}

	columns := f.Columns(fns...)
	if len(columns) == 0 {
		var b strings.Builder
		for _, item := range overflow {
			b.WriteString("* ")
			b.WriteString(stringify(item))
			b.WriteString("\n")
		}
		return b.String()
	}

	opts := NewOptions(fns...)

	var b strings.Builder
	for i, column := range columns {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(column.Label)
	}
	b.WriteString("\n")
	for i := range columns {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString("-----")
	}
	b.WriteString("\n")

	for _, row := range overflow {
		for i, column := range columns {
			if i > 0 {
				b.WriteString("|")
			}
			b.WriteString(cellString(row, column.Key, opts))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellString renders one record attribute for table output. Missing
// attributes render empty rather than erroring, and float values are
// assumed to be monetary amounts.
func cellString(row any, key string, opts Options) string {
	if m, ok := stringKeyedMap(row); ok {
		value, present := m[key]
		if !present || value == nil {
			return ""
		}
		return formatCell(value, opts)
	}

	rv := reflect.ValueOf(row)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ""
	}
	field := rv.FieldByName(key)
	if !field.IsValid() || !field.CanInterface() {
		return ""
	}
	return formatCell(field.Interface(), opts)
}

func formatCell(value any, opts Options) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float32:
		return opts.Currency.Format(float64(v))
	case float64:
		return opts.Currency.Format(v)
	default:
		return fmt.Sprint(v)
	}
}
