package addendum

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

// Style selects which fields DefinedFields reports.
type Style string

const (
	// StyleOverflowOnly reports only fields whose overflow is non-empty.
	StyleOverflowOnly Style = "overflow_only"
	// StyleAll reports every field whose name resolves to a value.
	StyleAll Style = "all"
)

// FieldDef is one bulk-registration record, matching the YAML blocks the
// interview defines its addendum fields with.
type FieldDef struct {
	Name    string   `yaml:"field_name" json:"field_name"`
	Trigger Trigger  `yaml:"overflow_trigger" json:"overflow_trigger"`
	Headers []Column `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Collection is an insertion-ordered registry of addendum fields keyed by
// name, with form-level overflow queries. It is not safe for concurrent
// mutation; callers serialize writes.
type Collection struct {
	resolver binding.Resolver
	style    Style

	order  []string
	fields map[string]*Field
}

// CollectionOption configures a Collection at construction time.
type CollectionOption func(*Collection)

// WithStyle sets the default DefinedFields style.
func WithStyle(style Style) CollectionOption {
	return func(c *Collection) {
		if c == nil || style == "" {
			return
		}
		c.style = style
	}
}

// NewCollection constructs an empty collection resolving values through the
// given resolver.
func NewCollection(resolver binding.Resolver, fns ...CollectionOption) *Collection {
	c := &Collection{
		resolver: resolver,
		style:    StyleOverflowOnly,
		fields:   make(map[string]*Field),
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(c)
	}
	return c
}

// Register creates or updates the field entry for name. The entry's Name
// always equals its collection key, and registration order is preserved for
// iteration.
func (c *Collection) Register(name string, trigger Trigger) *Field {
	if c == nil || name == "" {
		return nil
	}
	if field, ok := c.fields[name]; ok {
		field.Trigger = trigger
		return field
	}
	field := NewField(name, trigger, c.resolver)
	c.fields[name] = field
	c.order = append(c.order, name)
	return field
}

// Field returns the registered entry for name, if any.
func (c *Collection) Field(name string) (*Field, bool) {
	if c == nil {
		return nil, false
	}
	field, ok := c.fields[name]
	return field, ok
}

// Fields returns all entries in registration order.
func (c *Collection) Fields() []*Field {
	if c == nil {
		return nil
	}
	out := make([]*Field, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.fields[name])
	}
	return out
}

// Len reports the number of registered fields.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Load bulk-registers field definitions, preserving input order.
func (c *Collection) Load(defs []FieldDef) {
	for _, def := range defs {
		field := c.Register(def.Name, def.Trigger)
		if field != nil && len(def.Headers) > 0 {
			field.Headers = append([]Column{}, def.Headers...)
		}
	}
}

// LoadYAML reads a YAML sequence of field definition records and registers
// them in document order.
func (c *Collection) LoadYAML(r io.Reader) error {
	if c == nil {
		return fmt.Errorf("addendum: nil collection")
	}
	if r == nil {
		return fmt.Errorf("addendum: missing reader")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("addendum: read field definitions: %w", err)
	}

	var defs []FieldDef
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("addendum: parse field definitions: %w", err)
	}
	for i, def := range defs {
		if def.Name == "" {
			return fmt.Errorf("addendum: field definition %d is missing field_name", i)
		}
	}

	c.Load(defs)
	return nil
}

// HasOverflow reports whether any registered field's content exceeds its
// trigger.
func (c *Collection) HasOverflow(fns ...OptionFn) bool {
	if c == nil {
		return false
	}
	for _, field := range c.Fields() {
		if field.HasOverflow(fns...) {
			return true
		}
	}
	return false
}

// Overflow returns the fields whose overflow is non-empty, in registration
// order.
func (c *Collection) Overflow(fns ...OptionFn) []*Field {
	return c.DefinedFields(StyleOverflowOnly, fns...)
}

// DefinedFields filters the collection: StyleOverflowOnly keeps fields with
// overflow content, StyleAll keeps every field whose name resolves,
// regardless of overflow.
func (c *Collection) DefinedFields(style Style, fns ...OptionFn) []*Field {
	if c == nil {
		return nil
	}
	if style == "" {
		style = c.style
	}

	out := make([]*Field, 0, len(c.order))
	for _, field := range c.Fields() {
		switch style {
		case StyleAll:
			if field.Defined() {
				out = append(out, field)
			}
		default:
			if field.HasOverflow(fns...) {
				out = append(out, field)
			}
		}
	}
	return out
}
