package ssioverpaymentwaiver

import (
	"io"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/addendum"
	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

// Field aliases addendum.Field so callers working through the root package
// can hold field handles without importing pkg/addendum.
type Field = addendum.Field

// FieldDef is one bulk-registration record for an addendum field.
type FieldDef = addendum.FieldDef

// Collection is an ordered registry of addendum fields.
type Collection = addendum.Collection

// Trigger is a field's overflow threshold.
type Trigger = addendum.Trigger

// OptionFn configures overflow computation and rendering.
type OptionFn = addendum.OptionFn

// Resolver resolves a field name to its answered value.
type Resolver = binding.Resolver

// Answers is a map-backed resolver with dotted-path lookup.
type Answers = binding.Map

// NewCollection builds an empty field collection over the given resolver.
// It is the simplest entry point for callers registering fields in code.
func NewCollection(resolver binding.Resolver, fns ...addendum.CollectionOption) *addendum.Collection {
	return addendum.NewCollection(resolver, fns...)
}

// LoadCollection builds a collection from a YAML sequence of field
// definitions, resolving values through the given resolver.
func LoadCollection(resolver binding.Resolver, defs io.Reader, fns ...addendum.CollectionOption) (*addendum.Collection, error) {
	collection := addendum.NewCollection(resolver, fns...)
	if err := collection.LoadYAML(defs); err != nil {
		return nil, err
	}
	return collection, nil
}

// NeedsAddendum reports whether any of the fields defined in defs overflow
// the answers held by resolver.
func NeedsAddendum(resolver binding.Resolver, defs io.Reader, fns ...addendum.OptionFn) (bool, error) {
	collection, err := LoadCollection(resolver, defs)
	if err != nil {
		return false, err
	}
	return collection.HasOverflow(fns...), nil
}
