package addendum

import "github.com/nonprofittechy/ssioverpaymentwaiver/pkg/format"

// Options controls how safe and overflow values are computed and rendered.
type Options struct {
	// OverflowMessage is a short marker appended to truncated safe text,
	// e.g. "(See addendum)". Its length is subtracted from the character
	// budget so the marker itself never pushes text past the input.
	OverflowMessage string

	// InputWidth is the width of the rendered input box in characters.
	InputWidth int

	// PreserveNewlines keeps paragraph breaks in the safe text when the
	// input renders more than one line. When false, all line breaks
	// collapse to spaces so more text fits before overflowing.
	PreserveNewlines bool

	// SkipEmptyColumns drops columns whose exemplar value renders empty
	// when deriving table columns from an object list.
	SkipEmptyColumns bool

	// SkipColumns names attributes that are never shown as table columns.
	SkipColumns []string

	// Currency formats float-valued table cells. For this form, floats
	// are assumed to be monetary amounts.
	Currency format.Currency
}

// OptionFn mutates Options before a computation runs.
type OptionFn func(*Options)

// DefaultOptions returns the baseline configuration: 80-character inputs,
// no overflow marker, newlines collapsed, empty columns skipped.
func DefaultOptions() Options {
	return Options{
		InputWidth:       80,
		SkipEmptyColumns: true,
		Currency:         format.NewCurrency(),
	}
}

// NewOptions applies overrides on top of DefaultOptions and clamps the
// result to usable values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.InputWidth <= 0 {
		opts.InputWidth = 80
	}
	if opts.SkipColumns != nil {
		opts.SkipColumns = append([]string{}, opts.SkipColumns...)
	}
	return opts
}

// WithOverflowMessage sets the marker appended to truncated safe text.
func WithOverflowMessage(message string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OverflowMessage = message
	}
}

// WithInputWidth sets the input box width in characters.
func WithInputWidth(width int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.InputWidth = width
	}
}

// WithPreserveNewlines toggles paragraph-preserving packing.
func WithPreserveNewlines(preserve bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PreserveNewlines = preserve
	}
}

// WithSkipEmptyColumns toggles dropping of empty exemplar columns.
func WithSkipEmptyColumns(skip bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SkipEmptyColumns = skip
	}
}

// WithCurrency overrides the formatter applied to float-valued table cells.
func WithCurrency(currency format.Currency) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Currency = currency
	}
}

// WithSkipColumns names attributes excluded from derived table columns.
func WithSkipColumns(names ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SkipColumns = append([]string{}, names...)
	}
}
