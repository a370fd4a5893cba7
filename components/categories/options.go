package categories

import "net/http"

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchAll  EmptySearchMode = "all"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	KindParam       string
	SearchParam     string
	LimitParam      string
	DefaultKind     Kind
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Tables overrides the embedded category tables.
	Tables map[Kind][]Category
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/categories",
		KindParam:       "kind",
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultKind:     KindIncome,
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchAll,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchAll
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/categories"
	}
	if opts.KindParam == "" {
		opts.KindParam = "kind"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.DefaultKind == "" {
		opts.DefaultKind = KindIncome
	}
	if opts.Tables != nil {
		tables := make(map[Kind][]Category, len(opts.Tables))
		for kind, table := range opts.Tables {
			tables[kind] = append([]Category{}, table...)
		}
		opts.Tables = tables
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithKindParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.KindParam = name
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultKind(kind Kind) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultKind = kind
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithTables(tables map[Kind][]Category) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if tables == nil {
			o.Tables = nil
			return
		}
		copied := make(map[Kind][]Category, len(tables))
		for kind, table := range tables {
			copied[kind] = append([]Category{}, table...)
		}
		o.Tables = copied
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
