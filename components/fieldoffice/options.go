package fieldoffice

import (
	"net/http"
	"time"
)

const (
	// DefaultOfficeURL is the query endpoint of the public SSA office layer.
	DefaultOfficeURL = "https://services6.arcgis.com/zFiipv75rloRP5N4/ArcGIS/rest/services/Office_Points/FeatureServer/0/query"

	// DefaultGeocodeURL is the Esri world geocoder used when no Geocoder
	// is injected.
	DefaultGeocodeURL = "https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer/findAddressCandidates"

	// DefaultStartMiles is the initial search radius.
	DefaultStartMiles = 5

	// DefaultMaxExpansions caps how many times the radius doubles before
	// the search gives up and returns whatever it has.
	DefaultMaxExpansions = 8

	// DefaultMinResults is how many offices a lookup tries to collect
	// before it stops widening the radius.
	DefaultMinResults = 3
)

// Options configures a Searcher.
type Options struct {
	// OfficeURL is the feature service query endpoint.
	OfficeURL string

	// HTTPClient performs all requests. Defaults to a client with a
	// modest timeout so a slow upstream cannot hang an interview.
	HTTPClient *http.Client

	// Geocoder turns a street address into a coordinate. Defaults to
	// the Esri world geocoder.
	Geocoder Geocoder

	// StartMiles is the initial search radius in statute miles.
	StartMiles int

	// MaxExpansions caps the number of radius doublings.
	MaxExpansions int

	// MinResults is the target office count for address lookups.
	MinResults int
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		OfficeURL:     DefaultOfficeURL,
		HTTPClient:    &http.Client{Timeout: 15 * time.Second},
		StartMiles:    DefaultStartMiles,
		MaxExpansions: DefaultMaxExpansions,
		MinResults:    DefaultMinResults,
	}
}

// NewOptions builds Options from the defaults plus fns, then clamps
// out-of-range values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.OfficeURL == "" {
		opts.OfficeURL = DefaultOfficeURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.Geocoder == nil {
		opts.Geocoder = &ArcGISGeocoder{BaseURL: DefaultGeocodeURL, HTTPClient: opts.HTTPClient}
	}
	if opts.StartMiles < 1 {
		opts.StartMiles = DefaultStartMiles
	}
	if opts.MaxExpansions < 0 {
		opts.MaxExpansions = DefaultMaxExpansions
	}
	if opts.MinResults < 1 {
		opts.MinResults = DefaultMinResults
	}
	return opts
}

// WithOfficeURL points the searcher at a different feature service,
// usually a test server.
func WithOfficeURL(url string) OptionFn {
	return func(o *Options) {
		if url != "" {
			o.OfficeURL = url
		}
	}
}

// WithHTTPClient injects the client used for all requests.
func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if client != nil {
			o.HTTPClient = client
		}
	}
}

// WithGeocoder injects the address geocoder.
func WithGeocoder(geocoder Geocoder) OptionFn {
	return func(o *Options) {
		if geocoder != nil {
			o.Geocoder = geocoder
		}
	}
}

// WithStartMiles sets the initial search radius.
func WithStartMiles(miles int) OptionFn {
	return func(o *Options) {
		if miles > 0 {
			o.StartMiles = miles
		}
	}
}

// WithMaxExpansions sets how many times the radius may double.
func WithMaxExpansions(n int) OptionFn {
	return func(o *Options) {
		if n >= 0 {
			o.MaxExpansions = n
		}
	}
}

// WithMinResults sets the target office count for address lookups.
func WithMinResults(n int) OptionFn {
	return func(o *Options) {
		if n > 0 {
			o.MinResults = n
		}
	}
}
