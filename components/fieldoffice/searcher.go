package fieldoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Searcher finds nearby Social Security field offices.
type Searcher struct {
	opts Options
}

// NewSearcher builds a Searcher with the given options applied over the
// defaults.
func NewSearcher(fns ...OptionFn) *Searcher {
	return &Searcher{opts: NewOptions(fns...)}
}

// Options returns a copy of the searcher's effective configuration.
func (s *Searcher) Options() Options {
	return s.opts
}

// NearestByPoint queries the office layer once for offices within
// distanceMiles of the coordinate. It does not widen the radius.
func (s *Searcher) NearestByPoint(ctx context.Context, point Point, distanceMiles int) ([]Office, error) {
	if distanceMiles < 1 {
		distanceMiles = s.opts.StartMiles
	}

	params := url.Values{}
	params.Set("geometry", fmt.Sprintf("%v,%v", point.Longitude, point.Latitude))
	params.Set("geometryType", "esriGeometryPoint")
	params.Set("inSR", "4326")
	params.Set("outSR", "4326")
	params.Set("spatialRel", "esriSpatialRelIntersects")
	params.Set("distance", strconv.Itoa(distanceMiles))
	params.Set("units", "esriSRUnit_StatuteMile")
	params.Set("outFields", "*")
	params.Set("returnGeometry", "true")
	params.Set("f", "pgeojson")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.opts.OfficeURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("fieldoffice: build office request: %w", err)
	}

	res, err := s.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fieldoffice: office request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fieldoffice: office service returned status %d", res.StatusCode)
	}

	var collection featureCollection
	if err := json.NewDecoder(res.Body).Decode(&collection); err != nil {
		return nil, fmt.Errorf("fieldoffice: decode office response: %w", err)
	}

	offices := make([]Office, 0, len(collection.Features))
	for _, feat := range collection.Features {
		offices = append(offices, feat.Properties.office())
	}
	return offices, nil
}

// Nearest geocodes the address and queries the office layer, doubling the
// search radius until it has collected at least MinResults offices or the
// expansion budget runs out. It returns whatever the widest query found.
func (s *Searcher) Nearest(ctx context.Context, address string) ([]Office, error) {
	point, err := s.opts.Geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	return s.nearestByPointExpanding(ctx, point)
}

func (s *Searcher) nearestByPointExpanding(ctx context.Context, point Point) ([]Office, error) {
	distance := s.opts.StartMiles
	offices, err := s.NearestByPoint(ctx, point, distance)
	if err != nil {
		return nil, err
	}

	for expansions := 0; len(offices) < s.opts.MinResults && expansions < s.opts.MaxExpansions; expansions++ {
		distance *= 2
		offices, err = s.NearestByPoint(ctx, point, distance)
		if err != nil {
			return nil, err
		}
	}
	return offices, nil
}

// FindNearest is the form-facing lookup. Any failure, from geocoding
// through transport, degrades to an empty list so the interview keeps
// moving without an office suggestion.
func (s *Searcher) FindNearest(ctx context.Context, address string) []Office {
	offices, err := s.Nearest(ctx, address)
	if err != nil {
		return []Office{}
	}
	return offices
}

// FindNearest runs an address lookup with a default Searcher. Failures
// degrade to an empty list.
func FindNearest(ctx context.Context, address string, fns ...OptionFn) []Office {
	return NewSearcher(fns...).FindNearest(ctx, address)
}
