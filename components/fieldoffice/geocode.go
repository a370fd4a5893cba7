package fieldoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Geocoder resolves a street address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Point, error)
}

// GeocoderFunc adapts a function to the Geocoder interface.
type GeocoderFunc func(ctx context.Context, address string) (Point, error)

func (fn GeocoderFunc) Geocode(ctx context.Context, address string) (Point, error) {
	return fn(ctx, address)
}

// ArcGISGeocoder resolves addresses through the Esri world geocoder's
// findAddressCandidates endpoint.
type ArcGISGeocoder struct {
	BaseURL    string
	HTTPClient *http.Client
}

type candidateResponse struct {
	Candidates []struct {
		Location struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"location"`
	} `json:"candidates"`
}

func (g *ArcGISGeocoder) Geocode(ctx context.Context, address string) (Point, error) {
	if strings.TrimSpace(address) == "" {
		return Point{}, fmt.Errorf("fieldoffice: missing address")
	}

	base := g.BaseURL
	if base == "" {
		base = DefaultGeocodeURL
	}
	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	params := url.Values{}
	params.Set("SingleLine", address)
	params.Set("maxLocations", "1")
	params.Set("outSR", "4326")
	params.Set("f", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("fieldoffice: build geocode request: %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("fieldoffice: geocode request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("fieldoffice: geocoder returned status %d", res.StatusCode)
	}

	var payload candidateResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return Point{}, fmt.Errorf("fieldoffice: decode geocode response: %w", err)
	}
	if len(payload.Candidates) == 0 {
		return Point{}, fmt.Errorf("fieldoffice: no geocode candidates for %q", address)
	}

	location := payload.Candidates[0].Location
	return Point{Latitude: location.Y, Longitude: location.X}, nil
}
