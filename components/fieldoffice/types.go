package fieldoffice

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Point is a WGS84 coordinate.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Office is one Social Security field office.
type Office struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Street     string `json:"street"`
	Unit       string `json:"unit,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	OfficeCode string `json:"office_code"`
	Phone      string `json:"phone"`
}

// featureCollection is the pgeojson shape the feature service returns.
type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties officeProperties `json:"properties"`
}

type officeProperties struct {
	AddressLine1 string     `json:"AddressLine1"`
	AddressLine2 string     `json:"AddressLine2"`
	AddressLine3 string     `json:"AddressLine3"`
	City         string     `json:"City"`
	State        string     `json:"State"`
	Zip          looseValue `json:"ZIP5"`
	OfficeCode   looseValue `json:"OfficeCode"`
	OfficeName   string     `json:"OfficeName"`
	Phone        string     `json:"BusinessPhone"`
}

func (p officeProperties) office() Office {
	office := Office{
		Name:       titleCase(p.AddressLine1),
		Title:      titleCase(p.OfficeName),
		Street:     titleCase(p.AddressLine3),
		City:       titleCase(p.City),
		State:      p.State,
		Zip:        p.Zip.String(),
		OfficeCode: p.OfficeCode.String(),
		Phone:      p.Phone,
	}
	if p.AddressLine2 != "" {
		office.Unit = titleCase(p.AddressLine2)
	}
	return office
}

// looseValue accepts the string-or-number fields the service is
// inconsistent about (ZIP codes, office codes).
type looseValue string

func (v *looseValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = looseValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = looseValue(n.String())
		return nil
	}
	// null and other shapes render empty rather than failing the feature.
	*v = ""
	return nil
}

func (v looseValue) String() string { return string(v) }

var titleCaser = cases.Title(language.AmericanEnglish)

// titleCase normalizes the service's all-caps fields for display.
func titleCase(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(trimmed))
}
