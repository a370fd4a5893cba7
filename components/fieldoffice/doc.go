// Package fieldoffice locates the Social Security field offices nearest to
// a postal address. It geocodes the address through an injected Geocoder,
// queries the public ArcGIS Office_Points feature service for offices
// within a search radius, and doubles the radius (up to eight times) until
// enough offices are found. Network failures at the top-level lookup
// degrade to an empty office list; this layer never surfaces transport
// errors to the person filling out the form.
package fieldoffice
