package catalog

import (
	"fmt"
	"strings"
)

// Category groups candidate locations.
type Category string

const (
	Beaches        Category = "beaches"
	Archaeological Category = "archaeological"
	Mountains      Category = "mountains"
	Cities         Category = "cities"
)

// Categories lists every place category in display order.
var Categories = []Category{Beaches, Archaeological, Mountains, Cities}

// ClimateTag describes a weather condition associated with a location.
type ClimateTag string

const (
	Sunny  ClimateTag = "sunny"
	Cloudy ClimateTag = "cloudy"
	Windy  ClimateTag = "windy"
	Rainy  ClimateTag = "rainy"
	Snowy  ClimateTag = "snowy"
)

// ClimateTags lists every climate tag in display order.
var ClimateTags = []ClimateTag{Sunny, Cloudy, Windy, Rainy, Snowy}

// PlaceMarker is the location type used when no climate tag is selected.
const PlaceMarker = "place"

// ParseCategory validates raw against the closed category set.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown place category %q", raw)
	}
	return c, nil
}

// Valid reports membership in the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseClimateTag validates raw against the closed climate set.
func ParseClimateTag(raw string) (ClimateTag, error) {
	t := ClimateTag(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown climate tag %q", raw)
	}
	return t, nil
}

// Valid reports membership in the closed climate set.
func (t ClimateTag) Valid() bool {
	for _, known := range ClimateTags {
		if t == known {
			return true
		}
	}
	return false
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a place offered for prediction.
type Location struct {
	Name     string       `json:"name"`
	Lat      float64      `json:"lat"`
	Lng      float64      `json:"lng"`
	Category Category     `json:"category"`
	Climates []ClimateTag `json:"climates,omitempty"`
}

// Coordinates returns the location position.
func (l Location) Coordinates() LatLng {
	return LatLng{Lat: l.Lat, Lng: l.Lng}
}

// HasAnyClimate reports whether the location's tags intersect tags.
func (l Location) HasAnyClimate(tags []ClimateTag) bool {
	for _, own := range l.Climates {
		for _, want := range tags {
			if own == want {
				return true
			}
		}
	}
	return false
}

// Validate checks the record against the closed enumerations.
func (l Location) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location name cannot be empty")
	}
	if !l.Category.Valid() {
		return fmt.Errorf("location %q: unknown place category %q", l.Name, l.Category)
	}
	if l.Lat < -90 || l.Lat > 90 || l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("location %q: coordinates out of range", l.Name)
	}
	for _, tag := range l.Climates {
		if !tag.Valid() {
			return fmt.Errorf("location %q: unknown climate tag %q", l.Name, tag)
		}
	}
	return nil
}
