package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed places.json
var defaultPlaces []byte

// DefaultPlacesJSON exposes the bundled place list as served by the stub API.
func DefaultPlacesJSON() []byte {
	out := make([]byte, len(defaultPlaces))
	copy(out, defaultPlaces)
	return out
}

// Catalog maps each category to its ordered location records.
type Catalog struct {
	byCategory map[Category][]Location
	size       int
}

// New validates every record and groups them by category, keeping input order.
func New(locations []Location) (*Catalog, error) {
	c := &Catalog{byCategory: make(map[Category][]Location, len(Categories))}
	for i, loc := range locations {
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}
		loc.Climates = dedupeTags(loc.Climates)
		c.byCategory[loc.Category] = append(c.byCategory[loc.Category], loc)
		c.size++
	}
	return c, nil
}

// Decode parses a JSON array of locations and validates it.
func Decode(data []byte) (*Catalog, error) {
	var locations []Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return New(locations)
}

// Default returns the bundled catalog. The bundled data is validated by tests,
// so a failure here is a build defect.
func Default() *Catalog {
	c, err := Decode(defaultPlaces)
	if err != nil {
		panic(fmt.Sprintf("bundled places invalid: %v", err))
	}
	return c
}

// InCategory returns a copy of the locations tagged with category.
func (c *Catalog) InCategory(category Category) []Location {
	if c == nil {
		return nil
	}
	src := c.byCategory[category]
	out := make([]Location, len(src))
	copy(out, src)
	return out
}

// Candidates returns the locations of category whose climates intersect tags.
// An empty tag set selects the whole category.
func (c *Catalog) Candidates(category Category, tags []ClimateTag) []Location {
	all := c.InCategory(category)
	if len(tags) == 0 {
		return all
	}
	out := make([]Location, 0, len(all))
	for _, loc := range all {
		if loc.HasAnyClimate(tags) {
			out = append(out, loc)
		}
	}
	return out
}

// All returns every location in category order.
func (c *Catalog) All() []Location {
	if c == nil {
		return nil
	}
	out := make([]Location, 0, c.size)
	for _, category := range Categories {
		out = append(out, c.byCategory[category]...)
	}
	return out
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

func dedupeTags(tags []ClimateTag) []ClimateTag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]ClimateTag, 0, len(tags))
	seen := make(map[ClimateTag]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
