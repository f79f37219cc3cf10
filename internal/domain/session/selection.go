package session

import (
	"fmt"
	"time"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/collections"
	apperrors "github.com/yucatanweather/app/pkg/errors"
	"github.com/yucatanweather/app/pkg/util"
)

// Selection is the transient filter state feeding a prediction.
type Selection struct {
	catalog    *catalog.Catalog
	date       time.Time
	place      catalog.Category
	climates   []catalog.ClimateTag
	location   *collections.LocationData
	candidates []catalog.Location
}

func newSelection(cat *catalog.Catalog, today time.Time) *Selection {
	return &Selection{catalog: cat, date: util.CalendarDay(today)}
}

// Date returns the selected calendar date.
func (s *Selection) Date() time.Time { return s.date }

// Place returns the selected category, empty when none.
func (s *Selection) Place() catalog.Category { return s.place }

// Climates returns the selected tags in selection order.
func (s *Selection) Climates() []catalog.ClimateTag {
	return append([]catalog.ClimateTag(nil), s.climates...)
}

// HasClimate reports whether tag is selected.
func (s *Selection) HasClimate(tag catalog.ClimateTag) bool {
	return indexOf(s.climates, tag) >= 0
}

// Candidates returns the locations currently offered.
func (s *Selection) Candidates() []catalog.Location {
	return append([]catalog.Location(nil), s.candidates...)
}

// Location returns the chosen location, if any.
func (s *Selection) Location() (collections.LocationData, bool) {
	if s.location == nil {
		return collections.LocationData{}, false
	}
	return *s.location, true
}

// CanPredict is true once a location is chosen.
func (s *Selection) CanPredict() bool { return s.location != nil }

// PrimaryClimate returns the first selected tag or "".
func (s *Selection) PrimaryClimate() string {
	if len(s.climates) == 0 {
		return ""
	}
	return string(s.climates[0])
}

// SelectDate keeps place, climates and location.
func (s *Selection) SelectDate(date time.Time) {
	s.date = util.CalendarDay(date)
}

// SelectPlace resets climates and location and offers the whole category.
func (s *Selection) SelectPlace(category catalog.Category) error {
	if !category.Valid() {
		return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown place category %q", category), nil)
	}
	s.place = category
	s.climates = nil
	s.location = nil
	s.candidates = s.catalog.InCategory(category)
	return nil
}

// SelectClimate toggles tag and recomputes candidates.
func (s *Selection) SelectClimate(tag catalog.ClimateTag) error {
	if !tag.Valid() {
		return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown climate tag %q", tag), nil)
	}
	if idx := indexOf(s.climates, tag); idx >= 0 {
		s.climates = append(s.climates[:idx:idx], s.climates[idx+1:]...)
	} else {
		s.climates = append(s.climates, tag)
	}
	if len(s.climates) == 0 {
		s.climates = nil
	}
	s.location = nil
	s.recompute()
	return nil
}

// SelectLocation chooses candidate index.
func (s *Selection) SelectLocation(index int) error {
	if index < 0 || index >= len(s.candidates) {
		return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("location index %d out of range", index), nil)
	}
	loc := s.candidates[index]
	kind := catalog.PlaceMarker
	if len(s.climates) > 0 {
		kind = string(s.climates[0])
	}
	s.location = &collections.LocationData{Name: loc.Name, Lat: loc.Lat, Lng: loc.Lng, Type: kind}
	return nil
}

// SetLocation chooses a location directly, as when reopening a favorite.
func (s *Selection) SetLocation(data collections.LocationData) {
	s.location = &data
}

func (s *Selection) setCatalog(cat *catalog.Catalog) {
	s.catalog = cat
	s.recompute()
}

func (s *Selection) recompute() {
	if s.place == "" {
		s.candidates = nil
		return
	}
	s.candidates = s.catalog.Candidates(s.place, s.climates)
}

func indexOf(tags []catalog.ClimateTag, tag catalog.ClimateTag) int {
	for i, t := range tags {
		if t == tag {
			return i
		}
	}
	return -1
}
