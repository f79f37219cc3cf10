package collections

import "time"

// HistoryLimit caps the search history length.
const HistoryLimit = 20

// HistoryEntry records one submitted prediction.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Climate   string    `json:"climate"`
	Place     string    `json:"place"`
	Timestamp time.Time `json:"timestamp"`
}

// FavoriteEntry is a saved place; Name is the natural key.
type FavoriteEntry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	Type    string    `json:"type"`
	AddedAt time.Time `json:"addedAt"`
}

// LocationData is the chosen location carried between screens.
type LocationData struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type string  `json:"type"`
}

// LocationData returns the favorite as a selectable location.
func (f FavoriteEntry) LocationData() LocationData {
	return LocationData{Name: f.Name, Lat: f.Lat, Lng: f.Lng, Type: f.Type}
}

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language is the persisted UI language.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// Preferences groups the side-channel settings.
type Preferences struct {
	Theme    Theme
	Language Language
}

// DefaultPreferences is used when nothing valid is stored.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: LanguageES}
}

type historyWire struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Climate   string `json:"climate"`
	Place     string `json:"place"`
	Timestamp string `json:"timestamp"`
}

type favoriteWire struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Type    string  `json:"type"`
	AddedAt string  `json:"addedAt"`
}
