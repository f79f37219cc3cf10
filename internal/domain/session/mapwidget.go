package session

import "github.com/yucatanweather/app/internal/domain/catalog"

// MapWidget is the rendering collaborator for the candidate map. The session
// only ever calls these four operations.
type MapWidget interface {
	Initialize(center catalog.LatLng, zoom int)
	SetMarkers(markers []Marker)
	OnMarkerClick(handler func(index int))
	Destroy()
}

// MarkerKind selects the marker glyph.
type MarkerKind string

const (
	MarkerPlace   MarkerKind = "place"
	MarkerClimate MarkerKind = "climate"
)

// Marker is one candidate location on the map.
type Marker struct {
	Index    int
	Name     string
	Position catalog.LatLng
	Kind     MarkerKind
	Climate  catalog.ClimateTag
	Selected bool
}

// Map defaults centre on the peninsula, halfway between Chetumal and Isla
// Mujeres and between Campeche and Cancún.
var (
	MapCenter = catalog.LatLng{Lat: 19.9, Lng: -88.6}
	MapZoom   = 8
)

// Markers projects the candidate set onto map markers.
func (s *Session) Markers() []Marker {
	chosen, hasChosen := s.selection.Location()
	selected := s.selection.Climates()
	candidates := s.selection.Candidates()
	out := make([]Marker, 0, len(candidates))
	for i, loc := range candidates {
		m := Marker{
			Index:    i,
			Name:     loc.Name,
			Position: loc.Coordinates(),
			Kind:     MarkerPlace,
			Selected: hasChosen && chosen.Name == loc.Name,
		}
		for _, tag := range selected {
			if loc.HasAnyClimate([]catalog.ClimateTag{tag}) {
				m.Kind = MarkerClimate
				m.Climate = tag
				break
			}
		}
		out = append(out, m)
	}
	return out
}

// BindMap initializes w and routes marker clicks into location selection.
func (s *Session) BindMap(w MapWidget) {
	w.Initialize(MapCenter, MapZoom)
	w.SetMarkers(s.Markers())
	w.OnMarkerClick(func(index int) {
		if err := s.selection.SelectLocation(index); err != nil {
			s.logger.Warn("marker click ignored", "index", index, "error", err)
			return
		}
		w.SetMarkers(s.Markers())
	})
}
