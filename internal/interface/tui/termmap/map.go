// Package termmap draws map markers on a character grid.
package termmap

import (
	"math"
	"strings"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/session"
)

// Map is a session.MapWidget rendered as text. Zoom follows web-map
// convention: each level halves the visible span.
type Map struct {
	width, height int
	center        catalog.LatLng
	zoom          int
	markers       []session.Marker
	handler       func(int)
	ready         bool
}

// New builds a map of the given character size.
func New(width, height int) *Map {
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}
	return &Map{width: width, height: height}
}

// Initialize implements session.MapWidget.
func (m *Map) Initialize(center catalog.LatLng, zoom int) {
	m.center = center
	m.zoom = zoom
	m.ready = true
}

// SetMarkers implements session.MapWidget.
func (m *Map) SetMarkers(markers []session.Marker) {
	m.markers = append(m.markers[:0], markers...)
}

// OnMarkerClick implements session.MapWidget.
func (m *Map) OnMarkerClick(handler func(index int)) {
	m.handler = handler
}

// Destroy implements session.MapWidget.
func (m *Map) Destroy() {
	m.markers = nil
	m.handler = nil
	m.ready = false
}

// Ready reports whether Initialize ran since the last Destroy.
func (m *Map) Ready() bool { return m.ready }

// Markers returns the markers last set.
func (m *Map) Markers() []session.Marker {
	return append([]session.Marker(nil), m.markers...)
}

// Click simulates selecting marker index.
func (m *Map) Click(index int) {
	if m.handler != nil {
		m.handler(index)
	}
}

// Resize changes the grid size.
func (m *Map) Resize(width, height int) {
	if width >= 10 {
		m.width = width
	}
	if height >= 5 {
		m.height = height
	}
}

// spans returns the visible longitude and latitude extent in degrees. The
// zoom span is the minimum on both axes; the longer axis of the grid widens to
// keep the aspect. Terminal cells are roughly twice as tall as wide.
func (m *Map) spans() (float64, float64) {
	span := 360 / math.Pow(2, float64(m.zoom)) * 3
	w, h := float64(m.width), float64(m.height)*2
	if w >= h {
		return span * w / h, span
	}
	return span, span * h / w
}

// Project converts a coordinate to a grid cell; ok is false off-screen.
func (m *Map) Project(p catalog.LatLng) (col, row int, ok bool) {
	lngSpan, latSpan := m.spans()
	x := (p.Lng - (m.center.Lng - lngSpan/2)) / lngSpan
	y := ((m.center.Lat + latSpan/2) - p.Lat) / latSpan
	if x < 0 || x >= 1 || y < 0 || y >= 1 {
		return 0, 0, false
	}
	return int(x * float64(m.width)), int(y * float64(m.height)), true
}

// Glyph is the character drawn for a marker.
func Glyph(mk session.Marker) rune {
	if mk.Selected {
		return '@'
	}
	if mk.Kind == session.MarkerClimate && mk.Climate != "" {
		return []rune(strings.ToUpper(string(mk.Climate)))[0]
	}
	return 'o'
}

// Render draws the grid; later markers win shared cells except the selection.
func (m *Map) Render() string {
	if !m.ready {
		return ""
	}
	grid := make([][]rune, m.height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat("·", m.width))
	}
	for _, mk := range m.markers {
		col, row, ok := m.Project(mk.Position)
		if !ok {
			continue
		}
		if grid[row][col] == '@' {
			continue
		}
		grid[row][col] = Glyph(mk)
	}
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

var _ session.MapWidget = (*Map)(nil)
