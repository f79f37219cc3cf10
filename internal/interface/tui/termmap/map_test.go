package termmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/session"
)

func TestProjectCentersAndClips(t *testing.T) {
	m := New(40, 10)
	m.Initialize(session.MapCenter, session.MapZoom)

	col, row, ok := m.Project(session.MapCenter)
	require.True(t, ok)
	require.Equal(t, 20, col)
	require.Equal(t, 5, row)

	_, _, ok = m.Project(catalog.LatLng{Lat: 40, Lng: -100})
	require.False(t, ok)
}

func TestEveryBundledLocationIsVisible(t *testing.T) {
	sizes := [][2]int{{48, 14}, {60, 20}, {100, 15}, {200, 20}, {20, 5}, {30, 30}}
	for _, size := range sizes {
		m := New(size[0], size[1])
		m.Initialize(session.MapCenter, session.MapZoom)
		for _, loc := range catalog.Default().All() {
			_, _, ok := m.Project(loc.Coordinates())
			require.True(t, ok, "%s at %dx%d", loc.Name, size[0], size[1])
		}
	}
}

func TestRenderDrawsMarkers(t *testing.T) {
	m := New(40, 10)
	require.Empty(t, m.Render())
	m.Initialize(session.MapCenter, session.MapZoom)
	m.SetMarkers([]session.Marker{
		{Index: 0, Name: "Mérida", Position: catalog.LatLng{Lat: 20.97, Lng: -89.62}, Kind: session.MarkerPlace},
		{Index: 1, Name: "Tulum", Position: catalog.LatLng{Lat: 20.21, Lng: -87.46}, Kind: session.MarkerClimate, Climate: catalog.Rainy, Selected: true},
	})

	out := m.Render()
	require.Len(t, strings.Split(out, "\n"), 10)
	require.Contains(t, out, "o")
	require.Contains(t, out, "@")
}

func TestClickAndDestroy(t *testing.T) {
	m := New(20, 5)
	m.Initialize(session.MapCenter, session.MapZoom)
	var clicked []int
	m.OnMarkerClick(func(i int) { clicked = append(clicked, i) })
	m.Click(2)
	require.Equal(t, []int{2}, clicked)

	m.Destroy()
	require.False(t, m.Ready())
	m.Click(3)
	require.Equal(t, []int{2}, clicked)
}

func TestGlyph(t *testing.T) {
	require.Equal(t, 'W', Glyph(session.Marker{Kind: session.MarkerClimate, Climate: catalog.Windy}))
	require.Equal(t, 'o', Glyph(session.Marker{Kind: session.MarkerPlace}))
	require.Equal(t, '@', Glyph(session.Marker{Selected: true}))
}
