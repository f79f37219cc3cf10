package dataset

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/yucatanweather/app/internal/domain/catalog"
)

// Parameters requested for every grid point.
const (
	ParamPrecipitation = "PRECTOTCORR"
	ParamTempMax       = "T2M_MAX"
	ParamTempMin       = "T2M_MIN"
	ParamHumidity      = "RH2M"
	ParamWind          = "WS10M"
	ParamIrradiance    = "ALLSKY_SFC_SW_DWN"
)

// ExpectedParameters lists the CSV value columns in order.
var ExpectedParameters = []string{
	ParamPrecipitation,
	ParamTempMax,
	ParamTempMin,
	ParamHumidity,
	ParamWind,
	ParamIrradiance,
}

// Series maps parameter -> YYYYMMDD -> value.
type Series map[string]map[string]float64

// PointQuery is one grid point download.
type PointQuery struct {
	Lat, Lng           float64
	StartYear, EndYear int
	Parameters         []string
}

// PointSource downloads daily series for one point.
type PointSource interface {
	FetchPoint(ctx context.Context, q PointQuery) (Series, error)
}

// Grid is an inclusive lat/lng rectangle sampled every Step degrees.
type Grid struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
	Step           float64
}

// DefaultGrid covers the Yucatán peninsula.
func DefaultGrid() Grid {
	return Grid{LatMin: 18.0, LatMax: 21.0, LngMin: -90.0, LngMax: -87.0, Step: 0.5}
}

// Points enumerates the grid row by row, latitude outermost.
func (g Grid) Points() []catalog.LatLng {
	lats := axis(g.LatMin, g.LatMax, g.Step)
	lngs := axis(g.LngMin, g.LngMax, g.Step)
	out := make([]catalog.LatLng, 0, len(lats)*len(lngs))
	for _, lat := range lats {
		for _, lng := range lngs {
			out = append(out, catalog.LatLng{Lat: lat, Lng: lng})
		}
	}
	return out
}

func axis(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return nil
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// ResolveParameter maps an expected parameter to the name the API returned.
// Precipitation matches any PREC/RAIN field; other names match by containment.
func ResolveParameter(name string, present []string) (string, bool) {
	sorted := append([]string(nil), present...)
	sort.Strings(sorted)
	for _, p := range sorted {
		if p == name {
			return p, true
		}
	}
	upper := strings.ToUpper(name)
	rainLike := func(s string) bool {
		s = strings.ToUpper(s)
		return strings.Contains(s, "PREC") || strings.Contains(s, "RAIN")
	}
	for _, p := range sorted {
		if rainLike(upper) {
			if rainLike(p) {
				return p, true
			}
			continue
		}
		if strings.Contains(strings.ToUpper(p), upper) {
			return p, true
		}
	}
	return "", false
}
