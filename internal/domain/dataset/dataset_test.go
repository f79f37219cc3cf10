package dataset

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultGridPoints(t *testing.T) {
	points := DefaultGrid().Points()
	require.Len(t, points, 7*7)
	require.Equal(t, 18.0, points[0].Lat)
	require.Equal(t, -90.0, points[0].Lng)
	require.Equal(t, -89.5, points[1].Lng)
	require.Equal(t, 21.0, points[len(points)-1].Lat)
	require.Equal(t, -87.0, points[len(points)-1].Lng)
}

func TestGridRejectsBadStep(t *testing.T) {
	require.Empty(t, Grid{LatMin: 0, LatMax: 1, LngMin: 0, LngMax: 1}.Points())
}

func TestResolveParameter(t *testing.T) {
	got, ok := ResolveParameter("PRECTOTCORR", []string{"T2M_MAX", "RAIN_TOTAL"})
	require.True(t, ok)
	require.Equal(t, "RAIN_TOTAL", got)

	got, ok = ResolveParameter("RH2M", []string{"RH2M_AVG", "WS10M"})
	require.True(t, ok)
	require.Equal(t, "RH2M_AVG", got)

	got, ok = ResolveParameter("WS10M", []string{"WS10M", "WS10M_MAX"})
	require.True(t, ok)
	require.Equal(t, "WS10M", got)

	_, ok = ResolveParameter("ALLSKY_SFC_SW_DWN", []string{"T2M_MIN"})
	require.False(t, ok)
}

func TestClassifyRuleOrder(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		in   Reading
		want ClimateCode
	}{
		{"rain wins over wind", Reading{Precipitation: 6, Wind: 5, Irradiance: 25, Humidity: 40}, CodeRainy},
		{"wind", Reading{Precipitation: 1, Wind: 3.5, Irradiance: 25, Humidity: 40}, CodeWindy},
		{"clear sky", Reading{Precipitation: 0, Wind: 2, Irradiance: 21, Humidity: 59}, CodeSunny},
		{"humid default", Reading{Precipitation: 0, Wind: 2, Irradiance: 21, Humidity: 60}, CodeCloudy},
		{"missing values", Reading{Precipitation: nan, Wind: nan, Irradiance: nan, Humidity: nan}, CodeCloudy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.in))
		})
	}
	require.Equal(t, "rainy", string(CodeRainy.Tag()))
}

func TestLabelDropsCoordinatesAndAppendsCode(t *testing.T) {
	in := strings.Join([]string{
		"date,lat,lon,PRECTOTCORR,T2M_MAX,T2M_MIN,RH2M,WS10M,ALLSKY_SFC_SW_DWN",
		"19980101,18,-90,7.2,30,20,85,2,10",
		"19980102,18,-90,0.1,31,21,50,1.5,24",
		"19980103,18,-90,,31,21,,,",
	}, "\n") + "\n"

	var out bytes.Buffer
	stats, err := Label(strings.NewReader(in), &out)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Rows)
	require.Equal(t, 1, stats.ByCode[CodeRainy])
	require.Equal(t, 1, stats.ByCode[CodeSunny])
	require.Equal(t, 1, stats.ByCode[CodeCloudy])

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "PRECTOTCORR,T2M_MAX,T2M_MIN,RH2M,WS10M,ALLSKY_SFC_SW_DWN,CLIMA_TIPO", lines[0])
	require.Equal(t, "7.2,30,20,85,2,10,3", lines[1])
	require.Equal(t, "0.1,31,21,50,1.5,24,0", lines[2])
	require.Equal(t, ",31,21,,,,1", lines[3])
}

func TestLabelErrors(t *testing.T) {
	_, err := Label(strings.NewReader("date,lat,lon,T2M_MAX\n"), io.Discard)
	require.ErrorContains(t, err, "missing column")

	_, err = Label(strings.NewReader("date,PRECTOTCORR,RH2M,WS10M,ALLSKY_SFC_SW_DWN\n1998-01-01,1,1,1,1\n"), io.Discard)
	require.ErrorContains(t, err, "bad date")
}

func TestFetcherWritesRowsAndSkipsFailures(t *testing.T) {
	calls := 0
	source := &stubSource{fetchFn: func(_ context.Context, q PointQuery) (Series, error) {
		calls++
		require.Equal(t, ExpectedParameters, q.Parameters)
		require.Equal(t, 2000, q.StartYear)
		if q.Lng == -89.5 {
			return nil, errors.New("status=500")
		}
		return Series{
			"PRECTOTCORR":       {"20000102": 0.5, "20000101": 1.25},
			"T2M_MAX":           {"20000101": 30, "20000102": 31},
			"RH2M":              {"20000101": 70},
			"WS10M":             {"20000101": 2, "20000102": 3},
			"ALLSKY_SFC_SW_DWN": {"20000101": 18, "20000102": 22},
		}, nil
	}}
	cfg := FetchConfig{
		Grid:      Grid{LatMin: 20, LatMax: 20, LngMin: -90, LngMax: -89.5, Step: 0.5},
		StartYear: 2000,
		EndYear:   2000,
	}
	var out bytes.Buffer
	stats, err := NewFetcher(cfg, source, slog.New(slog.NewTextHandler(io.Discard, nil))).Run(context.Background(), &out)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, FetchStats{Points: 2, Skipped: 1, Rows: 2}, stats)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "date,lat,lon,PRECTOTCORR,T2M_MAX,T2M_MIN,RH2M,WS10M,ALLSKY_SFC_SW_DWN", lines[0])
	require.Equal(t, "20000101,20,-90,1.25,30,,70,2,18", lines[1])
	require.Equal(t, "20000102,20,-90,0.5,31,,,3,22", lines[2])
}

type stubSource struct {
	fetchFn func(context.Context, PointQuery) (Series, error)
}

func (s *stubSource) FetchPoint(ctx context.Context, q PointQuery) (Series, error) {
	return s.fetchFn(ctx, q)
}
