package weatherapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/prediction"
	apperrors "github.com/yucatanweather/app/pkg/errors"
)

func TestFetchLocations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/places", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[{"name":"Uxmal","lat":20.36,"lng":-89.77,"category":"archaeological","climates":["sunny"]}]`))
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL+"/", time.Second).FetchLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, catalog.Archaeological, list[0].Category)
	require.Equal(t, []catalog.ClimateTag{catalog.Sunny}, list[0].Climates)
}

func TestFetchPredictionSendsCriteria(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Tulum", body["location"])
		require.Equal(t, "2025-01-10", body["date"])
		_, _ = w.Write([]byte(`{"temperature":0,"humidity":0,"windSpeed":0,"climateTag":"sunny","confidencePercent":0,"extra":true}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, time.Second).FetchPrediction(context.Background(), prediction.Criteria{
		Date: "2025-01-10", Location: "Tulum", Place: "beaches", Climate: "sunny",
	})
	require.NoError(t, err)
	require.Equal(t, "sunny", res.ClimateTag)
}

func TestNonSuccessStatusIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":{"code":"places_unavailable"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).FetchLocations(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodeNetwork))
	require.Contains(t, err.Error(), "status=502")
}

func TestMalformedBodyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).FetchPrediction(context.Background(), prediction.Criteria{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeNetwork))
}
