package power

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/dataset"
)

func TestFetchPointBuildsQueryAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "PRECTOTCORR,RH2M", q.Get("parameters"))
		require.Equal(t, "AG", q.Get("community"))
		require.Equal(t, "20.5", q.Get("latitude"))
		require.Equal(t, "-88", q.Get("longitude"))
		require.Equal(t, "19980101", q.Get("start"))
		require.Equal(t, "19991231", q.Get("end"))
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "earth", user)
		require.Equal(t, "data", pass)
		_, _ = w.Write([]byte(`{"properties":{"parameter":{"PRECTOTCORR":{"19980101":0.3},"RH2M":{"19980101":81.2}}}}`))
	}))
	defer srv.Close()

	series, err := NewClient(srv.URL, "earth", "data", time.Second).FetchPoint(context.Background(), dataset.PointQuery{
		Lat: 20.5, Lng: -88, StartYear: 1998, EndYear: 1999, Parameters: []string{"PRECTOTCORR", "RH2M"},
	})
	require.NoError(t, err)
	require.Equal(t, 81.2, series["RH2M"]["19980101"])
}

func TestFetchPointWithoutCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		require.False(t, ok)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", "", time.Second).FetchPoint(context.Background(), dataset.PointQuery{})
	require.ErrorContains(t, err, "status=422")
}
