package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/prediction"
	"github.com/yucatanweather/app/internal/infra/config"
	apperrors "github.com/yucatanweather/app/pkg/errors"
)

func TestRouter_ListPlaces(t *testing.T) {
	placesSvc := &stubPlaces{listFn: func(context.Context) ([]catalog.Location, error) {
		return catalog.Default().All(), nil
	}}

	rec := performRequest(http.MethodGet, "/api/places", "", newRouterUnderTest(t, placesSvc, &stubPrediction{}, config.RetryConfig{}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []catalog.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 23)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ListPlacesSourceFailure(t *testing.T) {
	placesSvc := &stubPlaces{listFn: func(context.Context) ([]catalog.Location, error) {
		return nil, apperrors.Wrap(apperrors.CodePlacesUnavailable, "places source unavailable", errors.New("dial tcp"))
	}}

	rec := performRequest(http.MethodGet, "/api/places", "", newRouterUnderTest(t, placesSvc, &stubPrediction{}, config.RetryConfig{}))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "places_unavailable", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
}

func TestRouter_PredictSuccess(t *testing.T) {
	predSvc := &stubPrediction{predictFn: func(_ context.Context, req prediction.Request) (prediction.Result, error) {
		require.Equal(t, "Tulum", req["location"])
		return prediction.Result{ClimateTag: "sunny", Message: "placeholder"}, nil
	}}

	rec := performRequest(http.MethodPost, "/api/predict", `{"location":"Tulum","anything":[1,2]}`, newRouterUnderTest(t, &stubPlaces{}, predSvc, config.RetryConfig{}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got prediction.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "sunny", got.ClimateTag)
}

func TestRouter_PredictRejectsNonObjects(t *testing.T) {
	for _, body := range []string{`[1,2,3]`, `"text"`, `{"broken":`, ``} {
		rec := performRequest(http.MethodPost, "/api/predict", body, newRouterUnderTest(t, &stubPlaces{}, &stubPrediction{}, config.RetryConfig{}))
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		errBody := decodeErrorBody(t, rec.Body.Bytes())
		require.Equal(t, "invalid_request", errBody["error"]["code"])
		require.NotEmpty(t, errBody["error"]["message"])
	}
}

func TestRouter_PredictRetriesServerErrors(t *testing.T) {
	calls := 0
	predSvc := &stubPrediction{predictFn: func(context.Context, prediction.Request) (prediction.Result, error) {
		calls++
		if calls == 1 {
			return prediction.Result{}, apperrors.Wrap(apperrors.CodePredictionFailed, "model failed", errors.New("transient"))
		}
		return prediction.Result{ClimateTag: "rainy"}, nil
	}}
	retry := config.RetryConfig{Enabled: true, MaxAttempts: 2, BaseBackoff: time.Millisecond}

	rec := performRequest(http.MethodPost, "/api/predict", `{"climate":"rainy"}`, newRouterUnderTest(t, &stubPlaces{}, predSvc, retry))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, calls)
}

func TestRouter_PredictFailureAfterRetries(t *testing.T) {
	predSvc := &stubPrediction{predictFn: func(context.Context, prediction.Request) (prediction.Result, error) {
		return prediction.Result{}, apperrors.Wrap(apperrors.CodePredictionFailed, "model failed", nil)
	}}
	retry := config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}

	rec := performRequest(http.MethodPost, "/api/predict", `{}`, newRouterUnderTest(t, &stubPlaces{}, predSvc, retry))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "prediction_failed", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newRouterUnderTest(t, &stubPlaces{}, &stubPrediction{}, config.RetryConfig{})
	req := httptest.NewRequest(http.MethodOptions, "/api/predict", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	require.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestRateLimiterRefills(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	require.True(t, limiter.allow("1.2.3.4"))
	require.True(t, limiter.allow("1.2.3.4"))
	require.False(t, limiter.allow("1.2.3.4"))
	require.True(t, limiter.allow("5.6.7.8"))

	now = now.Add(time.Second)
	require.True(t, limiter.allow("1.2.3.4"))
	require.False(t, limiter.allow("1.2.3.4"))
}

func TestOriginPolicy(t *testing.T) {
	policy := newOriginPolicy([]string{"https://yucatan.example", "http://localhost:5173"})
	require.Equal(t, "http://LOCALHOST:5173", policy.allowOrigin("http://LOCALHOST:5173"))
	require.Equal(t, "https://yucatan.example", policy.allowOrigin("https://evil.example"))
	require.Equal(t, "https://yucatan.example", policy.allowOrigin(""))

	require.Equal(t, "*", newOriginPolicy(nil).allowOrigin("anything"))
	require.Equal(t, "*", newOriginPolicy([]string{"https://yucatan.example", "*"}).allowOrigin("anything"))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", apperrors.Wrap(apperrors.CodeInvalidInput, "bad dates", nil), http.StatusBadRequest, "invalid_request"},
		{"places down", apperrors.Wrap(apperrors.CodePlacesUnavailable, "read", errors.New("eof")), http.StatusBadGateway, "places_unavailable"},
		{"prediction", apperrors.Wrap(apperrors.CodePredictionFailed, "model", nil), http.StatusInternalServerError, "prediction_failed"},
		{"rate limited", errTooManyRequests, http.StatusTooManyRequests, "rate_limit_exceeded"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			require.Equal(t, tc.status, got.status)
			require.Equal(t, tc.code, got.code)
		})
	}

	body := classify(errors.New("db password leaked")).body()
	require.Equal(t, gin.H{"code": "internal_error", "message": "something went wrong"}, body["error"])
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, placesSvc *stubPlaces, predSvc *stubPrediction, retry config.RetryConfig) *http.Server {
	t.Helper()
	handler := NewHandler(placesSvc, predSvc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			Retry:        retry,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubPlaces struct {
	listFn func(ctx context.Context) ([]catalog.Location, error)
}

func (s *stubPlaces) List(ctx context.Context) ([]catalog.Location, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type stubPrediction struct {
	predictFn func(ctx context.Context, req prediction.Request) (prediction.Result, error)
}

func (s *stubPrediction) Predict(ctx context.Context, req prediction.Request) (prediction.Result, error) {
	if s.predictFn != nil {
		return s.predictFn(ctx, req)
	}
	return prediction.Result{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
