package weatherapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/prediction"
	"github.com/yucatanweather/app/internal/domain/session"
	apperrors "github.com/yucatanweather/app/pkg/errors"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the places and predict endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(url, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchLocations implements session.WeatherService.
func (c *Client) FetchLocations(ctx context.Context) ([]catalog.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/places", nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeNetwork, "build places request", err)
	}
	var out []catalog.Location
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchPrediction implements session.WeatherService.
func (c *Client) FetchPrediction(ctx context.Context, criteria prediction.Criteria) (prediction.Result, error) {
	body, err := json.Marshal(criteria)
	if err != nil {
		return prediction.Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "encode prediction request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict", bytes.NewReader(body))
	if err != nil {
		return prediction.Result{}, apperrors.Wrap(apperrors.CodeNetwork, "build prediction request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	var out prediction.Result
	if err := c.do(req, &out); err != nil {
		return prediction.Result{}, err
	}
	return out, nil
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return apperrors.Wrap(apperrors.CodeNetwork, fmt.Sprintf("%s %s: status=%d", req.Method, req.URL.Path, resp.StatusCode), fmt.Errorf("body=%s", strings.TrimSpace(string(payload))))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return apperrors.Wrap(apperrors.CodeNetwork, "decode response", err)
	}
	return nil
}

var _ session.WeatherService = (*Client)(nil)
