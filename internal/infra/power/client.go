package power

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yucatanweather/app/internal/domain/dataset"
)

const defaultBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

// Client downloads daily point series from the NASA POWER API.
type Client struct {
	baseURL    string
	community  string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient builds an API client. Credentials are optional.
func NewClient(baseURL, username, password string, timeout time.Duration) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(u, "/"),
		community:  "AG",
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPoint implements dataset.PointSource.
func (c *Client) FetchPoint(ctx context.Context, q dataset.PointQuery) (dataset.Series, error) {
	params := url.Values{}
	params.Set("parameters", strings.Join(q.Parameters, ","))
	params.Set("community", c.community)
	params.Set("longitude", strconv.FormatFloat(q.Lng, 'f', -1, 64))
	params.Set("latitude", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	params.Set("start", fmt.Sprintf("%d0101", q.StartYear))
	params.Set("end", fmt.Sprintf("%d1231", q.EndYear))
	params.Set("format", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build power request: %w", err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("power request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("power request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode power response: %w", err)
	}
	return raw.Properties.Parameter, nil
}

type apiResponse struct {
	Properties struct {
		Parameter dataset.Series `json:"parameter"`
	} `json:"properties"`
}

var _ dataset.PointSource = (*Client)(nil)
