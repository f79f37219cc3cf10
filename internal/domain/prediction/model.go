package prediction

import "time"

// Request is the free-form body accepted by the predict endpoint.
type Request map[string]any

// Criteria is the selection a client submits. The server does not enforce it;
// it only reads the fields it recognises out of a Request.
type Criteria struct {
	Date     string   `json:"date"`
	Location string   `json:"location"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Place    string   `json:"place"`
	Climate  string   `json:"climate,omitempty"`
	Climates []string `json:"climates,omitempty"`
}

// Result is the prediction payload returned to clients.
type Result struct {
	Temperature       float64 `json:"temperature"`
	Humidity          float64 `json:"humidity"`
	WindSpeed         float64 `json:"windSpeed"`
	ClimateTag        string  `json:"climateTag"`
	ConfidencePercent float64 `json:"confidencePercent"`
	Message           string  `json:"message,omitempty"`
	Model             string  `json:"model,omitempty"`
}

// Config wires runtime knobs for the prediction domain.
type Config struct {
	CacheTTL time.Duration
}
