package prediction

import (
	"context"
	"strings"

	"github.com/yucatanweather/app/internal/domain/catalog"
)

// Model turns a submitted selection into a prediction.
type Model interface {
	Name() string
	Predict(ctx context.Context, req Request) (Result, error)
}

// PlaceholderModel answers every request with zero readings. No trained model
// exists yet; the climate tag echoes what the user asked for.
type PlaceholderModel struct{}

// NewPlaceholderModel returns the default model.
func NewPlaceholderModel() *PlaceholderModel {
	return &PlaceholderModel{}
}

// Name implements Model.
func (PlaceholderModel) Name() string { return "placeholder" }

// Predict implements Model.
func (PlaceholderModel) Predict(_ context.Context, req Request) (Result, error) {
	return Result{
		ClimateTag: string(requestedClimate(req)),
		Message:    "prediction model not configured; values are placeholders",
	}, nil
}

func requestedClimate(req Request) catalog.ClimateTag {
	if raw, ok := req["climate"].(string); ok {
		if tag, err := catalog.ParseClimateTag(raw); err == nil {
			return tag
		}
	}
	if list, ok := req["climates"].([]any); ok {
		for _, item := range list {
			raw, ok := item.(string)
			if !ok {
				continue
			}
			if tag, err := catalog.ParseClimateTag(strings.TrimSpace(raw)); err == nil {
				return tag
			}
		}
	}
	return catalog.Sunny
}

var _ Model = (*PlaceholderModel)(nil)
