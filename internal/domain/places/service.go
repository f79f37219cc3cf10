package places

import (
	"context"
	"log/slog"

	"github.com/yucatanweather/app/internal/domain/catalog"
	apperrors "github.com/yucatanweather/app/pkg/errors"
)

// Repository yields the raw location list from a configured source.
type Repository interface {
	Load(ctx context.Context) ([]catalog.Location, error)
}

// Service serves the validated location list.
type Service interface {
	List(ctx context.Context) ([]catalog.Location, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the places domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "places.service"),
	}
}

// List reloads the source on every call so edits show up without a restart.
func (s *service) List(ctx context.Context) ([]catalog.Location, error) {
	locations, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("places source failed", "error", err)
		return nil, apperrors.Wrap(apperrors.CodePlacesUnavailable, "places source unavailable", err)
	}
	cat, err := catalog.New(locations)
	if err != nil {
		s.logger.Error("places source returned invalid data", "error", err)
		return nil, apperrors.Wrap(apperrors.CodePlacesUnavailable, "places source returned invalid data", err)
	}
	return cat.All(), nil
}
