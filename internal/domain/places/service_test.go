package places

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/catalog"
	apperrors "github.com/yucatanweather/app/pkg/errors"
)

func TestListReturnsValidatedLocations(t *testing.T) {
	repo := &stubRepo{loadFn: func(context.Context) ([]catalog.Location, error) {
		return []catalog.Location{
			{Name: "Izamal", Lat: 20.93, Lng: -89.02, Category: catalog.Cities, Climates: []catalog.ClimateTag{catalog.Sunny}},
			{Name: "Progreso", Lat: 21.28, Lng: -89.66, Category: catalog.Beaches},
		}, nil
	}}
	svc := NewService(repo, newTestLogger())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 1, repo.calls)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}

func TestListWrapsSourceFailure(t *testing.T) {
	svc := NewService(&stubRepo{loadFn: func(context.Context) ([]catalog.Location, error) {
		return nil, errors.New("connection refused")
	}}, newTestLogger())

	_, err := svc.List(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodePlacesUnavailable))
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := NewService(&stubRepo{loadFn: func(context.Context) ([]catalog.Location, error) {
		return []catalog.Location{{Name: "Nowhere", Category: "volcanoes"}}, nil
	}}, newTestLogger())

	_, err := svc.List(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodePlacesUnavailable))
}

type stubRepo struct {
	loadFn func(context.Context) ([]catalog.Location, error)
	calls  int
}

func (s *stubRepo) Load(ctx context.Context) ([]catalog.Location, error) {
	s.calls++
	return s.loadFn(ctx)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
