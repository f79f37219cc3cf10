package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/collections"
	"github.com/yucatanweather/app/internal/domain/prediction"
	apperrors "github.com/yucatanweather/app/pkg/errors"
	"github.com/yucatanweather/app/pkg/util"
)

// ErrNoLocation is returned when an action needs a chosen location.
var ErrNoLocation = errors.New("no location chosen")

// WeatherService supplies locations and predictions over the network.
type WeatherService interface {
	FetchLocations(ctx context.Context) ([]catalog.Location, error)
	FetchPrediction(ctx context.Context, criteria prediction.Criteria) (prediction.Result, error)
}

// Deps are the collaborators a session needs.
type Deps struct {
	Collections collections.Service
	Weather     WeatherService
	Catalog     *catalog.Catalog
	Logger      *slog.Logger
}

// Options tune session defaults.
type Options struct {
	DefaultCategory catalog.Category
	Today           time.Time
}

// Status is the indicator for the last async operation.
type Status struct {
	Loading bool
	Failed  bool
	Message string
}

// Session is the root context of one interactive client. It is driven from a
// single goroutine and holds no locks.
type Session struct {
	router      *Router
	selection   *Selection
	catalog     *catalog.Catalog
	collections collections.Service
	weather     WeatherService
	logger      *slog.Logger

	defaultCategory catalog.Category
	status          Status
	locStatus       Status
	prediction      *prediction.Result
}

// New restores persisted state and starts on the landing screen.
func New(ctx context.Context, deps Deps, opts Options) (*Session, error) {
	if deps.Collections == nil {
		return nil, fmt.Errorf("session: collections service is required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = catalog.Archaeological
	}
	if !opts.DefaultCategory.Valid() {
		return nil, fmt.Errorf("session: unknown default category %q", opts.DefaultCategory)
	}
	if opts.Today.IsZero() {
		opts.Today = util.Today()
	}

	deps.Collections.LoadHistory(ctx)
	deps.Collections.LoadFavorites(ctx)
	deps.Collections.LoadPreferences(ctx)

	return &Session{
		router:          NewRouter(),
		selection:       newSelection(deps.Catalog, opts.Today),
		catalog:         deps.Catalog,
		collections:     deps.Collections,
		weather:         deps.Weather,
		logger:          deps.Logger.With("component", "session"),
		defaultCategory: opts.DefaultCategory,
	}, nil
}

// Screen returns the active screen.
func (s *Session) Screen() Screen { return s.router.Current() }

// Selection exposes the filter state.
func (s *Session) Selection() *Selection { return s.selection }

// Catalog returns the location catalog in use.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Status returns the prediction indicator for the current results visit.
func (s *Session) Status() Status { return s.status }

// LocationsStatus returns the indicator for the last catalog refresh.
func (s *Session) LocationsStatus() Status { return s.locStatus }

// Prediction returns the last applied prediction for the current results visit.
func (s *Session) Prediction() (prediction.Result, bool) {
	if s.prediction == nil {
		return prediction.Result{}, false
	}
	return *s.prediction, true
}

// Continue moves from landing to filter. With nothing chosen yet it applies
// the default category and picks its first location.
func (s *Session) Continue() error {
	if _, err := s.router.Fire(TriggerContinue); err != nil {
		return err
	}
	if s.selection.Place() != "" || s.selection.CanPredict() {
		return nil
	}
	if err := s.selection.SelectPlace(s.defaultCategory); err != nil {
		return err
	}
	if len(s.selection.Candidates()) > 0 {
		return s.selection.SelectLocation(0)
	}
	return nil
}

// OpenProfile moves to the profile screen.
func (s *Session) OpenProfile() error {
	_, err := s.router.Fire(TriggerProfile)
	return err
}

// Back returns to the previous screen.
func (s *Session) Back() error {
	_, err := s.router.Fire(TriggerBack)
	return err
}

// Predict records the selection in history and moves to results.
func (s *Session) Predict(ctx context.Context) error {
	if !s.router.Can(TriggerPredict) {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, TriggerPredict, s.router.Current())
	}
	loc, ok := s.selection.Location()
	if !ok {
		return ErrNoLocation
	}
	if _, err := s.collections.AppendHistory(ctx, s.selection.Date(), loc.Name, s.selection.PrimaryClimate(), string(s.selection.Place())); err != nil {
		s.logger.Warn("history not persisted", "error", err)
	}
	if _, err := s.router.Fire(TriggerPredict); err != nil {
		return err
	}
	s.prediction = nil
	s.status = Status{}
	return nil
}

// SelectFavorite reopens favorite index on the filter screen.
func (s *Session) SelectFavorite(index int) error {
	if !s.router.Can(TriggerSelectFavorite) {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, TriggerSelectFavorite, s.router.Current())
	}
	favorites := s.collections.Favorites()
	if index < 0 || index >= len(favorites) {
		return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("favorite index %d out of range", index), nil)
	}
	s.selection.SetLocation(favorites[index].LocationData())
	_, err := s.router.Fire(TriggerSelectFavorite)
	return err
}

// ToggleFavorite adds or removes the chosen location.
func (s *Session) ToggleFavorite(ctx context.Context) (bool, error) {
	loc, ok := s.selection.Location()
	if !ok {
		return false, ErrNoLocation
	}
	return s.collections.ToggleFavorite(ctx, loc)
}

// IsFavorite reports current favorites membership.
func (s *Session) IsFavorite(name string) bool { return s.collections.IsFavorite(name) }

// History returns the search history, newest first.
func (s *Session) History() []collections.HistoryEntry { return s.collections.History() }

// Favorites returns saved places, newest first.
func (s *Session) Favorites() []collections.FavoriteEntry { return s.collections.Favorites() }

// Preferences returns theme and language.
func (s *Session) Preferences() collections.Preferences { return s.collections.Preferences() }

// ToggleTheme flips and persists the theme.
func (s *Session) ToggleTheme(ctx context.Context) (collections.Theme, error) {
	return s.collections.ToggleTheme(ctx)
}

// ToggleLanguage flips and persists the language.
func (s *Session) ToggleLanguage(ctx context.Context) (collections.Language, error) {
	return s.collections.ToggleLanguage(ctx)
}

// Criteria describes the current selection for the weather service.
func (s *Session) Criteria() prediction.Criteria {
	loc, _ := s.selection.Location()
	climates := s.selection.Climates()
	tags := make([]string, 0, len(climates))
	for _, c := range climates {
		tags = append(tags, string(c))
	}
	return prediction.Criteria{
		Date:     s.selection.Date().Format(util.DateLayout),
		Location: loc.Name,
		Lat:      loc.Lat,
		Lng:      loc.Lng,
		Place:    string(s.selection.Place()),
		Climate:  s.selection.PrimaryClimate(),
		Climates: tags,
	}
}

// BeginPrediction marks a prediction as loading and returns the results visit
// token plus the fetch to run off the update loop.
func (s *Session) BeginPrediction() (uint64, func(context.Context) (prediction.Result, error)) {
	token := s.router.Visit()
	criteria := s.Criteria()
	weather := s.weather
	s.status = Status{Loading: true}
	return token, func(ctx context.Context) (prediction.Result, error) {
		if weather == nil {
			return prediction.Result{}, apperrors.Wrap(apperrors.CodeNetwork, "weather service not configured", nil)
		}
		return weather.FetchPrediction(ctx, criteria)
	}
}

// ApplyPrediction stores a fetched prediction when token still matches the
// active results visit. It reports whether the result was applied.
func (s *Session) ApplyPrediction(token uint64, result prediction.Result, err error) bool {
	if s.router.Current() != ScreenResults || token != s.router.Visit() {
		s.logger.Debug("stale prediction discarded", "token", token, "visit", s.router.Visit())
		return false
	}
	if err != nil {
		s.logger.Warn("prediction fetch failed", "error", err)
		s.status = Status{Failed: true, Message: err.Error()}
		return true
	}
	s.prediction = &result
	s.status = Status{}
	return true
}

// BeginLocations returns the fetch that refreshes the catalog.
func (s *Session) BeginLocations() func(context.Context) ([]catalog.Location, error) {
	weather := s.weather
	s.locStatus = Status{Loading: true}
	return func(ctx context.Context) ([]catalog.Location, error) {
		if weather == nil {
			return nil, apperrors.Wrap(apperrors.CodeNetwork, "weather service not configured", nil)
		}
		return weather.FetchLocations(ctx)
	}
}

// ApplyLocations validates fetched locations and swaps them into the catalog.
// A failed, empty or invalid fetch leaves the current catalog in place. The
// prediction indicator is never touched.
func (s *Session) ApplyLocations(list []catalog.Location, err error) error {
	if err == nil {
		err = s.replaceCatalog(list)
	}
	if err != nil {
		s.logger.Warn("locations fetch failed", "error", err)
		s.locStatus = Status{Failed: true, Message: err.Error()}
		return err
	}
	s.locStatus = Status{}
	return nil
}

func (s *Session) replaceCatalog(list []catalog.Location) error {
	if len(list) == 0 {
		return apperrors.Wrap(apperrors.CodeNetwork, "invalid locations payload: no locations", nil)
	}
	cat, err := catalog.New(list)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeNetwork, "invalid locations payload", err)
	}
	s.catalog = cat
	s.selection.setCatalog(cat)
	s.logger.Info("locations refreshed", "count", cat.Len())
	return nil
}
