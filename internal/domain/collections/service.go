package collections

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yucatanweather/app/pkg/errors"
	"github.com/yucatanweather/app/pkg/util"
)

// Service owns the persisted history, favorites and preferences of a session.
// It is not safe for concurrent use; a session drives it from one goroutine.
type Service interface {
	LoadHistory(ctx context.Context) []HistoryEntry
	LoadFavorites(ctx context.Context) []FavoriteEntry
	LoadPreferences(ctx context.Context) Preferences
	History() []HistoryEntry
	Favorites() []FavoriteEntry
	Preferences() Preferences
	AppendHistory(ctx context.Context, date time.Time, location, climate, place string) ([]HistoryEntry, error)
	ToggleFavorite(ctx context.Context, location LocationData) (bool, error)
	IsFavorite(name string) bool
	ToggleTheme(ctx context.Context) (Theme, error)
	ToggleLanguage(ctx context.Context) (Language, error)
	Clear(ctx context.Context) error
}

type service struct {
	store     Store
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	history   []HistoryEntry
	favorites []FavoriteEntry
	prefs     Preferences
}

// NewService builds the collections service on top of a key-value store.
func NewService(store Store, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger.With("component", "collections.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
		prefs:  DefaultPreferences(),
	}
}

func (s *service) LoadHistory(ctx context.Context) []HistoryEntry {
	var wire []historyWire
	if !s.readJSON(ctx, KeyHistory, &wire) {
		s.history = nil
		return s.History()
	}
	entries := make([]HistoryEntry, 0, len(wire))
	for _, item := range wire {
		date, err := util.ParseInstant(item.Date)
		if err != nil {
			s.logger.Warn("dropping history entry with bad date", "id", item.ID, "error", err)
			continue
		}
		ts, err := util.ParseInstant(item.Timestamp)
		if err != nil {
			s.logger.Warn("dropping history entry with bad timestamp", "id", item.ID, "error", err)
			continue
		}
		entries = append(entries, HistoryEntry{
			ID:        item.ID,
			Date:      date,
			Location:  item.Location,
			Climate:   item.Climate,
			Place:     item.Place,
			Timestamp: ts,
		})
	}
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	s.history = entries
	return s.History()
}

func (s *service) LoadFavorites(ctx context.Context) []FavoriteEntry {
	var wire []favoriteWire
	if !s.readJSON(ctx, KeyFavorites, &wire) {
		s.favorites = nil
		return s.Favorites()
	}
	entries := make([]FavoriteEntry, 0, len(wire))
	seen := make(map[string]struct{}, len(wire))
	for _, item := range wire {
		if _, dup := seen[item.Name]; dup {
			continue
		}
		added, err := util.ParseInstant(item.AddedAt)
		if err != nil {
			s.logger.Warn("dropping favorite with bad timestamp", "name", item.Name, "error", err)
			continue
		}
		seen[item.Name] = struct{}{}
		entries = append(entries, FavoriteEntry{
			ID:      item.ID,
			Name:    item.Name,
			Lat:     item.Lat,
			Lng:     item.Lng,
			Type:    item.Type,
			AddedAt: added,
		})
	}
	s.favorites = entries
	return s.Favorites()
}

func (s *service) LoadPreferences(ctx context.Context) Preferences {
	prefs := DefaultPreferences()
	if raw, ok := s.readString(ctx, KeyTheme); ok {
		switch Theme(raw) {
		case ThemeDark, ThemeLight:
			prefs.Theme = Theme(raw)
		default:
			s.logger.Warn("ignoring stored theme", "value", raw)
		}
	}
	if raw, ok := s.readString(ctx, KeyLanguage); ok {
		switch Language(raw) {
		case LanguageES, LanguageEN:
			prefs.Language = Language(raw)
		default:
			s.logger.Warn("ignoring stored language", "value", raw)
		}
	}
	s.prefs = prefs
	return prefs
}

func (s *service) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *service) Favorites() []FavoriteEntry {
	out := make([]FavoriteEntry, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s *service) Preferences() Preferences {
	return s.prefs
}

func (s *service) AppendHistory(ctx context.Context, date time.Time, location, climate, place string) ([]HistoryEntry, error) {
	entry := HistoryEntry{
		ID:        s.newID(),
		Date:      date,
		Location:  location,
		Climate:   climate,
		Place:     place,
		Timestamp: s.now(),
	}
	updated := make([]HistoryEntry, 0, HistoryLimit)
	updated = append(updated, entry)
	updated = append(updated, s.history...)
	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}
	s.history = updated
	return s.History(), s.writeJSON(ctx, KeyHistory, updated)
}

func (s *service) ToggleFavorite(ctx context.Context, location LocationData) (bool, error) {
	for i, fav := range s.favorites {
		if fav.Name != location.Name {
			continue
		}
		updated := make([]FavoriteEntry, 0, len(s.favorites)-1)
		updated = append(updated, s.favorites[:i]...)
		updated = append(updated, s.favorites[i+1:]...)
		s.favorites = updated
		return false, s.writeJSON(ctx, KeyFavorites, updated)
	}

	entry := FavoriteEntry{
		ID:      s.newID(),
		Name:    location.Name,
		Lat:     location.Lat,
		Lng:     location.Lng,
		Type:    location.Type,
		AddedAt: s.now(),
	}
	updated := make([]FavoriteEntry, 0, len(s.favorites)+1)
	updated = append(updated, entry)
	updated = append(updated, s.favorites...)
	s.favorites = updated
	return true, s.writeJSON(ctx, KeyFavorites, updated)
}

func (s *service) IsFavorite(name string) bool {
	for _, fav := range s.favorites {
		if fav.Name == name {
			return true
		}
	}
	return false
}

func (s *service) ToggleTheme(ctx context.Context) (Theme, error) {
	next := ThemeDark
	if s.prefs.Theme == ThemeDark {
		next = ThemeLight
	}
	s.prefs.Theme = next
	return next, s.writeString(ctx, KeyTheme, string(next))
}

func (s *service) ToggleLanguage(ctx context.Context) (Language, error) {
	next := LanguageEN
	if s.prefs.Language == LanguageEN {
		next = LanguageES
	}
	s.prefs.Language = next
	return next, s.writeString(ctx, KeyLanguage, string(next))
}

func (s *service) Clear(ctx context.Context) error {
	s.history = nil
	s.favorites = nil
	for _, key := range []string{KeyHistory, KeyFavorites} {
		if err := s.store.Delete(ctx, key); err != nil {
			return apperrors.Wrap(apperrors.CodeStorage, "clear "+key, err)
		}
	}
	s.logger.Info("collections cleared")
	return nil
}

// readJSON decodes key into dst. Any failure leaves the caller with an empty
// collection; nothing is surfaced beyond a log line.
func (s *service) readJSON(ctx context.Context, key string, dst any) bool {
	raw, ok := s.readString(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("stored collection is malformed, starting empty", "key", key, "error", err)
		return false
	}
	return true
}

func (s *service) readString(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("store read failed", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (s *service) writeJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "encode "+key, err)
	}
	return s.writeString(ctx, key, string(payload))
}

func (s *service) writeString(ctx context.Context, key, value string) error {
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.Error("store write failed", "key", key, "error", err)
		return apperrors.Wrap(apperrors.CodeStorage, "persist "+key, err)
	}
	return nil
}
