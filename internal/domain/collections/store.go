package collections

import "context"

// Persisted keys, shared with any other client of the same store.
const (
	KeyHistory   = "searchHistory"
	KeyFavorites = "favorites"
	KeyTheme     = "theme"
	KeyLanguage  = "language"
)

// Store is the key-value persistence contract behind every collection.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
