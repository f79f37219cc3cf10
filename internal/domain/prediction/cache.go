package prediction

import (
	"context"
	"time"
)

// Cache stores results keyed by request fingerprint.
type Cache interface {
	Get(ctx context.Context, key string) (Result, bool, error)
	Save(ctx context.Context, key string, result Result, ttl time.Duration) error
}
