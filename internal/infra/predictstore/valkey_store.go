package predictstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yucatanweather/app/internal/domain/prediction"
)

// ValkeyStore caches predictions in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs the cache.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "predict"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements prediction.Cache.
func (s *ValkeyStore) Get(ctx context.Context, key string) (prediction.Result, bool, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.entryKey(key)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return prediction.Result{}, false, nil
		}
		return prediction.Result{}, false, err
	}
	var result prediction.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return prediction.Result{}, false, err
	}
	return result, true, nil
}

// Save implements prediction.Cache.
func (s *ValkeyStore) Save(ctx context.Context, key string, result prediction.Result, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ prediction.Cache = (*ValkeyStore)(nil)
