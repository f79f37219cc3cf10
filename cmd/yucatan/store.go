package main

import (
	"context"
	"fmt"

	"github.com/yucatanweather/app/internal/domain/collections"
	"github.com/yucatanweather/app/internal/infra/config"
	"github.com/yucatanweather/app/internal/infra/kvstore"
)

type closableStore interface {
	collections.Store
	Close() error
}

func openStore(ctx context.Context, sc config.StoreConfig) (closableStore, error) {
	switch sc.Driver {
	case config.StoreMemory:
		return kvstore.NewMemoryStore(), nil
	case config.StoreValkey:
		client, err := kvstore.DialValkey(ctx, sc.Addr)
		if err != nil {
			return nil, err
		}
		return kvstore.NewValkeyStore(client, sc.Prefix), nil
	case config.StoreSQLite:
		return kvstore.NewSQLiteStore(sc.Path)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", sc.Driver)
	}
}
