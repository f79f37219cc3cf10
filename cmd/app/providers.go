package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yucatanweather/app/internal/domain/places"
	"github.com/yucatanweather/app/internal/domain/prediction"
	"github.com/yucatanweather/app/internal/infra/config"
	"github.com/yucatanweather/app/internal/infra/kvstore"
	"github.com/yucatanweather/app/internal/infra/placesrepo"
	"github.com/yucatanweather/app/internal/infra/predictstore"
)

func providePredictionConfig(cfg *config.Config) prediction.Config {
	return prediction.Config{CacheTTL: cfg.Prediction.CacheTTL}
}

func providePredictionModel() prediction.Model {
	return prediction.NewPlaceholderModel()
}

// providePlacesRepository opens the configured source. Connection setup
// failures fall back to the bundled list so the endpoint keeps answering.
func providePlacesRepository(cfg *config.Config, logger *slog.Logger) (places.Repository, func(), error) {
	noop := func() {}
	fallback := placesrepo.NewEmbeddedRepository()
	switch cfg.Places.Source {
	case config.PlacesFile:
		logger.Info("places file source enabled", "path", cfg.Places.Path)
		return placesrepo.NewFileRepository(cfg.Places.Path), noop, nil
	case config.PlacesS3:
		obj := cfg.Places.ObjectStorage
		repo, err := placesrepo.NewObjectRepository(obj.Endpoint, obj.AccessKey, obj.SecretKey, obj.Bucket, obj.Region, obj.Key, logger)
		if err != nil {
			logger.Error("object storage init failed, using embedded places", "error", err)
			return fallback, noop, nil
		}
		logger.Info("places object storage source enabled", "bucket", obj.Bucket, "key", obj.Key)
		return repo, noop, nil
	case config.PlacesPostgres:
		pool, err := openPostgres(cfg.Places.Postgres, logger)
		if err != nil {
			logger.Error("postgres unavailable, using embedded places", "error", err)
			return fallback, noop, nil
		}
		logger.Info("places postgres source enabled")
		return placesrepo.NewPostgresRepository(pool), pool.Close, nil
	default:
		return fallback, noop, nil
	}
}

func openPostgres(cfg config.PostgresConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Debug("postgres pool ready", "max_conns", poolConfig.MaxConns)
	return pool, nil
}

func providePredictionCache(cfg *config.Config, logger *slog.Logger) (prediction.Cache, func()) {
	if cfg.Prediction.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		client, err := kvstore.DialValkey(ctx, cfg.Prediction.Redis.Addr)
		if err != nil {
			logger.Error("valkey unavailable, falling back to memory cache", "error", err)
		} else {
			logger.Info("prediction valkey cache enabled", "addr", cfg.Prediction.Redis.Addr)
			return predictstore.NewValkeyStore(client, "predict"), client.Close
		}
	}
	return predictstore.NewMemoryStore(), func() {}
}
