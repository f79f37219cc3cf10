package prediction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	apperrors "github.com/yucatanweather/app/pkg/errors"
)

// Service answers prediction requests.
type Service interface {
	Predict(ctx context.Context, req Request) (Result, error)
}

type service struct {
	cfg    Config
	model  Model
	cache  Cache
	logger *slog.Logger
}

// NewService wires up the prediction domain.
func NewService(cfg Config, model Model, cache Cache, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		model:  model,
		cache:  cache,
		logger: logger.With("component", "prediction.service"),
	}
}

func (s *service) Predict(ctx context.Context, req Request) (Result, error) {
	if req == nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "request body must be a JSON object", nil)
	}

	key, err := fingerprint(s.model.Name(), req)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "request body cannot be encoded", err)
	}

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("prediction cache lookup failed", "error", err)
	} else if ok {
		s.logger.Debug("prediction cache hit", "key", key)
		return cached, nil
	}

	result, err := s.model.Predict(ctx, req)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodePredictionFailed, "model "+s.model.Name()+" failed", err)
	}
	result.Model = s.model.Name()

	if err := s.cache.Save(ctx, key, result, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("prediction cache save failed", "error", err)
	}
	s.logger.Info("prediction served", "model", result.Model, "climate", result.ClimateTag)
	return result, nil
}

// fingerprint hashes the canonical encoding of req; encoding/json sorts map keys.
func fingerprint(model string, req Request) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(model+":"), payload...))
	return hex.EncodeToString(sum[:]), nil
}
