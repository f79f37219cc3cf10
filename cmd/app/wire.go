//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yucatanweather/app/internal/bootstrap"
	"github.com/yucatanweather/app/internal/domain/places"
	"github.com/yucatanweather/app/internal/domain/prediction"
	"github.com/yucatanweather/app/internal/infra/config"
	httpiface "github.com/yucatanweather/app/internal/interface/http"
	"github.com/yucatanweather/app/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		providePredictionConfig,
		providePlacesRepository,
		providePredictionCache,
		providePredictionModel,
		places.NewService,
		prediction.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
