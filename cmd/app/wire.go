//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/airaware/ai-service/internal/bootstrap"
	"github.com/airaware/ai-service/internal/domain/activity"
	"github.com/airaware/ai-service/internal/domain/exposure"
	"github.com/airaware/ai-service/internal/domain/forecast"
	"github.com/airaware/ai-service/internal/domain/healthrisk"
	"github.com/airaware/ai-service/internal/infra/config"
	httpiface "github.com/airaware/ai-service/internal/interface/http"
	"github.com/airaware/ai-service/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideForecastConfig,
		provideAdvisorConfig,
		provideMetricsRegistry,
		provideMetricsCollector,
		healthrisk.NewService,
		forecast.NewService,
		exposure.NewService,
		activity.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
