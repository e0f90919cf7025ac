package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/airaware/ai-service/internal/domain/activity"
	"github.com/airaware/ai-service/internal/domain/forecast"
	"github.com/airaware/ai-service/internal/infra/config"
	"github.com/airaware/ai-service/pkg/metrics"
)

func provideForecastConfig(cfg *config.Config) forecast.Config {
	return forecast.Config{
		DefaultHoursAhead: cfg.Forecast.DefaultHoursAhead,
		MaxHoursAhead:     cfg.Forecast.MaxHoursAhead,
	}
}

func provideAdvisorConfig(cfg *config.Config) activity.Config {
	return activity.Config{
		MaxSuggestions: cfg.Advisor.MaxSuggestions,
	}
}

func provideMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func provideMetricsCollector(cfg *config.Config, registry *prometheus.Registry) *metrics.Collector {
	return metrics.NewCollector(cfg.Metrics.Namespace, registry)
}
