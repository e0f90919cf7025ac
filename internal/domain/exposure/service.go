package exposure

import (
	"context"
	"log/slog"
	"math"

	apperrors "github.com/airaware/ai-service/pkg/errors"
)

// Request carries three parallel arrays describing past intervals. All
// three must have the same length.
type Request struct {
	AQIHistory      []int    `json:"aqi_history" binding:"required"`
	DurationMinutes []int    `json:"duration_minutes" binding:"required"`
	ActivityLevels  []string `json:"activity_levels" binding:"required"`
}

// Response summarizes cumulative pollutant dose.
type Response struct {
	TotalExposureScore      float64 `json:"total_exposure_score"`
	WeightedExposure        float64 `json:"weighted_exposure"`
	RiskLevel               string  `json:"risk_level"`
	EquivalentHoursAtAQI100 float64 `json:"equivalent_hours_at_aqi_100"`
	Recommendation          string  `json:"recommendation"`
}

// breathingRates maps activity labels to liters per minute. Unrecognized
// labels fall back to the light activity rate.
var breathingRates = map[string]float64{
	"resting":  8,
	"light":    15,
	"moderate": 25,
	"intense":  40,
}

const defaultBreathingRate = 15

var riskRecommendations = map[string]string{
	"low":       "Your exposure is within safe limits. Continue monitoring air quality.",
	"moderate":  "Consider reducing time in polluted areas. Use air purification at home.",
	"high":      "Your exposure is elevated. Limit outdoor activities and use protective measures.",
	"very_high": "Serious exposure detected. Seek cleaner air environments and consult healthcare provider if experiencing symptoms.",
}

// Service exposes cumulative exposure accounting.
type Service interface {
	Accumulate(ctx context.Context, req Request) (Response, error)
}

type service struct {
	logger *slog.Logger
}

// NewService wires up the exposure domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "exposure.service")}
}

func (s *service) Accumulate(ctx context.Context, req Request) (Response, error) {
	if len(req.AQIHistory) != len(req.DurationMinutes) || len(req.AQIHistory) != len(req.ActivityLevels) {
		return Response{}, apperrors.Wrap(apperrors.CodeLengthMismatch,
			"aqi_history, duration_minutes and activity_levels must have the same length", nil)
	}

	var total, weighted float64
	for i := range req.AQIHistory {
		aqi := float64(req.AQIHistory[i])
		duration := float64(req.DurationMinutes[i])

		rate, ok := breathingRates[req.ActivityLevels[i]]
		if !ok {
			rate = defaultBreathingRate
		}

		interval := aqi * duration * (rate / 15)
		total += interval
		weighted += interval * (aqi / 100)
	}

	level := riskBand(weighted)

	s.logger.Info("exposure accumulated",
		"intervals", len(req.AQIHistory),
		"total", total,
		"weighted", weighted,
		"risk_level", level,
	)

	return Response{
		TotalExposureScore:      math.Round(total),
		WeightedExposure:        math.Round(weighted),
		RiskLevel:               level,
		EquivalentHoursAtAQI100: math.Round(weighted/100/60*10) / 10,
		Recommendation:          riskRecommendations[level],
	}, nil
}

// riskBand buckets the weighted exposure total.
func riskBand(weighted float64) string {
	switch {
	case weighted > 15000:
		return "very_high"
	case weighted > 10000:
		return "high"
	case weighted > 5000:
		return "moderate"
	default:
		return "low"
	}
}
