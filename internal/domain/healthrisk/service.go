package healthrisk

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/airaware/ai-service/internal/domain/airquality"
	apperrors "github.com/airaware/ai-service/pkg/errors"
)

// Service exposes the personalized health risk assessment.
type Service interface {
	Analyze(ctx context.Context, req Request) (Response, error)
}

type service struct {
	logger *slog.Logger
}

// NewService wires up the health risk domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "healthrisk.service")}
}

func (s *service) Analyze(ctx context.Context, req Request) (Response, error) {
	profile := req.HealthProfile
	if profile.SensitivityLevel == "" {
		profile.SensitivityLevel = SensitivityModerate
	}
	if _, ok := sensitivityMultipliers[profile.SensitivityLevel]; !ok {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("unknown sensitivity level %q", profile.SensitivityLevel), nil)
	}
	if _, ok := activityMultipliers[req.IntendedActivity]; !ok {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("unknown activity type %q", req.IntendedActivity), nil)
	}

	score := riskScore(req.AirQuality, profile, req.IntendedActivity)
	category := airquality.Categorize(req.AirQuality.AQI)

	s.logger.Info("health risk analyzed",
		"aqi", req.AirQuality.AQI,
		"activity", req.IntendedActivity,
		"risk_score", score,
		"category", category,
	)

	return Response{
		RiskScore:              math.Round(score*10) / 10,
		RiskLevel:              riskLevel(score),
		AQICategory:            category,
		Recommendations:        recommend(score, req.AirQuality, profile, req.IntendedActivity, req.LocationType),
		SafeActivityDuration:   safeWindow(req.AirQuality, profile),
		RequiresMask:           requiresMask(score, req.LocationType),
		AirPurifierRecommended: purifierRecommended(req.AirQuality, req.LocationType),
	}, nil
}
