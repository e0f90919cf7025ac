package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/airaware/ai-service/internal/domain/airquality"
	apperrors "github.com/airaware/ai-service/pkg/errors"
)

// Request captures the payload accepted by the activity advisor.
type Request struct {
	CurrentAQI      int      `json:"current_aqi"`
	ForecastNext6h  []int    `json:"forecast_next_6h" binding:"required"`
	UserPreferences []string `json:"user_preferences"`
}

// Suggestion is a single activity the current air supports.
type Suggestion struct {
	Activity           string `json:"activity"`
	CurrentSuitability string `json:"current_suitability"`
	Recommendation     string `json:"recommendation"`
}

// BestWindow identifies the cleanest hour in the short forecast.
type BestWindow struct {
	Hour    int    `json:"hour"`
	AQI     int    `json:"aqi"`
	Message string `json:"message"`
}

// Response is serialized back to API consumers.
type Response struct {
	CurrentAQI          int          `json:"current_aqi"`
	SuggestedActivities []Suggestion `json:"suggested_activities"`
	BestTimeNext6h      BestWindow   `json:"best_time_next_6h"`
}

// Config caps the suggestion list.
type Config struct {
	MaxSuggestions int
}

type catalogEntry struct {
	lowAQI     int
	highAQI    int
	activities []string
}

// activityCatalog maps AQI bands to suitable activities. Only the first
// band containing the current AQI is consulted.
var activityCatalog = []catalogEntry{
	{0, 50, []string{"running", "cycling", "outdoor_yoga", "hiking", "sports"}},
	{51, 100, []string{"walking", "light_jogging", "outdoor_dining", "photography"}},
	{101, 150, []string{"indoor_gym", "mall_walking", "indoor_swimming", "shopping"}},
	{151, 500, []string{"indoor_yoga", "home_workout", "reading", "stay_indoors"}},
}

// Service exposes air quality aware activity suggestions.
type Service interface {
	Suggest(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService wires up the activity advisor domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{cfg: cfg, logger: logger.With("component", "activity.service")}
}

func (s *service) Suggest(ctx context.Context, req Request) (Response, error) {
	if len(req.ForecastNext6h) == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			"forecast_next_6h cannot be empty", nil)
	}

	maxSuggestions := s.cfg.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}

	suitability := "suitable"
	if req.CurrentAQI >= 100 {
		suitability = "limited"
	}
	note := fmt.Sprintf("Air quality is %s", airquality.Categorize(req.CurrentAQI))

	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, entry := range activityCatalog {
		if req.CurrentAQI < entry.lowAQI || req.CurrentAQI > entry.highAQI {
			continue
		}
		for _, candidate := range entry.activities {
			if len(suggestions) == maxSuggestions {
				break
			}
			if len(req.UserPreferences) == 0 || contains(req.UserPreferences, candidate) {
				suggestions = append(suggestions, Suggestion{
					Activity:           candidate,
					CurrentSuitability: suitability,
					Recommendation:     note,
				})
			}
		}
		break
	}

	bestHour := 0
	for i, aqi := range req.ForecastNext6h {
		if aqi < req.ForecastNext6h[bestHour] {
			bestHour = i
		}
	}

	s.logger.Info("activities suggested",
		"current_aqi", req.CurrentAQI,
		"suggestions", len(suggestions),
		"best_hour", bestHour,
	)

	return Response{
		CurrentAQI:          req.CurrentAQI,
		SuggestedActivities: suggestions,
		BestTimeNext6h: BestWindow{
			Hour:    bestHour,
			AQI:     req.ForecastNext6h[bestHour],
			Message: fmt.Sprintf("Best air quality expected in %d hour(s)", bestHour),
		},
	}, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
