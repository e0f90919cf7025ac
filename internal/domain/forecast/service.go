package forecast

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/airaware/ai-service/internal/domain/airquality"
	apperrors "github.com/airaware/ai-service/pkg/errors"
)

const (
	// minHistoryHours is the smallest history that yields a usable moving
	// average.
	minHistoryHours = 24
	// historyWindowHours caps the history at one week; older readings are
	// discarded before averaging.
	historyWindowHours = 168

	shortWindowHours = 24
	longWindowHours  = 48
)

// Service exposes the short horizon AQI forecast.
type Service interface {
	Forecast(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the forecast domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "forecast.service"),
		now:    time.Now,
	}
}

func (s *service) Forecast(ctx context.Context, req Request) (Response, error) {
	if len(req.HistoricalData) < minHistoryHours {
		return Response{}, apperrors.Wrap(apperrors.CodeInsufficientHistory,
			"need at least 24 hours of historical data", nil)
	}

	hoursAhead := req.HoursAhead
	if hoursAhead <= 0 {
		hoursAhead = s.cfg.DefaultHoursAhead
	}
	if s.cfg.MaxHoursAhead > 0 && hoursAhead > s.cfg.MaxHoursAhead {
		hoursAhead = s.cfg.MaxHoursAhead
	}

	values := make([]float64, 0, historyWindowHours)
	start := 0
	if len(req.HistoricalData) > historyWindowHours {
		start = len(req.HistoricalData) - historyWindowHours
	}
	for _, point := range req.HistoricalData[start:] {
		values = append(values, float64(point.AQI))
	}

	ma24 := tailMean(values, shortWindowHours)
	ma48 := ma24
	if len(values) >= longWindowHours {
		ma48 = tailMean(values, longWindowHours)
	}
	trend := ma24 - ma48

	generatedAt := s.now()
	points := make([]Point, 0, hoursAhead)
	for hour := 0; hour < hoursAhead; hour++ {
		futureTime := generatedAt.Add(time.Duration(hour) * time.Hour)
		predicted := ma24 + trend*float64(hour)/24
		predicted *= diurnalFactor(futureTime.Hour())

		if predicted < 0 {
			predicted = 0
		} else if predicted > 500 {
			predicted = 500
		}
		aqi := int(math.Round(predicted))

		points = append(points, Point{
			Timestamp:    futureTime.Format(time.RFC3339),
			PredictedAQI: aqi,
			Category:     airquality.Categorize(aqi),
			Confidence:   "medium",
		})
	}

	s.logger.Info("aqi forecast generated",
		"history_hours", len(values),
		"hours_ahead", hoursAhead,
		"trend", trend,
	)

	return Response{
		Location:            req.Location,
		ForecastGeneratedAt: generatedAt.Format(time.RFC3339),
		Forecasts:           points,
		Trend:               trendLabel(trend),
		BestActivityTimes:   bestActivityTimes(points),
	}, nil
}

// diurnalFactor approximates rush hour peaks and the pre-dawn trough.
func diurnalFactor(hourOfDay int) float64 {
	switch {
	case (hourOfDay >= 7 && hourOfDay <= 9) || (hourOfDay >= 17 && hourOfDay <= 19):
		return 1.15
	case hourOfDay >= 2 && hourOfDay <= 5:
		return 0.90
	default:
		return 1.0
	}
}

func trendLabel(trend float64) string {
	switch {
	case trend < -5:
		return "improving"
	case trend > 5:
		return "worsening"
	default:
		return "stable"
	}
}

// bestActivityTimes picks up to five forecast hours clean enough for
// outdoor plans.
func bestActivityTimes(points []Point) []ActivityWindow {
	windows := make([]ActivityWindow, 0, 5)
	for _, point := range points {
		if len(windows) == 5 {
			break
		}
		switch {
		case point.PredictedAQI < 100:
			windows = append(windows, ActivityWindow{
				Time:        point.Timestamp,
				AQI:         point.PredictedAQI,
				SuitableFor: "all_activities",
			})
		case point.PredictedAQI < 150:
			windows = append(windows, ActivityWindow{
				Time:        point.Timestamp,
				AQI:         point.PredictedAQI,
				SuitableFor: "light_activities",
			})
		}
	}
	return windows
}

// tailMean averages the last n values; n must not exceed len(values).
func tailMean(values []float64, n int) float64 {
	if n > len(values) {
		n = len(values)
	}
	sum := 0.0
	for _, v := range values[len(values)-n:] {
		sum += v
	}
	return sum / float64(n)
}
