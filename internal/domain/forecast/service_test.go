package forecast

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/airaware/ai-service/internal/domain/airquality"
	apperrors "github.com/airaware/ai-service/pkg/errors"
)

func newTestService(now time.Time) *service {
	return &service{
		cfg:    Config{DefaultHoursAhead: 24, MaxHoursAhead: 72},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return now },
	}
}

func flatHistory(aqi, hours int) []HistoryPoint {
	points := make([]HistoryPoint, hours)
	for i := range points {
		points[i] = HistoryPoint{AQI: aqi}
	}
	return points
}

func mustParse(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestForecastFlatHistoryOutsideDiurnalWindows(t *testing.T) {
	// 10:00, 11:00 and 12:00 carry no diurnal adjustment.
	svc := newTestService(mustParse("2024-07-01T10:00:00Z"))

	resp, err := svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(80, 24),
		HoursAhead:     3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Forecasts, 3)
	require.Equal(t, "stable", resp.Trend)

	for _, point := range resp.Forecasts {
		require.Equal(t, 80, point.PredictedAQI)
		require.Equal(t, airquality.CategoryModerate, point.Category)
		require.Equal(t, "medium", point.Confidence)
	}
	require.Equal(t, "2024-07-01T10:00:00Z", resp.Forecasts[0].Timestamp)
	require.Equal(t, "2024-07-01T12:00:00Z", resp.Forecasts[2].Timestamp)
	require.Equal(t, "2024-07-01T10:00:00Z", resp.ForecastGeneratedAt)
}

func TestForecastInsufficientHistory(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(80, 23),
		HoursAhead:     3,
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInsufficientHistory))
}

func TestForecastDiurnalAdjustments(t *testing.T) {
	// Starting at 07:00 the first three projected hours are all rush hour.
	svc := newTestService(mustParse("2024-07-01T07:00:00Z"))

	resp, err := svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(80, 24),
		HoursAhead:     3,
	})
	require.NoError(t, err)
	for _, point := range resp.Forecasts {
		require.Equal(t, 92, point.PredictedAQI) // 80 * 1.15
	}

	// 03:00 and 04:00 fall in the early morning trough.
	svc = newTestService(mustParse("2024-07-01T03:00:00Z"))
	resp, err = svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(80, 24),
		HoursAhead:     2,
	})
	require.NoError(t, err)
	for _, point := range resp.Forecasts {
		require.Equal(t, 72, point.PredictedAQI) // 80 * 0.90
	}
}

func TestForecastTrendLabels(t *testing.T) {
	svc := newTestService(mustParse("2024-07-01T12:00:00Z"))

	// Older half at 100, newer half at 40: ma24=40, ma48=70, improving.
	history := append(flatHistory(100, 24), flatHistory(40, 24)...)
	resp, err := svc.Forecast(context.Background(), Request{HistoricalData: history, HoursAhead: 1})
	require.NoError(t, err)
	require.Equal(t, "improving", resp.Trend)

	history = append(flatHistory(40, 24), flatHistory(100, 24)...)
	resp, err = svc.Forecast(context.Background(), Request{HistoricalData: history, HoursAhead: 1})
	require.NoError(t, err)
	require.Equal(t, "worsening", resp.Trend)
}

func TestForecastClampsToValidRange(t *testing.T) {
	// Rush hour on top of an already maximal AQI must not exceed 500.
	svc := newTestService(mustParse("2024-07-01T08:00:00Z"))

	resp, err := svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(500, 24),
		HoursAhead:     1,
	})
	require.NoError(t, err)
	require.Equal(t, 500, resp.Forecasts[0].PredictedAQI)
	require.Equal(t, airquality.CategoryHazardous, resp.Forecasts[0].Category)

	// A steep downward trend bottoms out at zero.
	svc = newTestService(mustParse("2024-07-01T12:00:00Z"))
	history := append(flatHistory(400, 24), flatHistory(10, 24)...)
	resp, err = svc.Forecast(context.Background(), Request{HistoricalData: history, HoursAhead: 48})
	require.NoError(t, err)
	last := resp.Forecasts[len(resp.Forecasts)-1]
	require.GreaterOrEqual(t, last.PredictedAQI, 0)
}

func TestForecastDefaultsAndCapsHorizon(t *testing.T) {
	svc := newTestService(mustParse("2024-07-01T12:00:00Z"))

	resp, err := svc.Forecast(context.Background(), Request{HistoricalData: flatHistory(60, 24)})
	require.NoError(t, err)
	require.Len(t, resp.Forecasts, 24)

	resp, err = svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(60, 24),
		HoursAhead:     1000,
	})
	require.NoError(t, err)
	require.Len(t, resp.Forecasts, 72)
}

func TestForecastUsesOnlyLastWeekOfHistory(t *testing.T) {
	svc := newTestService(mustParse("2024-07-01T12:00:00Z"))

	// 200 hours of noise in front of a flat week must not influence the
	// averages.
	history := append(flatHistory(480, 200), flatHistory(60, 168)...)
	resp, err := svc.Forecast(context.Background(), Request{HistoricalData: history, HoursAhead: 1})
	require.NoError(t, err)
	require.Equal(t, "stable", resp.Trend)
	require.Equal(t, 60, resp.Forecasts[0].PredictedAQI)
}

func TestForecastBestActivityTimes(t *testing.T) {
	svc := newTestService(mustParse("2024-07-01T12:00:00Z"))

	resp, err := svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(60, 24),
		HoursAhead:     24,
		Location:       map[string]float64{"lat": 1.35, "lon": 103.82},
	})
	require.NoError(t, err)
	require.Len(t, resp.BestActivityTimes, 5)
	for _, window := range resp.BestActivityTimes {
		require.Equal(t, "all_activities", window.SuitableFor)
	}
	require.Equal(t, map[string]float64{"lat": 1.35, "lon": 103.82}, resp.Location)
}

func TestForecastLightActivityWindows(t *testing.T) {
	svc := newTestService(mustParse("2024-07-01T12:00:00Z"))

	resp, err := svc.Forecast(context.Background(), Request{
		HistoricalData: flatHistory(120, 24),
		HoursAhead:     3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.BestActivityTimes)
	for _, window := range resp.BestActivityTimes {
		require.Equal(t, "light_activities", window.SuitableFor)
	}
}
