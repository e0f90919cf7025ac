package exposure

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/airaware/ai-service/pkg/errors"
)

func newTestService() Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAccumulateLengthMismatch(t *testing.T) {
	svc := newTestService()

	_, err := svc.Accumulate(context.Background(), Request{
		AQIHistory:      []int{50, 60},
		DurationMinutes: []int{30},
		ActivityLevels:  []string{},
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLengthMismatch))
}

func TestAccumulateSingleInterval(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Accumulate(context.Background(), Request{
		AQIHistory:      []int{60},
		DurationMinutes: []int{60},
		ActivityLevels:  []string{"moderate"},
	})
	require.NoError(t, err)

	// 60 * 60 * (25/15) = 6000; weighted = 6000 * (60/100) = 3600.
	require.Equal(t, 6000.0, resp.TotalExposureScore)
	require.Equal(t, 3600.0, resp.WeightedExposure)
	require.Equal(t, "low", resp.RiskLevel)
	require.Equal(t, 0.6, resp.EquivalentHoursAtAQI100)
	require.Equal(t, riskRecommendations["low"], resp.Recommendation)
}

func TestAccumulateBreathingRates(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Accumulate(context.Background(), Request{
		AQIHistory:      []int{100, 100},
		DurationMinutes: []int{60, 60},
		ActivityLevels:  []string{"resting", "intense"},
	})
	require.NoError(t, err)

	// resting: 6000 * 8/15 = 3200; intense: 6000 * 40/15 = 16000.
	require.Equal(t, 19200.0, resp.TotalExposureScore)
}

func TestAccumulateUnknownActivityDefaultsToLightRate(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Accumulate(context.Background(), Request{
		AQIHistory:      []int{50},
		DurationMinutes: []int{30},
		ActivityLevels:  []string{"juggling"},
	})
	require.NoError(t, err)
	require.Equal(t, 1500.0, resp.TotalExposureScore)
}

func TestAccumulateRiskBands(t *testing.T) {
	require.Equal(t, "low", riskBand(5000))
	require.Equal(t, "moderate", riskBand(5001))
	require.Equal(t, "high", riskBand(10001))
	require.Equal(t, "very_high", riskBand(15001))
}

func TestAccumulateVeryHighExposure(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Accumulate(context.Background(), Request{
		AQIHistory:      []int{200},
		DurationMinutes: []int{120},
		ActivityLevels:  []string{"intense"},
	})
	require.NoError(t, err)

	// 200 * 120 * (40/15) = 64000; weighted = 128000.
	require.Equal(t, 64000.0, resp.TotalExposureScore)
	require.Equal(t, 128000.0, resp.WeightedExposure)
	require.Equal(t, "very_high", resp.RiskLevel)
	require.Equal(t, 21.3, resp.EquivalentHoursAtAQI100)
}

func TestAccumulateEmptyInput(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Accumulate(context.Background(), Request{
		AQIHistory:      []int{},
		DurationMinutes: []int{},
		ActivityLevels:  []string{},
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, resp.TotalExposureScore)
	require.Equal(t, "low", resp.RiskLevel)
}
