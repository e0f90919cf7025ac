package forecast

import "github.com/airaware/ai-service/internal/domain/airquality"

// HistoryPoint is one hourly reading from the caller supplied history.
// Only the AQI is consumed; extra fields on the wire are ignored.
type HistoryPoint struct {
	AQI int `json:"aqi"`
}

// Request captures the payload accepted by the forecast service.
type Request struct {
	HistoricalData []HistoryPoint     `json:"historical_data" binding:"required"`
	Location       map[string]float64 `json:"location"`
	HoursAhead     int                `json:"hours_ahead"`
}

// Point is a single predicted hour. Confidence is a fixed label, not a
// variance estimate.
type Point struct {
	Timestamp    string              `json:"timestamp"`
	PredictedAQI int                 `json:"predicted_aqi"`
	Category     airquality.Category `json:"category"`
	Confidence   string              `json:"confidence"`
}

// ActivityWindow marks a forecast hour clean enough for outdoor plans.
type ActivityWindow struct {
	Time        string `json:"time"`
	AQI         int    `json:"aqi"`
	SuitableFor string `json:"suitable_for"`
}

// Response is serialized back to API consumers.
type Response struct {
	Location            map[string]float64 `json:"location"`
	ForecastGeneratedAt string             `json:"forecast_generated_at"`
	Forecasts           []Point            `json:"forecasts"`
	Trend               string             `json:"trend"`
	BestActivityTimes   []ActivityWindow   `json:"best_activity_times"`
}

// Config holds the forecast horizon limits.
type Config struct {
	DefaultHoursAhead int
	MaxHoursAhead     int
}
