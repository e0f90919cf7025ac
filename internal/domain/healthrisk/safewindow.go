package healthrisk

import "github.com/airaware/ai-service/internal/domain/airquality"

// safeWindow returns the maximum advisable outdoor duration in minutes.
// Thresholds are checked in ascending AQI order, first match wins.
func safeWindow(reading airquality.Reading, profile Profile) int {
	switch {
	case reading.AQI < 50:
		return 240
	case reading.AQI < 100:
		return 120
	case reading.AQI < 150:
		if profile.SensitivityLevel == SensitivityHigh || profile.SensitivityLevel == SensitivityVeryHigh {
			return 30
		}
		return 60
	case reading.AQI < 200:
		if profile.SensitivityLevel == SensitivityLow {
			return 30
		}
		return 15
	default:
		return 0
	}
}
