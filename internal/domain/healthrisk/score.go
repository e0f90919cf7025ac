package healthrisk

import "github.com/airaware/ai-service/internal/domain/airquality"

// activityMultipliers reflects the increased breathing rate at each
// exertion level.
var activityMultipliers = map[ActivityType]float64{
	ActivityResting:          1.0,
	ActivityLightActivity:    1.3,
	ActivityModerateExercise: 1.8,
	ActivityIntenseExercise:  2.5,
}

var sensitivityMultipliers = map[SensitivityLevel]float64{
	SensitivityLow:      0.8,
	SensitivityModerate: 1.0,
	SensitivityHigh:     1.4,
	SensitivityVeryHigh: 1.8,
}

// riskScore computes the personalized 0-100 risk score. The multiplier
// sequence is fixed: activity, sensitivity, asthma/COPD, heart condition,
// child/elderly flags, pregnancy, then age. Reordering changes the result
// under floating point rounding, so keep it as is.
func riskScore(reading airquality.Reading, profile Profile, activity ActivityType) float64 {
	risk := float64(reading.AQI) / 5

	// PM2.5 can only raise the baseline, never lower it.
	if reading.PM25 > 0 {
		pm25Risk := reading.PM25 / 2
		if pm25Risk > 100 {
			pm25Risk = 100
		}
		if pm25Risk > risk {
			risk = pm25Risk
		}
	}

	risk *= activityMultipliers[activity]
	risk *= sensitivityMultipliers[profile.SensitivityLevel]

	if profile.HasAsthma || profile.HasCOPD {
		risk *= 1.5
	}
	if profile.HasHeartCondition {
		risk *= 1.3
	}
	if profile.IsChild || profile.IsElderly {
		risk *= 1.2
	}
	if profile.IsPregnant {
		risk *= 1.3
	}

	// Age compounds with the life-stage flags above; both can apply.
	if profile.Age < 12 {
		risk *= 1.2
	} else if profile.Age > 65 {
		risk *= 1.3
	}

	if risk > 100 {
		risk = 100
	}
	return risk
}

// riskLevel buckets a risk score into the four reporting tiers.
func riskLevel(score float64) string {
	switch {
	case score < 30:
		return "low"
	case score < 50:
		return "moderate"
	case score < 70:
		return "high"
	default:
		return "very_high"
	}
}
