package healthrisk

import "github.com/airaware/ai-service/internal/domain/airquality"

// recommend runs the rule cascade. Rules are independent and evaluated in a
// fixed sequence; several can fire for the same request and the output
// preserves evaluation order. Do not collapse this into a dispatch table.
func recommend(score float64, reading airquality.Reading, profile Profile, activity ActivityType, locationType string) []Recommendation {
	recs := make([]Recommendation, 0, 4)

	// Exactly one primary tier per request.
	switch {
	case score < 30:
		recs = append(recs, Recommendation{
			Priority: "info",
			Action:   "safe_to_proceed",
			Message:  "Air quality is good. Safe for all activities.",
			Icon:     "✅",
		})
	case score < 50:
		recs = append(recs, Recommendation{
			Priority: "low",
			Action:   "proceed_with_awareness",
			Message:  "Air quality is acceptable. Sensitive individuals should consider reducing prolonged outdoor exertion.",
			Icon:     "ℹ️",
		})
	case score < 70:
		recs = append(recs, Recommendation{
			Priority: "medium",
			Action:   "limit_outdoor",
			Message:  "Air quality is unhealthy for sensitive groups. Consider limiting outdoor activities.",
			Icon:     "⚠️",
		})
	default:
		recs = append(recs, Recommendation{
			Priority: "high",
			Action:   "avoid_outdoor",
			Message:  "Air quality is unhealthy. Avoid outdoor activities. Stay indoors with air purification.",
			Icon:     "🚫",
		})
	}

	if (activity == ActivityModerateExercise || activity == ActivityIntenseExercise) && score > 50 {
		recs = append(recs, Recommendation{
			Priority: "medium",
			Action:   "modify_activity",
			Message:  "Consider indoor exercise or reduce intensity. Current conditions increase respiratory strain.",
			Icon:     "🏃",
		})
	}

	if score > 60 && locationType == "outdoor" {
		maskType := "surgical mask"
		priority := "medium"
		if score > 80 {
			maskType = "N95"
			priority = "high"
		}
		recs = append(recs, Recommendation{
			Priority: priority,
			Action:   "wear_mask",
			Message:  "Wear a " + maskType + " when outdoors to reduce particulate exposure.",
			Icon:     "😷",
		})
	}

	if locationType == "indoor" {
		if reading.CO2 != nil && *reading.CO2 > 1000 {
			recs = append(recs, Recommendation{
				Priority: "medium",
				Action:   "improve_ventilation",
				Message:  "CO₂ levels are high. Open windows or improve ventilation.",
				Icon:     "🪟",
			})
		}
		if reading.PM25 > 35 {
			recs = append(recs, Recommendation{
				Priority: "high",
				Action:   "use_air_purifier",
				Message:  "Use an air purifier with HEPA filter to reduce indoor PM2.5.",
				Icon:     "🌀",
			})
		}
	}

	if profile.HasAsthma && score > 40 {
		recs = append(recs, Recommendation{
			Priority: "high",
			Action:   "have_inhaler",
			Message:  "Keep your rescue inhaler accessible. Monitor for symptoms.",
			Icon:     "💊",
		})
	}

	if score > 50 {
		recs = append(recs, Recommendation{
			Priority: "low",
			Action:   "stay_hydrated",
			Message:  "Drink plenty of water to help your body cope with pollutants.",
			Icon:     "💧",
		})
	}

	return recs
}

// requiresMask mirrors the wear_mask rule as a standalone response flag.
func requiresMask(score float64, locationType string) bool {
	return score > 60 && locationType == "outdoor"
}

// purifierRecommended reports whether indoor air warrants filtration.
func purifierRecommended(reading airquality.Reading, locationType string) bool {
	return locationType == "indoor" && (reading.PM25 > 35 || reading.AQI > 100)
}
