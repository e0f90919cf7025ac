package healthrisk

import "github.com/airaware/ai-service/internal/domain/airquality"

// SensitivityLevel is the caller declared susceptibility tier, independent
// of the clinical condition flags.
type SensitivityLevel string

const (
	SensitivityLow      SensitivityLevel = "low"
	SensitivityModerate SensitivityLevel = "moderate"
	SensitivityHigh     SensitivityLevel = "high"
	SensitivityVeryHigh SensitivityLevel = "very_high"
)

// ActivityType enumerates the exertion levels accepted by the risk scorer.
type ActivityType string

const (
	ActivityResting          ActivityType = "resting"
	ActivityLightActivity    ActivityType = "light_activity"
	ActivityModerateExercise ActivityType = "moderate_exercise"
	ActivityIntenseExercise  ActivityType = "intense_exercise"
)

// Profile describes the person being assessed. The is_child/is_elderly
// flags are applied independently of age: a profile can legitimately (or
// inconsistently) trigger both the flag multiplier and the age multiplier,
// and no reconciliation is attempted.
type Profile struct {
	Age               int              `json:"age"`
	HasAsthma         bool             `json:"has_asthma"`
	HasCOPD           bool             `json:"has_copd"`
	HasHeartCondition bool             `json:"has_heart_condition"`
	IsPregnant        bool             `json:"is_pregnant"`
	IsChild           bool             `json:"is_child"`
	IsElderly         bool             `json:"is_elderly"`
	SensitivityLevel  SensitivityLevel `json:"sensitivity_level"`
}

// Request captures the payload accepted by the health risk service.
type Request struct {
	AirQuality       airquality.Reading `json:"air_quality" binding:"required"`
	HealthProfile    Profile            `json:"health_profile" binding:"required"`
	IntendedActivity ActivityType       `json:"intended_activity" binding:"required"`
	DurationMinutes  int                `json:"duration_minutes"`
	LocationType     string             `json:"location_type" binding:"required,oneof=indoor outdoor"`
}

// Recommendation is a single actionable item. The list order carries
// meaning: it equals rule evaluation order, not priority order.
type Recommendation struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
}

// Response is serialized back to API consumers.
type Response struct {
	RiskScore              float64             `json:"risk_score"`
	RiskLevel              string              `json:"risk_level"`
	AQICategory            airquality.Category `json:"aqi_category"`
	Recommendations        []Recommendation    `json:"recommendations"`
	SafeActivityDuration   int                 `json:"safe_activity_duration"`
	RequiresMask           bool                `json:"requires_mask"`
	AirPurifierRecommended bool                `json:"air_purifier_recommended"`
}
