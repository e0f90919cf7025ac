package airquality

import "time"

// Reading is a single sensor snapshot supplied by the caller. The AQI is
// accepted as reported alongside the raw PM2.5 concentration; the two are
// not reconciled against each other.
type Reading struct {
	PM25        float64   `json:"pm25"`
	PM10        *float64  `json:"pm10,omitempty"`
	CO2         *float64  `json:"co2,omitempty"`
	O3          *float64  `json:"o3,omitempty"`
	NO2         *float64  `json:"no2,omitempty"`
	AQI         int       `json:"aqi"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`
}

// Category labels an AQI severity band.
type Category string

const (
	CategoryGood               Category = "good"
	CategoryModerate           Category = "moderate"
	CategoryUnhealthySensitive Category = "unhealthy_sensitive"
	CategoryUnhealthy          Category = "unhealthy"
	CategoryVeryUnhealthy      Category = "very_unhealthy"
	CategoryHazardous          Category = "hazardous"
)
