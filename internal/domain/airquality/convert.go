package airquality

import "math"

type breakpoint struct {
	concLow  float64
	concHigh float64
	aqiLow   float64
	aqiHigh  float64
}

// pm25Breakpoints is the EPA 24-hour PM2.5 table. Each concentration range
// maps linearly onto its AQI sub-range.
var pm25Breakpoints = []breakpoint{
	{0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// Conversion is the result of a PM2.5 to AQI conversion.
type Conversion struct {
	PM25     float64  `json:"pm25"`
	AQI      int      `json:"aqi"`
	Category Category `json:"category"`
}

// ConvertPM25 interpolates a PM2.5 concentration onto the AQI scale using
// the EPA breakpoint table. Concentrations that match no breakpoint
// saturate at (500, hazardous) rather than failing.
func ConvertPM25(pm25 float64) Conversion {
	for _, bp := range pm25Breakpoints {
		if pm25 >= bp.concLow && pm25 <= bp.concHigh {
			aqi := int(math.Round((bp.aqiHigh-bp.aqiLow)/(bp.concHigh-bp.concLow)*(pm25-bp.concLow) + bp.aqiLow))
			return Conversion{PM25: pm25, AQI: aqi, Category: Categorize(aqi)}
		}
	}
	return Conversion{PM25: pm25, AQI: 500, Category: CategoryHazardous}
}
