package airquality

type band struct {
	low   int
	high  int
	label Category
}

// aqiBands partitions 0-500 into the six standard severity bands. Lookup
// walks the table in order; both bounds are inclusive.
var aqiBands = []band{
	{0, 50, CategoryGood},
	{51, 100, CategoryModerate},
	{101, 150, CategoryUnhealthySensitive},
	{151, 200, CategoryUnhealthy},
	{201, 300, CategoryVeryUnhealthy},
	{301, 500, CategoryHazardous},
}

// Categorize maps an AQI value to its severity band. Values outside the
// table, including negatives and anything above 500, report hazardous.
func Categorize(aqi int) Category {
	for _, b := range aqiBands {
		if aqi >= b.low && aqi <= b.high {
			return b.label
		}
	}
	return CategoryHazardous
}
