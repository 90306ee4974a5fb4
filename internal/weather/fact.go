package weather

import "strings"

// Fact is the normalized current weather for one location. It is built by
// the sanitizer from a successful provider response and passed by value.
type Fact struct {
	Location     string
	TemperatureF float64
	Condition    string
	HumidityPct  int
	WindSpeedMph float64
	IconCode     string
}

// NormalizedCondition is the lowercase condition text used for keyword matching.
// Condition keeps the provider's casing for display.
func (f Fact) NormalizedCondition() string {
	return strings.ToLower(f.Condition)
}

func (f Fact) IconURL(iconBaseURL string) string {
	return IconURL(iconBaseURL, f.IconCode)
}

func IconURL(iconBaseURL, iconCode string) string {
	return iconBaseURL + iconCode + "@2x.png"
}
