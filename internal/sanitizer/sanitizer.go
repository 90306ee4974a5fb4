package sanitizer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ulascansenturk/weather-wear/internal/providers"
	"ulascansenturk/weather-wear/internal/weather"
)

var ErrMalformedResponse = errors.New("malformed provider response")

var markupReplacer = strings.NewReplacer("<", "", ">", "")

// StripMarkup removes angle brackets. It is not a general HTML escaper.
func StripMarkup(s string) string {
	return markupReplacer.Replace(s)
}

// Normalize turns a successful provider payload into a weather.Fact.
// Absent required fields are reported as ErrMalformedResponse, never defaulted.
func Normalize(body *providers.CurrentWeatherResponse) (weather.Fact, error) {
	if body == nil {
		return weather.Fact{}, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if body.Name == nil {
		return weather.Fact{}, missing("name")
	}
	if body.Main == nil || body.Main.Temp == nil {
		return weather.Fact{}, missing("main.temp")
	}
	if body.Main.Humidity == nil {
		return weather.Fact{}, missing("main.humidity")
	}
	if len(body.Weather) == 0 {
		return weather.Fact{}, missing("weather")
	}
	condition := body.Weather[0]
	if condition.Description == nil {
		return weather.Fact{}, missing("weather.description")
	}
	if body.Wind == nil || body.Wind.Speed == nil {
		return weather.Fact{}, missing("wind.speed")
	}

	return weather.Fact{
		Location:     StripMarkup(*body.Name),
		TemperatureF: roundToTenth(*body.Main.Temp),
		Condition:    StripMarkup(*condition.Description),
		HumidityPct:  *body.Main.Humidity,
		WindSpeedMph: *body.Wind.Speed,
		IconCode:     condition.Icon,
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedResponse, field)
}

// roundToTenth rounds halves toward positive infinity.
func roundToTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
