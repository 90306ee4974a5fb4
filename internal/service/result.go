package service

import (
	"ulascansenturk/weather-wear/internal/recommendation"
	"ulascansenturk/weather-wear/internal/weather"
)

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeInvalidInput
	OutcomeNotFound
	OutcomeTransientError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeTransientError:
		return "transient_error"
	default:
		return "unknown"
	}
}

// State is a step of a single lookup. Done, Rejected, NotFound and
// TransientError are terminal.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateFetching
	StateSanitizing
	StateRecommending
	StateDone
	StateRejected
	StateNotFound
	StateTransientError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateFetching:
		return "fetching"
	case StateSanitizing:
		return "sanitizing"
	case StateRecommending:
		return "recommending"
	case StateDone:
		return "done"
	case StateRejected:
		return "rejected"
	case StateNotFound:
		return "not_found"
	case StateTransientError:
		return "transient_error"
	default:
		return "unknown"
	}
}

const (
	MessageInvalidInput   = "Please enter a valid 5-digit ZIP code"
	MessageNotFound       = "Sorry, this is not a valid ZIP code."
	MessageTransientError = "Unable to fetch weather data. Please try again later."
)

// Result is the outcome of one lookup. Weather and Recommendations are only
// set on success; Err carries the diagnostic for every other outcome.
type Result struct {
	Outcome         Outcome
	State           State
	Weather         weather.Fact
	Recommendations []recommendation.Recommendation
	Err             error
}

func (r Result) Success() bool {
	return r.Outcome == OutcomeSuccess
}

// Message is the text shown to the user. It never includes provider detail.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return ""
	case OutcomeInvalidInput:
		return MessageInvalidInput
	case OutcomeNotFound:
		return MessageNotFound
	default:
		return MessageTransientError
	}
}

type WeatherReport struct {
	Location        string                          `json:"location"`
	TemperatureF    float64                         `json:"temperature_f"`
	Condition       string                          `json:"condition"`
	HumidityPct     int                             `json:"humidity_pct"`
	WindSpeedMph    float64                         `json:"wind_speed_mph"`
	IconURL         string                          `json:"icon_url"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
}

// Report renders a successful result for the HTTP and MCP surfaces.
func (r Result) Report(iconBaseURL string) WeatherReport {
	return WeatherReport{
		Location:        r.Weather.Location,
		TemperatureF:    r.Weather.TemperatureF,
		Condition:       r.Weather.Condition,
		HumidityPct:     r.Weather.HumidityPct,
		WindSpeedMph:    r.Weather.WindSpeedMph,
		IconURL:         r.Weather.IconURL(iconBaseURL),
		Recommendations: r.Recommendations,
	}
}
