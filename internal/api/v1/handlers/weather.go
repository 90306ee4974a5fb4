package handlers

import (
	"context"
	"net/http"
	"time"

	"ulascansenturk/weather-wear/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	iconBaseURL    string
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, iconBaseURL string, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		iconBaseURL:    iconBaseURL,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/weather":
		h.GetWeather(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.URL.Path != "/weather" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.weatherService.Lookup(ctx, r.URL.Query().Get("zip"))

	switch result.Outcome {
	case service.OutcomeSuccess:
		respondWithJSON(w, http.StatusOK, result.Report(h.iconBaseURL))
	case service.OutcomeInvalidInput:
		respondWithError(w, http.StatusBadRequest, result.Message())
	case service.OutcomeNotFound:
		respondWithError(w, http.StatusNotFound, result.Message())
	default:
		// the service has already logged the diagnostic
		respondWithError(w, http.StatusServiceUnavailable, result.Message())
	}
}
