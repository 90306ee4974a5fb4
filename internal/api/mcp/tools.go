package mcp

import (
	"errors"
	"fmt"

	"github.com/miyamo2/qilin"

	"ulascansenturk/weather-wear/internal/recommendation"
	"ulascansenturk/weather-wear/internal/service"
)

const (
	ToolWhatToWear        = "what_to_wear"
	ToolRecommendClothing = "recommend_clothing"
)

var ErrMissingTemperature = errors.New("temperature_f is required")

// ToolWhatToWearRequest contains input parameters for the what_to_wear tool.
type ToolWhatToWearRequest struct {
	ZipCode string `json:"zip_code" jsonschema:"description=5-digit US ZIP code"`
}

// ToolRecommendClothingRequest contains input parameters for the recommend_clothing tool.
type ToolRecommendClothingRequest struct {
	TemperatureF *float64 `json:"temperature_f" jsonschema:"required,description=Temperature in Fahrenheit"`
	Condition    string   `json:"condition" jsonschema:"description=Weather condition text such as 'light rain'"`
}

type RecommendClothingResponse struct {
	Tier            string                          `json:"tier"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
}

type Tools struct {
	weatherService service.WeatherService
	iconBaseURL    string
}

func NewTools(weatherService service.WeatherService, iconBaseURL string) *Tools {
	return &Tools{
		weatherService: weatherService,
		iconBaseURL:    iconBaseURL,
	}
}

// Register adds both tools to q.
func (t *Tools) Register(q *qilin.Qilin) {
	q.Tool(ToolWhatToWear,
		(*ToolWhatToWearRequest)(nil),
		t.WhatToWear,
		qilin.ToolWithDescription("Current weather and clothing recommendations for a US ZIP code"))

	q.Tool(ToolRecommendClothing,
		(*ToolRecommendClothingRequest)(nil),
		RecommendClothing,
		qilin.ToolWithDescription("Clothing recommendations for a Fahrenheit temperature and condition"))
}

func (t *Tools) WhatToWear(c qilin.ToolContext) error {
	var req ToolWhatToWearRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("bind %s arguments: %w", ToolWhatToWear, err)
	}

	result := t.weatherService.Lookup(c.Context(), req.ZipCode)
	if !result.Success() {
		return c.String(result.Message())
	}
	return c.JSON(result.Report(t.iconBaseURL))
}

func RecommendClothing(c qilin.ToolContext) error {
	var req ToolRecommendClothingRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("bind %s arguments: %w", ToolRecommendClothing, err)
	}
	if req.TemperatureF == nil {
		return fmt.Errorf("bind %s arguments: %w", ToolRecommendClothing, ErrMissingTemperature)
	}

	temperature := *req.TemperatureF
	return c.JSON(RecommendClothingResponse{
		Tier:            recommendation.Tier(temperature),
		Recommendations: recommendation.Recommend(temperature, req.Condition),
	})
}
