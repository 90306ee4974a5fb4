package mcp

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/miyamo2/qilin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ulascansenturk/weather-wear/internal/mocks"
	"ulascansenturk/weather-wear/internal/recommendation"
	"ulascansenturk/weather-wear/internal/service"
	"ulascansenturk/weather-wear/internal/weather"
)

// fakeToolContext implements the parts of qilin.ToolContext the tools use.
type fakeToolContext struct {
	qilin.ToolContext
	ctx  context.Context
	args string
	text string
	json []byte
}

func (c *fakeToolContext) Context() context.Context { return c.ctx }

func (c *fakeToolContext) Bind(i any) error {
	if c.args == "" {
		return nil
	}
	return json.Unmarshal([]byte(c.args), i)
}

func (c *fakeToolContext) String(s string) error {
	c.text = s
	return nil
}

func (c *fakeToolContext) JSON(i any) error {
	b, err := json.Marshal(i)
	if err != nil {
		return err
	}
	c.json = b
	return nil
}

func newContext(args string) *fakeToolContext {
	return &fakeToolContext{ctx: context.Background(), args: args}
}

func TestWhatToWear_Success(t *testing.T) {
	weatherService := mocks.NewMockWeatherService(t)
	weatherService.On("Lookup", mock.Anything, "10001").Return(service.Result{
		Outcome: service.OutcomeSuccess,
		Weather: weather.Fact{Location: "New York", TemperatureF: 68.4, Condition: "clear sky", IconCode: "01d"},
		Recommendations: []recommendation.Recommendation{
			{Category: recommendation.Shirt, Text: "Light shirt or t-shirt"},
		},
	})

	c := newContext(`{"zip_code":"10001"}`)
	require.NoError(t, NewTools(weatherService, "http://icons/").WhatToWear(c))

	var report service.WeatherReport
	require.NoError(t, json.Unmarshal(c.json, &report))
	assert.Equal(t, "New York", report.Location)
	assert.Equal(t, 68.4, report.TemperatureF)
	assert.Equal(t, "http://icons/01d@2x.png", report.IconURL)
	assert.Len(t, report.Recommendations, 1)
	assert.Empty(t, c.text)
}

func TestWhatToWear_FailureReturnsUserMessage(t *testing.T) {
	tests := map[service.Outcome]string{
		service.OutcomeInvalidInput:   service.MessageInvalidInput,
		service.OutcomeNotFound:       service.MessageNotFound,
		service.OutcomeTransientError: service.MessageTransientError,
	}

	for outcome, message := range tests {
		t.Run(outcome.String(), func(t *testing.T) {
			weatherService := mocks.NewMockWeatherService(t)
			weatherService.On("Lookup", mock.Anything, "99999").Return(service.Result{Outcome: outcome})

			c := newContext(`{"zip_code":"99999"}`)
			require.NoError(t, NewTools(weatherService, "").WhatToWear(c))

			assert.Equal(t, message, c.text)
			assert.Nil(t, c.json)
		})
	}
}

func TestWhatToWear_BindError(t *testing.T) {
	weatherService := mocks.NewMockWeatherService(t)

	err := NewTools(weatherService, "").WhatToWear(newContext(`{"zip_code":`))

	assert.Error(t, err)
	weatherService.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestRecommendClothing(t *testing.T) {
	c := newContext(`{"temperature_f":20,"condition":"light snow and sun"}`)
	require.NoError(t, RecommendClothing(c))

	var resp RecommendClothingResponse
	require.NoError(t, json.Unmarshal(c.json, &resp))
	assert.Equal(t, "freezing", resp.Tier)
	assert.Equal(t, recommendation.Recommend(20, "light snow and sun"), resp.Recommendations)
}

func TestRecommendClothing_ZeroTemperatureIsKept(t *testing.T) {
	c := newContext(`{"temperature_f":0,"condition":"clear"}`)
	require.NoError(t, RecommendClothing(c))

	var resp RecommendClothingResponse
	require.NoError(t, json.Unmarshal(c.json, &resp))
	assert.Equal(t, "freezing", resp.Tier)
}

func TestRecommendClothing_MissingTemperature(t *testing.T) {
	for _, args := range []string{`{"condition":"light rain"}`, `{"temperature_f":null}`, ""} {
		c := newContext(args)

		err := RecommendClothing(c)

		assert.ErrorIs(t, err, ErrMissingTemperature, "args %q", args)
		assert.Nil(t, c.json)
	}
}
