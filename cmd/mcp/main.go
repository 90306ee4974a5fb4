package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/miyamo2/qilin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ulascansenturk/weather-wear/config"
	"ulascansenturk/weather-wear/internal/api/mcp"
	"ulascansenturk/weather-wear/internal/providers"
	"ulascansenturk/weather-wear/internal/service"
)

// stdout carries the MCP stream, so everything is logged to stderr.
func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(logLevel).With().Str("service_name", conf.ServiceName).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := providers.NewOpenWeatherService(
		conf.OpenWeatherAPIKey,
		providers.WithBaseURL(conf.OpenWeatherBaseURL),
		providers.WithHTTPClient(&http.Client{Timeout: conf.ProviderTimeout}),
	)
	weatherService := service.NewWeatherService(provider, nil, clockwork.NewRealClock())

	q := qilin.New(conf.ServiceName,
		qilin.WithJSONMarshalFunc(json.Marshal),
		qilin.WithJSONUnmarshalFunc(json.Unmarshal))
	mcp.NewTools(weatherService, conf.OpenWeatherIconURL).Register(q)

	log.Info().Msg("starting MCP server on stdio")
	if err := q.Start(qilin.StartWithContext(ctx)); err != nil {
		log.Fatal().Err(err).Msg("mcp server stopped")
	}
}
