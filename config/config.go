package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherIconURL string
	ProviderTimeout    time.Duration
}

func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-wear")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("OPENWEATHER_ICON_URL", "https://openweathermap.org/img/wn/")
	v.SetDefault("PROVIDER_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherIconURL: v.GetString("OPENWEATHER_ICON_URL"),
		ProviderTimeout:    v.GetDuration("PROVIDER_TIMEOUT"),
	}

	if config.OpenWeatherAPIKey == "" {
		// lookups fail as transient errors until a key is supplied
		log.Warn().Msg("OPENWEATHER_API_KEY is not set")
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
