package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"ulascansenturk/weather-wear/internal/zipcode"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrMissingAPIKey    = errors.New("weather provider API key is not configured")
)

// StatusError is returned for non-success HTTP statuses other than 404.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweather returned status code: %d", e.StatusCode)
}

type WeatherProvider interface {
	FetchCurrent(ctx context.Context, code zipcode.PostalCode) (*CurrentWeatherResponse, error)
}

type openWeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type Option func(*openWeatherService)

func WithBaseURL(baseURL string) Option {
	return func(s *openWeatherService) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *openWeatherService) {
		if client != nil {
			s.client = client
		}
	}
}

func NewOpenWeatherService(apiKey string, options ...Option) WeatherProvider {
	s := &openWeatherService{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ResponseCode holds the provider's "cod" field, which is a number on
// success and a string on errors.
type ResponseCode string

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ResponseCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cod is neither a string nor a number: %w", err)
	}
	*c = ResponseCode(n.String())
	return nil
}

// CurrentWeatherResponse is the subset of the current weather payload the
// sanitizer needs. Pointer fields are nil when the provider omitted them.
type CurrentWeatherResponse struct {
	Cod     ResponseCode `json:"cod"`
	Message string       `json:"message,omitempty"`
	Name    *string      `json:"name"`
	Main    *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
		Icon        string  `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

func (s *openWeatherService) FetchCurrent(ctx context.Context, code zipcode.PostalCode) (*CurrentWeatherResponse, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{
		"zip":   {code.String() + ",us"},
		"appid": {s.apiKey},
		"units": {"imperial"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openweather create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather request failed: %w", redactURLError(err))
	}
	defer resp.Body.Close()

	var apiResp CurrentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openweather returned malformed JSON (status %d): %w", resp.StatusCode, err)
	}

	// the provider can report a missing location with a 200 status
	if apiResp.Cod == "404" || resp.StatusCode == http.StatusNotFound {
		return nil, ErrLocationNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	return &apiResp, nil
}

// redactURLError drops the request URL, which carries the API key, from
// transport errors.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
