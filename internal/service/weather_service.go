package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"ulascansenturk/weather-wear/internal/observability"
	"ulascansenturk/weather-wear/internal/providers"
	"ulascansenturk/weather-wear/internal/recommendation"
	"ulascansenturk/weather-wear/internal/sanitizer"
	"ulascansenturk/weather-wear/internal/zipcode"
)

var ErrCancelled = errors.New("lookup cancelled")

type WeatherService interface {
	Lookup(ctx context.Context, rawPostalCode string) Result
}

type weatherService struct {
	provider providers.WeatherProvider
	metrics  *observability.Metrics
	clock    clockwork.Clock
}

func NewWeatherService(provider providers.WeatherProvider, metrics *observability.Metrics, clock clockwork.Clock) WeatherService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &weatherService{
		provider: provider,
		metrics:  metrics,
		clock:    clock,
	}
}

// Lookup validates the postal code, fetches the current weather, normalizes
// it and derives recommendations, stopping at the first failure. It makes at
// most one provider call and never retries.
func (s *weatherService) Lookup(ctx context.Context, rawPostalCode string) Result {
	result := s.lookup(ctx, rawPostalCode)
	s.record(result)
	return result
}

func (s *weatherService) lookup(ctx context.Context, rawPostalCode string) Result {
	trace(StateIdle, StateValidating)
	code, err := zipcode.Parse(rawPostalCode)
	if err != nil {
		return Result{Outcome: OutcomeInvalidInput, State: StateRejected, Err: err}
	}

	trace(StateValidating, StateFetching)
	start := s.clock.Now()
	body, err := s.provider.FetchCurrent(ctx, code)
	if s.metrics != nil {
		s.metrics.ProviderRequestDuration.Observe(s.clock.Since(start).Seconds())
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return transient(fmt.Errorf("%w: %w", ErrCancelled, ctxErr))
	}
	if err != nil {
		if errors.Is(err, providers.ErrLocationNotFound) {
			return Result{Outcome: OutcomeNotFound, State: StateNotFound, Err: err}
		}
		return transient(err)
	}

	trace(StateFetching, StateSanitizing)
	fact, err := sanitizer.Normalize(body)
	if err != nil {
		return transient(err)
	}

	trace(StateSanitizing, StateRecommending)
	recs := recommendation.Recommend(fact.TemperatureF, fact.NormalizedCondition())
	trace(StateRecommending, StateDone)

	log.Debug().
		Str("postal_code", code.String()).
		Float64("temperature_f", fact.TemperatureF).
		Str("tier", recommendation.Tier(fact.TemperatureF)).
		Int("recommendations", len(recs)).
		Msg("lookup completed")

	return Result{
		Outcome:         OutcomeSuccess,
		State:           StateDone,
		Weather:         fact,
		Recommendations: recs,
	}
}

func (s *weatherService) record(result Result) {
	switch result.Outcome {
	case OutcomeInvalidInput, OutcomeNotFound:
		log.Debug().Str("outcome", result.Outcome.String()).Msg("lookup rejected")
	case OutcomeTransientError:
		log.Warn().Err(result.Err).Str("state", result.State.String()).Msg("lookup failed")
	}

	if s.metrics == nil {
		return
	}
	s.metrics.LookupsTotal.WithLabelValues(result.Outcome.String()).Inc()
	for _, rec := range result.Recommendations {
		s.metrics.RecommendationsTotal.WithLabelValues(string(rec.Category)).Inc()
	}
}

func transient(err error) Result {
	return Result{Outcome: OutcomeTransientError, State: StateTransientError, Err: err}
}

func trace(from, to State) {
	log.Trace().Str("from", from.String()).Str("to", to.String()).Msg("lookup state")
}
