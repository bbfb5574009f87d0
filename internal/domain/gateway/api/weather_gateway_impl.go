package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/model/external"
	"weather-spots-api/pkg/http"
)

const (
	oneCallPath        = "/data/3.0/onecall"
	currentWeatherPath = "/data/2.5/weather"
	geocodingPath      = "/geo/1.0/direct"

	// The one-call request asks only for current conditions.
	oneCallExclude = "minutely,hourly,daily,alerts"
)

// GatewayOptions bundles the provider credential and resilience settings.
type GatewayOptions struct {
	APIKey     string
	MaxRetries int
	BaseDelay  time.Duration
}

// weatherGatewayImpl implements the WeatherGateway interface against the
// OpenWeatherMap HTTP API.
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	backoff    *http.BackoffConfig
	breaker    *gobreaker.CircuitBreaker
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseURL string, clientOptions http.ClientOptions, opts GatewayOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.BaseDelay == 0 {
		opts.BaseDelay = time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "openweather",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     opts.APIKey,
		backoff:    http.NewBackoffConfig(opts.MaxRetries, opts.BaseDelay),
		breaker:    breaker,
	}
}

// GeocodeCity resolves a free-text city query via the geocoding endpoint.
func (g *weatherGatewayImpl) GeocodeCity(query string, countryCode string, limit int) ([]external.GeocodingResult, error) {
	if g.apiKey == "" {
		return nil, model.NewConfigError("weather API key not configured")
	}

	if countryCode != "" {
		query = fmt.Sprintf("%s,%s", query, countryCode)
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		successResp, errResp, status, err := g.httpClient.Request().
			WithMethod(http.GET).
			WithPath(geocodingPath).
			WithQueryParams(map[string]string{
				"q":     query,
				"limit": strconv.Itoa(limit),
				"appid": g.apiKey,
			}).
			WithSuccessResp(&[]external.GeocodingResult{}).
			WithErrorResp(&external.APIErrorResponse{}).
			Execute()

		if err == nil {
			return successResp, nil
		}

		if status == 401 {
			return nil, model.NewUpstreamAuthError("invalid weather API key")
		}
		return nil, model.NewUpstreamError(status, fmt.Sprintf("geocoding failed: %s", upstreamMessage(errResp, err)))
	})
	if err != nil {
		return nil, classifyBreakerError(err)
	}

	response := result.(*[]external.GeocodingResult)
	return *response, nil
}

// GetWeatherByCoordinates fetches current conditions for a coordinate pair,
// retrying transient failures and falling back to the legacy endpoint when
// the one-call tier rejects the credential.
func (g *weatherGatewayImpl) GetWeatherByCoordinates(lat float64, lon float64, units string) (*external.WeatherPayload, error) {
	if g.apiKey == "" {
		return nil, model.NewConfigError("weather API key not configured")
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		successResp, errResp, status, err := g.httpClient.Request().
			WithMethod(http.GET).
			WithPath(oneCallPath).
			WithQueryParams(map[string]string{
				"lat":     formatCoordinate(lat),
				"lon":     formatCoordinate(lon),
				"appid":   g.apiKey,
				"units":   units,
				"exclude": oneCallExclude,
			}).
			WithSuccessResp(&external.OneCallResponse{}).
			WithErrorResp(&external.APIErrorResponse{}).
			WithBackoff(g.backoff).
			Execute()

		if err == nil {
			return &external.WeatherPayload{
				Shape:   external.ShapeOneCall,
				OneCall: successResp.(*external.OneCallResponse),
			}, nil
		}

		// A 400/401 from the one-call endpoint means the tier is not
		// available to this credential; the legacy endpoint is attempted
		// exactly once, outside the retry ladder.
		if status == 400 || status == 401 {
			return g.getWeatherByCoordinatesFallback(lat, lon, units)
		}

		switch status {
		case 404:
			return nil, model.NewNotFoundError("weather data not found for this location")
		case 429:
			return nil, model.NewRateLimitError("weather API rate limit exceeded, try again later")
		default:
			return nil, model.NewUpstreamError(status, fmt.Sprintf("weather API error: %s", upstreamMessage(errResp, err)))
		}
	})
	if err != nil {
		return nil, classifyBreakerError(err)
	}

	return result.(*external.WeatherPayload), nil
}

// getWeatherByCoordinatesFallback fetches from the legacy current-weather
// endpoint. Single attempt; its payload keeps its own shape tag and is
// reconciled by the normalizer.
func (g *weatherGatewayImpl) getWeatherByCoordinatesFallback(lat float64, lon float64, units string) (*external.WeatherPayload, error) {
	successResp, errResp, status, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(map[string]string{
			"lat":   formatCoordinate(lat),
			"lon":   formatCoordinate(lon),
			"appid": g.apiKey,
			"units": units,
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, model.NewUpstreamError(status, fmt.Sprintf("weather API error: %s", upstreamMessage(errResp, err)))
	}

	return &external.WeatherPayload{
		Shape:   external.ShapeCurrentWeather,
		Current: successResp.(*external.CurrentWeatherResponse),
	}, nil
}

// GetWeatherByCityName composes geocoding (limit 1) with the coordinate fetch.
func (g *weatherGatewayImpl) GetWeatherByCityName(name string, countryCode string, units string) (*external.WeatherPayload, error) {
	results, err := g.GeocodeCity(name, countryCode, 1)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, model.NewNotFoundError(fmt.Sprintf("city not found: %s", name))
	}

	return g.GetWeatherByCoordinates(results[0].Lat, results[0].Lon, units)
}

// upstreamMessage prefers the provider's own error message when one was
// decoded, falling back to the transport error.
func upstreamMessage(errResp any, err error) string {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return "unknown upstream failure"
}

// classifyBreakerError passes ApiErrors through and maps breaker-open
// rejections to an upstream error.
func classifyBreakerError(err error) error {
	if _, ok := model.AsApiError(err); ok {
		return err
	}
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return model.NewUpstreamError(503, "weather provider temporarily unavailable (circuit open)")
	}
	return model.NewUpstreamError(0, err.Error())
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
