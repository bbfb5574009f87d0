package api

import (
	"weather-spots-api/internal/domain/model/external"
)

// Unit systems accepted by the upstream provider.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
	UnitsStandard = "standard"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GeocodeCity resolves a free-text city query to candidate locations in
	// the provider's relevance order. An empty result is a valid no-match,
	// not an error. countryCode narrows the search when non-empty.
	GeocodeCity(query string, countryCode string, limit int) ([]external.GeocodingResult, error)

	// GetWeatherByCoordinates fetches current conditions for a coordinate
	// pair. Transient provider failures are retried; a 400/401 from the
	// primary endpoint falls back once to the legacy current-weather
	// endpoint. The returned payload is tagged with the shape it came in.
	GetWeatherByCoordinates(lat float64, lon float64, units string) (*external.WeatherPayload, error)

	// GetWeatherByCityName geocodes the name (limit 1) and fetches current
	// conditions for the best match.
	GetWeatherByCityName(name string, countryCode string, units string) (*external.WeatherPayload, error)
}
