package spot

import (
	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/model/external"
)

type UseCase interface {
	// FindAll returns every tracked spot, newest first
	FindAll() ([]entity.Spot, error)

	// FindAllWithWeather returns every spot paired with its latest record
	FindAllWithWeather() ([]entity.SpotWithWeather, error)

	// FindByID returns a single spot or a not-found error
	FindByID(id string) (*entity.Spot, error)

	// Create validates and persists a spot from raw coordinates, then
	// enqueues its initial weather fetch
	Create(dto model.CreateSpotDTO) (*entity.Spot, error)

	// CreateFromCity geocodes the city name and creates the spot from the
	// best match
	CreateFromCity(dto model.CreateSpotFromCityDTO) (*entity.Spot, error)

	// Update applies a partial update; coordinates are immutable
	Update(id string, dto model.UpdateSpotDTO) (*entity.Spot, error)

	// Delete removes a spot and all its weather records
	Delete(id string) error

	// SearchCities resolves a free-text city query via the geocoding API
	SearchCities(query string, countryCode string, limit int) ([]external.GeocodingResult, error)
}
