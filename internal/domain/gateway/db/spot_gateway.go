package db

import (
	"time"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/model"
)

// SpotGateway is the durable store for spots and their weather records.
// Weather records are insert-only; spots support full CRUD.
type SpotGateway interface {
	// Spot operations
	FindAllSpots() ([]entity.Spot, error)
	FindSpotByID(id string) (*entity.Spot, error)
	CreateSpot(spot entity.Spot) (*entity.Spot, error)
	UpdateSpot(id string, updates model.UpdateSpotDTO) (*entity.Spot, error)
	DeleteSpot(id string) error

	// Weather record operations
	FindLatestWeather(spotID string) (*entity.WeatherRecord, error)
	CreateWeatherRecord(input model.CreateWeatherRecordInput) (*entity.WeatherRecord, error)
	FindWeatherSince(spotID string, cutoff time.Time) ([]entity.WeatherRecord, error)
	DeleteWeatherBefore(cutoff time.Time) (int64, error)
}
