package weather

import (
	"time"

	"weather-spots-api/internal/domain/entity"
)

type UseCase interface {
	// FetchAndSave returns the spot's cached record when it is still fresh,
	// otherwise fetches from upstream, persists and returns the new record.
	FetchAndSave(spot entity.Spot, forceRefresh bool) (*entity.WeatherRecord, error)

	// GetCurrentWeather resolves the spot and runs FetchAndSave for it
	GetCurrentWeather(spotID string, forceRefresh bool) (*entity.WeatherRecord, error)

	// GetWeatherHistory returns the spot's records of the last N days, oldest first
	GetWeatherHistory(spotID string, days int) ([]entity.WeatherRecord, error)

	// BatchFetchWeather runs FetchAndSave for every spot concurrently; a
	// failed spot maps to nil instead of failing the batch
	BatchFetchWeather(forceRefresh bool) (map[string]*entity.WeatherRecord, error)

	// PurgeOldRecords deletes records recorded before the retention cutoff
	PurgeOldRecords(retention time.Duration) (int64, error)
}
