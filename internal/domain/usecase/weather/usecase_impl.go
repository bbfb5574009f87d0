package weather

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/gateway/api"
	"weather-spots-api/internal/domain/gateway/db"
	"weather-spots-api/internal/domain/model"
	"weather-spots-api/pkg/log"
)

const (
	// DefaultFreshnessWindow is how long a stored record keeps serving
	// current-weather reads before a new upstream fetch is made.
	DefaultFreshnessWindow = 10 * time.Minute

	minHistoryDays = 1
	maxHistoryDays = 30
)

type weatherUseCase struct {
	freshnessWindow time.Duration
	apiGateway      api.WeatherGateway
	dbGateway       db.SpotGateway
}

func NewWeatherUseCase(freshnessWindow time.Duration, apiGateway api.WeatherGateway, dbGateway db.SpotGateway) UseCase {
	if freshnessWindow <= 0 {
		freshnessWindow = DefaultFreshnessWindow
	}
	return &weatherUseCase{
		freshnessWindow: freshnessWindow,
		apiGateway:      apiGateway,
		dbGateway:       dbGateway,
	}
}

// FetchAndSave returns the spot's cached record when it is still fresh,
// otherwise fetches from upstream, persists and returns the new record.
// Two concurrent refreshes may both persist; records are insert-only and
// the greatest recorded_at wins for current reads.
func (uc *weatherUseCase) FetchAndSave(spot entity.Spot, forceRefresh bool) (*entity.WeatherRecord, error) {
	if !forceRefresh {
		latest, err := uc.dbGateway.FindLatestWeather(spot.ID)
		if err != nil {
			return nil, err
		}
		if latest != nil && time.Since(latest.RecordedAt) < uc.freshnessWindow {
			return latest, nil
		}
	}

	payload, err := uc.apiGateway.GetWeatherByCoordinates(spot.Latitude, spot.Longitude, api.UnitsMetric)
	if err != nil {
		return nil, err
	}

	input := NormalizeWeatherPayload(spot.ID, payload, api.UnitsMetric)
	record, err := uc.dbGateway.CreateWeatherRecord(input)
	if err != nil {
		return nil, err
	}

	log.Info("Weather record saved",
		zap.String("spot_id", spot.ID),
		zap.String("city_name", spot.CityName),
		zap.Float64("temperature", record.Temperature),
		zap.String("condition", record.Condition))
	return record, nil
}

// GetCurrentWeather resolves the spot and runs FetchAndSave for it
func (uc *weatherUseCase) GetCurrentWeather(spotID string, forceRefresh bool) (*entity.WeatherRecord, error) {
	spot, err := uc.dbGateway.FindSpotByID(spotID)
	if err != nil {
		return nil, err
	}
	if spot == nil {
		return nil, model.NewNotFoundError("spot not found")
	}

	return uc.FetchAndSave(*spot, forceRefresh)
}

// GetWeatherHistory returns the spot's records of the last N days, oldest first
func (uc *weatherUseCase) GetWeatherHistory(spotID string, days int) ([]entity.WeatherRecord, error) {
	if days < minHistoryDays || days > maxHistoryDays {
		return nil, model.NewValidationError("days must be between 1 and 30")
	}

	spot, err := uc.dbGateway.FindSpotByID(spotID)
	if err != nil {
		return nil, err
	}
	if spot == nil {
		return nil, model.NewNotFoundError("spot not found")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	records, err := uc.dbGateway.FindWeatherSince(spotID, cutoff)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entity.WeatherRecord{}
	}
	return records, nil
}

// BatchFetchWeather runs FetchAndSave for every spot concurrently. One
// spot's failure never aborts the others: its entry is nil and the error is
// logged.
func (uc *weatherUseCase) BatchFetchWeather(forceRefresh bool) (map[string]*entity.WeatherRecord, error) {
	spots, err := uc.dbGateway.FindAllSpots()
	if err != nil {
		return nil, err
	}

	results := make(map[string]*entity.WeatherRecord, len(spots))
	var wg sync.WaitGroup
	var mutex sync.Mutex

	for _, spot := range spots {
		wg.Add(1)
		go func(spot entity.Spot) {
			defer wg.Done()

			record, fetchErr := uc.FetchAndSave(spot, forceRefresh)
			if fetchErr != nil {
				log.Warn("Batch weather fetch failed for spot",
					zap.String("spot_id", spot.ID),
					zap.String("city_name", spot.CityName),
					zap.Error(fetchErr))
				record = nil
			}

			mutex.Lock()
			results[spot.ID] = record
			mutex.Unlock()
		}(spot)
	}

	wg.Wait()
	return results, nil
}

// PurgeOldRecords deletes records recorded before the retention cutoff
func (uc *weatherUseCase) PurgeOldRecords(retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := uc.dbGateway.DeleteWeatherBefore(cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Info("Purged old weather records",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}
