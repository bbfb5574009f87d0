package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/model"
)

// GormSpotGateway implements SpotGateway on gorm/postgres.
type GormSpotGateway struct {
	DB *gorm.DB
}

var _ SpotGateway = (*GormSpotGateway)(nil)

func NewGormSpotGateway(db *gorm.DB) *GormSpotGateway {
	return &GormSpotGateway{DB: db}
}

// FindAllSpots returns every spot, newest first.
func (gateway *GormSpotGateway) FindAllSpots() ([]entity.Spot, error) {
	var spots []entity.Spot
	result := gateway.DB.Order("created_at DESC").Find(&spots)
	if result.Error != nil {
		return nil, model.NewStoreError("failed to fetch spots", result.Error)
	}
	return spots, nil
}

// FindSpotByID returns the spot or nil when absent.
func (gateway *GormSpotGateway) FindSpotByID(id string) (*entity.Spot, error) {
	var spot entity.Spot
	result := gateway.DB.First(&spot, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, model.NewStoreError("failed to fetch spot", result.Error)
	}
	return &spot, nil
}

// CreateSpot persists a new spot, assigning its id.
func (gateway *GormSpotGateway) CreateSpot(spot entity.Spot) (*entity.Spot, error) {
	spot.ID = uuid.New().String()
	result := gateway.DB.Create(&spot)
	if result.Error != nil {
		return nil, model.NewStoreError("failed to create spot", result.Error)
	}
	return &spot, nil
}

// UpdateSpot applies the non-nil fields of the patch and returns the updated
// spot. Coordinates are not updatable.
func (gateway *GormSpotGateway) UpdateSpot(id string, updates model.UpdateSpotDTO) (*entity.Spot, error) {
	values := map[string]any{}
	if updates.CityName != nil {
		values["city_name"] = *updates.CityName
	}
	if updates.CountryCode != nil {
		values["country_code"] = *updates.CountryCode
	}
	if updates.IsFavorite != nil {
		values["is_favorite"] = *updates.IsFavorite
	}
	if updates.Notes != nil {
		values["notes"] = *updates.Notes
	}

	if len(values) > 0 {
		result := gateway.DB.Model(&entity.Spot{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, model.NewStoreError("failed to update spot", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, model.NewNotFoundError("spot not found")
		}
	}

	return gateway.FindSpotByID(id)
}

// DeleteSpot removes the spot and all its weather records.
func (gateway *GormSpotGateway) DeleteSpot(id string) error {
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("weather_spot_id = ?", id).Delete(&entity.WeatherRecord{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.Spot{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.NewNotFoundError("spot not found")
		}
		return model.NewStoreError("failed to delete spot", err)
	}
	return nil
}

// FindLatestWeather returns the record with the greatest recorded_at for the
// spot, or nil when the spot has no records yet.
func (gateway *GormSpotGateway) FindLatestWeather(spotID string) (*entity.WeatherRecord, error) {
	var record entity.WeatherRecord
	result := gateway.DB.
		Where("weather_spot_id = ?", spotID).
		Order("recorded_at DESC").
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, model.NewStoreError("failed to fetch latest weather", result.Error)
	}
	return &record, nil
}

// CreateWeatherRecord inserts one immutable weather reading.
func (gateway *GormSpotGateway) CreateWeatherRecord(input model.CreateWeatherRecordInput) (*entity.WeatherRecord, error) {
	record := entity.WeatherRecord{
		ID:              uuid.New().String(),
		WeatherSpotID:   input.WeatherSpotID,
		Temperature:     input.Temperature,
		TemperatureUnit: input.TemperatureUnit,
		Condition:       input.Condition,
		Humidity:        input.Humidity,
		WindSpeed:       input.WindSpeed,
		WindDirection:   input.WindDirection,
		Pressure:        input.Pressure,
		RecordedAt:      input.RecordedAt,
	}

	result := gateway.DB.Create(&record)
	if result.Error != nil {
		return nil, model.NewStoreError("failed to create weather record", result.Error)
	}
	return &record, nil
}

// FindWeatherSince returns the spot's records with recorded_at on or after
// the cutoff, oldest first.
func (gateway *GormSpotGateway) FindWeatherSince(spotID string, cutoff time.Time) ([]entity.WeatherRecord, error) {
	var records []entity.WeatherRecord
	result := gateway.DB.
		Where("weather_spot_id = ? AND recorded_at >= ?", spotID, cutoff).
		Order("recorded_at ASC").
		Find(&records)
	if result.Error != nil {
		return nil, model.NewStoreError("failed to fetch weather history", result.Error)
	}
	return records, nil
}

// DeleteWeatherBefore purges records older than the cutoff across all spots
// and reports how many were removed.
func (gateway *GormSpotGateway) DeleteWeatherBefore(cutoff time.Time) (int64, error) {
	result := gateway.DB.Where("recorded_at < ?", cutoff).Delete(&entity.WeatherRecord{})
	if result.Error != nil {
		return 0, model.NewStoreError("failed to purge weather records", result.Error)
	}
	return result.RowsAffected, nil
}
