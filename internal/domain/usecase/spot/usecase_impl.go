package spot

import (
	"sync"

	"go.uber.org/zap"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/gateway/api"
	"weather-spots-api/internal/domain/gateway/db"
	"weather-spots-api/internal/domain/gateway/queue"
	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/model/external"
	"weather-spots-api/pkg/log"
	"weather-spots-api/pkg/msg"
)

const (
	defaultGeocodeLimit = 5
	maxGeocodeLimit     = 10
)

type spotUseCase struct {
	queueName   string
	apiGateway  api.WeatherGateway
	dbGateway   db.SpotGateway
	queueSender queue.Sender
}

func NewSpotUseCase(queueName string, queueSender queue.Sender, apiGateway api.WeatherGateway, dbGateway db.SpotGateway) UseCase {
	return &spotUseCase{
		queueName:   queueName,
		queueSender: queueSender,
		apiGateway:  apiGateway,
		dbGateway:   dbGateway,
	}
}

// FindAll returns every tracked spot, newest first
func (uc *spotUseCase) FindAll() ([]entity.Spot, error) {
	return uc.dbGateway.FindAllSpots()
}

// FindAllWithWeather pairs each spot with its latest record. Lookups run in
// parallel; a spot without records keeps a nil weather entry.
func (uc *spotUseCase) FindAllWithWeather() ([]entity.SpotWithWeather, error) {
	spots, err := uc.dbGateway.FindAllSpots()
	if err != nil {
		return nil, err
	}

	results := make([]entity.SpotWithWeather, len(spots))
	var wg sync.WaitGroup

	for i, spot := range spots {
		results[i] = entity.SpotWithWeather{Spot: spot}

		wg.Add(1)
		go func(i int, spotID string) {
			defer wg.Done()

			latest, weatherErr := uc.dbGateway.FindLatestWeather(spotID)
			if weatherErr != nil {
				log.Warn("Failed to load latest weather for spot",
					zap.String("spot_id", spotID),
					zap.Error(weatherErr))
				return
			}
			results[i].CurrentWeather = latest
		}(i, spot.ID)
	}

	wg.Wait()
	return results, nil
}

// FindByID returns a single spot or a not-found error
func (uc *spotUseCase) FindByID(id string) (*entity.Spot, error) {
	spot, err := uc.dbGateway.FindSpotByID(id)
	if err != nil {
		return nil, err
	}
	if spot == nil {
		return nil, model.NewNotFoundError(msg.GetMessage("spot.error.not-found"))
	}
	return spot, nil
}

// Create validates and persists a spot from raw coordinates, then enqueues
// its initial weather fetch. A queue failure only loses the eager first
// record, so it is logged instead of failing the creation.
func (uc *spotUseCase) Create(dto model.CreateSpotDTO) (*entity.Spot, error) {
	if err := validateSpotInput(dto.CityName, dto.Latitude, dto.Longitude); err != nil {
		return nil, err
	}

	created, err := uc.dbGateway.CreateSpot(entity.Spot{
		CityName:    dto.CityName,
		CountryCode: dto.CountryCode,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		IsFavorite:  dto.IsFavorite,
		Notes:       dto.Notes,
	})
	if err != nil {
		return nil, err
	}

	uc.enqueueInitialFetch(*created)
	return created, nil
}

// CreateFromCity geocodes the city name and creates the spot from the best
// match.
func (uc *spotUseCase) CreateFromCity(dto model.CreateSpotFromCityDTO) (*entity.Spot, error) {
	if dto.CityName == "" {
		return nil, model.NewValidationError(msg.GetMessage("spot.error.empty-city-name"))
	}

	countryCode := ""
	if dto.CountryCode != nil {
		countryCode = *dto.CountryCode
	}

	results, err := uc.apiGateway.GeocodeCity(dto.CityName, countryCode, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, model.NewNotFoundError(msg.GetMessage("geocoding.error.city-not-found", dto.CityName))
	}

	match := results[0]
	resolvedCountry := dto.CountryCode
	if resolvedCountry == nil && match.Country != "" {
		country := match.Country
		resolvedCountry = &country
	}

	created, err := uc.dbGateway.CreateSpot(entity.Spot{
		CityName:    match.Name,
		CountryCode: resolvedCountry,
		Latitude:    match.Lat,
		Longitude:   match.Lon,
		IsFavorite:  dto.IsFavorite,
		Notes:       dto.Notes,
	})
	if err != nil {
		return nil, err
	}

	uc.enqueueInitialFetch(*created)
	return created, nil
}

// Update applies a partial update; coordinates are immutable
func (uc *spotUseCase) Update(id string, dto model.UpdateSpotDTO) (*entity.Spot, error) {
	if dto.CityName != nil && *dto.CityName == "" {
		return nil, model.NewValidationError(msg.GetMessage("spot.error.empty-city-name"))
	}
	return uc.dbGateway.UpdateSpot(id, dto)
}

// Delete removes a spot and all its weather records
func (uc *spotUseCase) Delete(id string) error {
	return uc.dbGateway.DeleteSpot(id)
}

// SearchCities resolves a free-text city query via the geocoding API
func (uc *spotUseCase) SearchCities(query string, countryCode string, limit int) ([]external.GeocodingResult, error) {
	if query == "" {
		return nil, model.NewValidationError(msg.GetMessage("geocoding.error.empty-query"))
	}
	if limit <= 0 {
		limit = defaultGeocodeLimit
	}
	if limit > maxGeocodeLimit {
		limit = maxGeocodeLimit
	}

	results, err := uc.apiGateway.GeocodeCity(query, countryCode, limit)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []external.GeocodingResult{}
	}
	return results, nil
}

// enqueueInitialFetch hands the new spot to the background weather worker.
func (uc *spotUseCase) enqueueInitialFetch(spot entity.Spot) {
	if err := uc.queueSender.SendMessage(uc.queueName, spot); err != nil {
		log.Warn("Failed to enqueue initial weather fetch",
			zap.String("spot_id", spot.ID),
			zap.String("city_name", spot.CityName),
			zap.Error(err))
		return
	}

	log.Infof("Spot '%s' saved and enqueued for initial weather fetch", spot.CityName)
}

func validateSpotInput(cityName string, latitude float64, longitude float64) error {
	if cityName == "" {
		return model.NewValidationError(msg.GetMessage("spot.error.empty-city-name"))
	}
	if latitude < -90 || latitude > 90 {
		return model.NewValidationError(msg.GetMessage("spot.error.invalid-latitude", latitude))
	}
	if longitude < -180 || longitude > 180 {
		return model.NewValidationError(msg.GetMessage("spot.error.invalid-longitude", longitude))
	}
	return nil
}
