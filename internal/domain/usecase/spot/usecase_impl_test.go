package spot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/gateway/queue"
	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/model/external"
)

type fakeWeatherGateway struct {
	geocode   []external.GeocodingResult
	err       error
	lastQuery string
	lastLimit int
}

func (g *fakeWeatherGateway) GeocodeCity(query string, countryCode string, limit int) ([]external.GeocodingResult, error) {
	g.lastQuery = query
	g.lastLimit = limit
	return g.geocode, g.err
}

func (g *fakeWeatherGateway) GetWeatherByCoordinates(lat float64, lon float64, units string) (*external.WeatherPayload, error) {
	return nil, nil
}

func (g *fakeWeatherGateway) GetWeatherByCityName(name string, countryCode string, units string) (*external.WeatherPayload, error) {
	return nil, nil
}

type fakeSpotGateway struct {
	created []entity.Spot
	latest  map[string]*entity.WeatherRecord
}

func (g *fakeSpotGateway) FindAllSpots() ([]entity.Spot, error) { return nil, nil }

func (g *fakeSpotGateway) FindSpotByID(id string) (*entity.Spot, error) { return nil, nil }

func (g *fakeSpotGateway) CreateSpot(spot entity.Spot) (*entity.Spot, error) {
	spot.ID = "spot-1"
	g.created = append(g.created, spot)
	return &spot, nil
}

func (g *fakeSpotGateway) UpdateSpot(id string, updates model.UpdateSpotDTO) (*entity.Spot, error) {
	return nil, nil
}

func (g *fakeSpotGateway) DeleteSpot(id string) error { return nil }

func (g *fakeSpotGateway) FindLatestWeather(spotID string) (*entity.WeatherRecord, error) {
	return g.latest[spotID], nil
}

func (g *fakeSpotGateway) CreateWeatherRecord(input model.CreateWeatherRecordInput) (*entity.WeatherRecord, error) {
	return nil, nil
}

func (g *fakeSpotGateway) FindWeatherSince(spotID string, cutoff time.Time) ([]entity.WeatherRecord, error) {
	return nil, nil
}

func (g *fakeSpotGateway) DeleteWeatherBefore(cutoff time.Time) (int64, error) { return 0, nil }

type fakeQueueSender struct {
	sent      []any
	queueName string
	err       error
}

func (s *fakeQueueSender) SendMessage(queueName string, body any) error {
	s.queueName = queueName
	s.sent = append(s.sent, body)
	return s.err
}

func (s *fakeQueueSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	return &queue.BatchResult{}, nil
}

func TestCreateSpotEnqueuesInitialFetch(t *testing.T) {
	dbGateway := &fakeSpotGateway{}
	sender := &fakeQueueSender{}
	uc := NewSpotUseCase("fetch-queue", sender, &fakeWeatherGateway{}, dbGateway)

	created, err := uc.Create(model.CreateSpotDTO{
		CityName:  "London",
		Latitude:  51.5,
		Longitude: -0.12,
	})

	require.NoError(t, err)
	assert.Equal(t, "spot-1", created.ID)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "fetch-queue", sender.queueName)

	sent, ok := sender.sent[0].(entity.Spot)
	require.True(t, ok)
	assert.Equal(t, "spot-1", sent.ID)
}

func TestCreateSpotRejectsOutOfRangeCoordinates(t *testing.T) {
	dbGateway := &fakeSpotGateway{}
	sender := &fakeQueueSender{}
	uc := NewSpotUseCase("fetch-queue", sender, &fakeWeatherGateway{}, dbGateway)

	tests := []struct {
		name string
		dto  model.CreateSpotDTO
	}{
		{"latitude too low", model.CreateSpotDTO{CityName: "X", Latitude: -91, Longitude: 0}},
		{"latitude too high", model.CreateSpotDTO{CityName: "X", Latitude: 91, Longitude: 0}},
		{"longitude too low", model.CreateSpotDTO{CityName: "X", Latitude: 0, Longitude: -181}},
		{"longitude too high", model.CreateSpotDTO{CityName: "X", Latitude: 0, Longitude: 181}},
		{"empty city name", model.CreateSpotDTO{Latitude: 0, Longitude: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(tt.dto)
			require.Error(t, err)
			assert.True(t, model.IsKind(err, model.KindValidation))
		})
	}

	assert.Empty(t, dbGateway.created)
	assert.Empty(t, sender.sent)
}

func TestCreateSpotSurvivesQueueFailure(t *testing.T) {
	dbGateway := &fakeSpotGateway{}
	sender := &fakeQueueSender{err: errors.New("queue unavailable")}
	uc := NewSpotUseCase("fetch-queue", sender, &fakeWeatherGateway{}, dbGateway)

	created, err := uc.Create(model.CreateSpotDTO{CityName: "London", Latitude: 51.5, Longitude: -0.12})

	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCreateFromCityUsesBestGeocodeMatch(t *testing.T) {
	apiGateway := &fakeWeatherGateway{
		geocode: []external.GeocodingResult{
			{Name: "London", Lat: 51.5074, Lon: -0.1278, Country: "GB"},
		},
	}
	dbGateway := &fakeSpotGateway{}
	uc := NewSpotUseCase("fetch-queue", &fakeQueueSender{}, apiGateway, dbGateway)

	created, err := uc.CreateFromCity(model.CreateSpotFromCityDTO{CityName: "london"})

	require.NoError(t, err)
	assert.Equal(t, 1, apiGateway.lastLimit)
	assert.Equal(t, "London", created.CityName)
	assert.Equal(t, 51.5074, created.Latitude)
	assert.Equal(t, -0.1278, created.Longitude)
	require.NotNil(t, created.CountryCode)
	assert.Equal(t, "GB", *created.CountryCode)
}

func TestCreateFromCityUnknownCity(t *testing.T) {
	uc := NewSpotUseCase("fetch-queue", &fakeQueueSender{}, &fakeWeatherGateway{}, &fakeSpotGateway{})

	_, err := uc.CreateFromCity(model.CreateSpotFromCityDTO{CityName: "Nowhereville"})

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindNotFound))
}

func TestSearchCitiesClampsLimit(t *testing.T) {
	apiGateway := &fakeWeatherGateway{geocode: []external.GeocodingResult{}}
	uc := NewSpotUseCase("fetch-queue", &fakeQueueSender{}, apiGateway, &fakeSpotGateway{})

	_, err := uc.SearchCities("London", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, apiGateway.lastLimit)

	_, err = uc.SearchCities("London", "", 99)
	require.NoError(t, err)
	assert.Equal(t, 10, apiGateway.lastLimit)
}

func TestSearchCitiesRequiresQuery(t *testing.T) {
	uc := NewSpotUseCase("fetch-queue", &fakeQueueSender{}, &fakeWeatherGateway{}, &fakeSpotGateway{})

	_, err := uc.SearchCities("", "", 5)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))
}
