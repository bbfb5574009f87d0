package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/model"
)

type fakeWeatherUseCase struct {
	record    *entity.WeatherRecord
	err       error
	batch     map[string]*entity.WeatherRecord
	lastForce bool
	lastDays  int
}

func (f *fakeWeatherUseCase) FetchAndSave(spot entity.Spot, forceRefresh bool) (*entity.WeatherRecord, error) {
	return f.record, f.err
}

func (f *fakeWeatherUseCase) GetCurrentWeather(spotID string, forceRefresh bool) (*entity.WeatherRecord, error) {
	f.lastForce = forceRefresh
	return f.record, f.err
}

func (f *fakeWeatherUseCase) GetWeatherHistory(spotID string, days int) ([]entity.WeatherRecord, error) {
	f.lastDays = days
	if days < 1 || days > 30 {
		return nil, model.NewValidationError("days must be between 1 and 30")
	}
	if f.err != nil {
		return nil, f.err
	}
	return []entity.WeatherRecord{}, nil
}

func (f *fakeWeatherUseCase) BatchFetchWeather(forceRefresh bool) (map[string]*entity.WeatherRecord, error) {
	f.lastForce = forceRefresh
	return f.batch, f.err
}

func (f *fakeWeatherUseCase) PurgeOldRecords(retention time.Duration) (int64, error) {
	return 0, nil
}

func setupWeatherRoutes(useCase *fakeWeatherUseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	NewWeatherController(api, useCase).InitWeatherRoutes()
	return e
}

func TestGetCurrentWeatherReturnsRecord(t *testing.T) {
	useCase := &fakeWeatherUseCase{
		record: &entity.WeatherRecord{ID: "record-1", WeatherSpotID: "spot-1", Temperature: 14.2, TemperatureUnit: "C", Condition: "Clouds"},
	}
	e := setupWeatherRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/spots/spot-1/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, useCase.lastForce)

	var body entity.WeatherRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "record-1", body.ID)
	assert.Equal(t, "C", body.TemperatureUnit)
}

func TestGetCurrentWeatherHonorsRefreshParam(t *testing.T) {
	useCase := &fakeWeatherUseCase{record: &entity.WeatherRecord{ID: "record-2"}}
	e := setupWeatherRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/spots/spot-1/weather?refresh=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, useCase.lastForce)
}

func TestGetCurrentWeatherUnknownSpot(t *testing.T) {
	useCase := &fakeWeatherUseCase{err: model.NewNotFoundError("spot not found")}
	e := setupWeatherRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/spots/missing/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "spot not found", body["error"])
}

func TestRefreshWeatherAlwaysForces(t *testing.T) {
	useCase := &fakeWeatherUseCase{record: &entity.WeatherRecord{ID: "record-3"}}
	e := setupWeatherRoutes(useCase)

	req := httptest.NewRequest(http.MethodPost, "/api/spots/spot-1/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, useCase.lastForce)
}

func TestGetWeatherHistoryRejectsOutOfRangeDays(t *testing.T) {
	useCase := &fakeWeatherUseCase{}
	e := setupWeatherRoutes(useCase)

	for _, days := range []string{"0", "31"} {
		req := httptest.NewRequest(http.MethodGet, "/api/spots/spot-1/history?days="+days, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "days=%s", days)
	}
}

func TestGetWeatherHistoryDefaultsDays(t *testing.T) {
	useCase := &fakeWeatherUseCase{}
	e := setupWeatherRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/spots/spot-1/history", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, useCase.lastDays)
}

func TestBatchFetchWeatherKeepsNullEntries(t *testing.T) {
	useCase := &fakeWeatherUseCase{
		batch: map[string]*entity.WeatherRecord{
			"spot-1": {ID: "record-1"},
			"spot-2": nil,
		},
	}
	e := setupWeatherRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/weather/batch", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]*entity.WeatherRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.NotNil(t, body["spot-1"])
	assert.Nil(t, body["spot-2"])
}
