package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-spots-api/internal/application/middleware"
	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/model"
	"weather-spots-api/internal/domain/model/external"
)

type fakeSpotUseCase struct {
	spot       *entity.Spot
	spots      []entity.SpotWithWeather
	geocode    []external.GeocodingResult
	err        error
	deletedID  string
	lastCreate model.CreateSpotDTO
}

func (f *fakeSpotUseCase) FindAll() ([]entity.Spot, error) { return nil, f.err }

func (f *fakeSpotUseCase) FindAllWithWeather() ([]entity.SpotWithWeather, error) {
	return f.spots, f.err
}

func (f *fakeSpotUseCase) FindByID(id string) (*entity.Spot, error) {
	if f.spot == nil && f.err == nil {
		return nil, model.NewNotFoundError("spot not found")
	}
	return f.spot, f.err
}

func (f *fakeSpotUseCase) Create(dto model.CreateSpotDTO) (*entity.Spot, error) {
	f.lastCreate = dto
	return f.spot, f.err
}

func (f *fakeSpotUseCase) CreateFromCity(dto model.CreateSpotFromCityDTO) (*entity.Spot, error) {
	return f.spot, f.err
}

func (f *fakeSpotUseCase) Update(id string, dto model.UpdateSpotDTO) (*entity.Spot, error) {
	return f.spot, f.err
}

func (f *fakeSpotUseCase) Delete(id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeSpotUseCase) SearchCities(query string, countryCode string, limit int) ([]external.GeocodingResult, error) {
	if query == "" {
		return nil, model.NewValidationError("query parameter q is required")
	}
	return f.geocode, f.err
}

func setupSpotRoutes(useCase *fakeSpotUseCase) *echo.Echo {
	e := echo.New()
	middleware.SetupValidator(e)
	api := e.Group("/api")
	NewSpotController(api, useCase).InitSpotRoutes()
	NewGeocodingController(api, useCase).InitGeocodingRoutes()
	return e
}

func TestCreateSpotReturnsCreated(t *testing.T) {
	useCase := &fakeSpotUseCase{
		spot: &entity.Spot{ID: "spot-1", CityName: "London", Latitude: 51.5, Longitude: -0.12},
	}
	e := setupSpotRoutes(useCase)

	payload := `{"city_name":"London","latitude":51.5,"longitude":-0.12}`
	req := httptest.NewRequest(http.MethodPost, "/api/spots", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "London", useCase.lastCreate.CityName)

	var body entity.Spot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "spot-1", body.ID)
}

func TestCreateSpotRejectsOutOfRangeCoordinates(t *testing.T) {
	useCase := &fakeSpotUseCase{}
	e := setupSpotRoutes(useCase)

	payload := `{"city_name":"Nowhere","latitude":-100,"longitude":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/spots", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSpotRejectsMissingCityName(t *testing.T) {
	useCase := &fakeSpotUseCase{}
	e := setupSpotRoutes(useCase)

	payload := `{"latitude":10,"longitude":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/spots", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindSpotByIDNotFound(t *testing.T) {
	useCase := &fakeSpotUseCase{}
	e := setupSpotRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/spots/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindAllSpotsIncludesWeather(t *testing.T) {
	useCase := &fakeSpotUseCase{
		spots: []entity.SpotWithWeather{
			{
				Spot:           entity.Spot{ID: "spot-1", CityName: "London"},
				CurrentWeather: &entity.WeatherRecord{ID: "record-1", Condition: "Clear"},
			},
			{
				Spot: entity.Spot{ID: "spot-2", CityName: "Paris"},
			},
		},
	}
	e := setupSpotRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/spots", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []entity.SpotWithWeather
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.NotNil(t, body[0].CurrentWeather)
	assert.Nil(t, body[1].CurrentWeather)
}

func TestDeleteSpotNoContent(t *testing.T) {
	useCase := &fakeSpotUseCase{}
	e := setupSpotRoutes(useCase)

	req := httptest.NewRequest(http.MethodDelete, "/api/spots/spot-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "spot-1", useCase.deletedID)
}

func TestDeleteSpotNotFound(t *testing.T) {
	useCase := &fakeSpotUseCase{err: model.NewNotFoundError("spot not found")}
	e := setupSpotRoutes(useCase)

	req := httptest.NewRequest(http.MethodDelete, "/api/spots/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchCitiesRequiresQuery(t *testing.T) {
	useCase := &fakeSpotUseCase{}
	e := setupSpotRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/geocoding/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchCitiesReturnsResults(t *testing.T) {
	useCase := &fakeSpotUseCase{
		geocode: []external.GeocodingResult{{Name: "London", Lat: 51.5, Lon: -0.12, Country: "GB"}},
	}
	e := setupSpotRoutes(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/geocoding/search?q=London", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []external.GeocodingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "London", body[0].Name)
}
